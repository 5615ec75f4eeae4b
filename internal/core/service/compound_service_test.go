package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

func TestCompoundService_Create_DeveloperMustExist(t *testing.T) {
	svc := NewCompoundService(newStubCompoundRepo(), newStubDeveloperRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCompoundInput{
		Name:            "Agora",
		ReferenceNumber: 10,
		DeveloperID:     "missing",
	})
	if !errors.Is(err, domain.ErrDeveloperNotFound) {
		t.Fatalf("expected ErrDeveloperNotFound, got %v", err)
	}
}

func TestCompoundService_Create_Success(t *testing.T) {
	compounds := newStubCompoundRepo()
	developers := newStubDeveloperRepo()
	developer, err := developers.Create(context.Background(), &domain.Developer{Name: "Palm Hills"})
	if err != nil {
		t.Fatalf("seed developer: %v", err)
	}
	svc := NewCompoundService(compounds, developers, zerolog.Nop())

	compound, err := svc.Create(context.Background(), ports.CreateCompoundInput{
		Name:            "Agora",
		ReferenceNumber: 10,
		City:            "Cairo",
		Country:         "Egypt",
		PropertyTypes:   []string{"Villa", "Apartment"},
		DeveloperID:     developer.ID,
		UserID:          "user-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if compound.DeveloperID != developer.ID {
		t.Fatalf("unexpected developer id %q", compound.DeveloperID)
	}
	if len(compound.PropertyTypes) != 2 || compound.PropertyTypes[0] != domain.TypeVilla {
		t.Fatalf("property types not mapped: %+v", compound.PropertyTypes)
	}
}

func TestCompoundService_Create_DuplicateReference(t *testing.T) {
	compounds := newStubCompoundRepo()
	developers := newStubDeveloperRepo()
	developer, err := developers.Create(context.Background(), &domain.Developer{Name: "Palm Hills"})
	if err != nil {
		t.Fatalf("seed developer: %v", err)
	}
	svc := NewCompoundService(compounds, developers, zerolog.Nop())

	input := ports.CreateCompoundInput{Name: "Agora", ReferenceNumber: 10, DeveloperID: developer.ID}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input.Name = "Agora II"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrCompoundExists) {
		t.Fatalf("expected ErrCompoundExists, got %v", err)
	}
}
