package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

func TestDeveloperService_Create_Success(t *testing.T) {
	svc := NewDeveloperService(newStubDeveloperRepo(), zerolog.Nop())

	developer, err := svc.Create(context.Background(), ports.CreateDeveloperInput{
		Name:            "Palm Hills",
		ReferenceNumber: 7,
		Email:           "info@palmhills.example",
		UserID:          "user-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if developer.ID == "" {
		t.Fatalf("expected an id on the created developer")
	}
	if developer.Name != "Palm Hills" {
		t.Fatalf("unexpected developer: %+v", developer)
	}
}

func TestDeveloperService_Create_DuplicateReference(t *testing.T) {
	repo := newStubDeveloperRepo()
	svc := NewDeveloperService(repo, zerolog.Nop())

	input := ports.CreateDeveloperInput{Name: "Palm Hills", ReferenceNumber: 7}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input.Name = "Palm Hills Clone"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrDeveloperExists) {
		t.Fatalf("expected ErrDeveloperExists, got %v", err)
	}
}
