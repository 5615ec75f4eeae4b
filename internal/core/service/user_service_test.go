package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
)

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Alice",
		Username: "alice",
		Password: "secret123",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestUserService_Create_DefaultsRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Bob",
		Username: "bob",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "whatever", domain.RoleUser, "")
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Another Alice",
		Username: "alice",
		Password: "secret123",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
