package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/propview/real-estate-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role, companyID string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         "Test " + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CompanyID:    companyID,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "secret123", domain.RoleAdmin, "company-1")
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	result, err := svc.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if result.Username != "alice" || result.Role != domain.RoleAdmin {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected a token")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(result.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("jwt-secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["username"] != "alice" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims["company_id"] != "company-1" {
		t.Fatalf("expected company_id claim, got %v", claims["company_id"])
	}
	if claims["sub"] == "" {
		t.Fatalf("expected sub claim")
	}
	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) <= time.Now().Unix() {
		t.Fatalf("expected a future exp claim, got %v", claims["exp"])
	}
}

func TestAuthService_Login_OmitsCompanyClaimWhenAbsent(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob", "secret123", domain.RoleUser, "")
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	result, err := svc.Login(context.Background(), "bob", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(result.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("jwt-secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if _, present := claims["company_id"]; present {
		t.Fatalf("company_id claim must be absent for users without a company")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "alice", "secret123", domain.RoleUser, "")
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	// Repeated wrong attempts keep failing identically: there is no lockout.
	for i := 0; i < 2; i++ {
		if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	if _, err := svc.Login(context.Background(), "alice", "secret123"); err != nil {
		t.Fatalf("correct password must still work: %v", err)
	}
}

func TestAuthService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	if _, err := svc.Login(context.Background(), "ghost", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "jwt-secret", time.Hour)

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
