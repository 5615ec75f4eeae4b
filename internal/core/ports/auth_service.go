package ports

import "context"

// LoginResult is returned to the client after a successful login.
type LoginResult struct {
	AccessToken string
	Name        string
	Username    string
	Role        string
}

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
