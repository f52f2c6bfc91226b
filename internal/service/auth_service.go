package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
)

// ErrInvalidCredentials covers both "no such user" and "wrong password".
// Callers must not distinguish the two (prevents user enumeration).
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService は管理者認証のビジネスロジックのインターフェース
type AuthService interface {
	// Login verifies the credentials and returns the user and a signed
	// bearer token valid for one hour.
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	// Register creates a new admin identity with a hashed password.
	// Returns repository.ErrDuplicate when the username is taken.
	Register(ctx context.Context, username, password string) (*model.User, error)
}
