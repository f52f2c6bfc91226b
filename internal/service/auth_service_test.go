package service

import (
	"context"
	"errors"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/auth"
)

// mockUserRepository は UserRepository のモック
type mockUserRepository struct {
	pingFunc           func(ctx context.Context) error
	findByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	createFunc         func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepository) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

var testSecret = []byte("test-secret-0123456789abcdef")

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	mock := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			if username != "admin" {
				return nil, repository.ErrNotFound
			}
			return &model.User{ID: "u1", Username: "admin", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	user, token, err := svc.Login(ctx, "admin", "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("expected user u1, got %+v", user)
	}

	// The issued token must verify and carry the user id.
	userID, err := auth.VerifyToken(token, testSecret)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if userID != "u1" {
		t.Errorf("expected token subject u1, got %q", userID)
	}
}

// TestAuthService_Login_UniformFailure verifies unknown user and wrong
// password produce the same error (no enumeration oracle).
func TestAuthService_Login_UniformFailure(t *testing.T) {
	ctx := context.Background()
	hash, _ := auth.HashPassword("right")

	mock := &mockUserRepository{
		findByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			if username != "admin" {
				return nil, repository.ErrNotFound
			}
			return &model.User{ID: "u1", Username: "admin", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	_, _, errUnknown := svc.Login(ctx, "nobody", "whatever")
	_, _, errWrongPw := svc.Login(ctx, "admin", "wrong")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctx := context.Background()
	var created *model.User
	mock := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			created = user
			user.ID = "u1"
			return nil
		},
	}
	svc := NewAuthService(mock, testSecret)

	user, err := svc.Register(ctx, "admin", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("expected id from repository, got %q", user.ID)
	}
	if created.PasswordHash == "s3cret" || created.PasswordHash == "" {
		t.Error("password must be stored as a hash, never plaintext")
	}
	if !auth.CheckPassword("s3cret", created.PasswordHash) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	ctx := context.Background()
	mock := &mockUserRepository{
		createFunc: func(ctx context.Context, user *model.User) error {
			return repository.ErrDuplicate
		},
	}
	svc := NewAuthService(mock, testSecret)

	if _, err := svc.Register(ctx, "admin", "pw"); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}
