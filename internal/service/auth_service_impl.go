package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/auth"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	repo      repository.UserRepository
	jwtSecret []byte
}

// NewAuthService creates an AuthService backed by the given repository.
func NewAuthService(repo repository.UserRepository, jwtSecret []byte) AuthService {
	return &authServiceImpl{repo: repo, jwtSecret: jwtSecret}
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authServiceImpl) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
