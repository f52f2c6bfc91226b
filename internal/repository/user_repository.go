package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// UserRepository は管理者ユーザー永続化のインターフェース
type UserRepository interface {
	// Ping は DB 接続を確認する
	Ping(ctx context.Context) error
	// FindByUsername returns ErrNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// Create persists a new user. Returns ErrDuplicate when the username is taken.
	Create(ctx context.Context, user *model.User) error
}
