package repository

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// PostRepository はブログ記事永続化のインターフェース
type PostRepository interface {
	// List returns all posts ordered by descending creation time.
	List(ctx context.Context) ([]*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	// Create persists a new post. Returns ErrDuplicate when the title or
	// slug collides with an existing post.
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id string) error
}
