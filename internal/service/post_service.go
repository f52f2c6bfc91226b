package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// PostService はブログ記事に関するビジネスロジックのインターフェース。
// スラッグの導出はこの層で行われ、ハンドラやクライアントからは見えない
type PostService interface {
	List(ctx context.Context) ([]*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	// Create derives the slug from the title before persisting.
	Create(ctx context.Context, post *model.Post) error
	// Update persists the merged post. The slug is re-derived only when
	// titleChanged is true; other field updates keep the stored slug.
	Update(ctx context.Context, post *model.Post, titleChanged bool) error
	Delete(ctx context.Context, id string) error
}
