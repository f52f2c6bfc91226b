package service

import (
	"context"
	"time"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

// postServiceImpl is the production implementation of PostService.
type postServiceImpl struct {
	repo repository.PostRepository
	now  func() time.Time
}

// NewPostService creates a PostService backed by the given repository.
func NewPostService(repo repository.PostRepository) PostService {
	return &postServiceImpl{repo: repo, now: time.Now}
}

func (s *postServiceImpl) List(ctx context.Context) ([]*model.Post, error) {
	return s.repo.List(ctx)
}

func (s *postServiceImpl) GetByID(ctx context.Context, id string) (*model.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *postServiceImpl) Create(ctx context.Context, post *model.Post) error {
	post.Slug = s.deriveSlug(post.Title)
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return s.repo.Create(ctx, post)
}

func (s *postServiceImpl) Update(ctx context.Context, post *model.Post, titleChanged bool) error {
	if titleChanged {
		post.Slug = s.deriveSlug(post.Title)
	}
	return s.repo.Update(ctx, post)
}

func (s *postServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// deriveSlug はタイトルからスラッグを導出する。タイトルが記号のみ等で
// 正規化結果が空になる場合は blog-post-<epoch millis> で代替する
func (s *postServiceImpl) deriveSlug(title string) string {
	if slug := slugify(title); slug != "" {
		return slug
	}
	return fallbackSlug(s.now())
}
