package service

import (
	"context"

	"github.com/portfolio/backend/internal/model"
)

// ProjectService はプロジェクトに関するビジネスロジックのインターフェース
type ProjectService interface {
	// List returns all projects, newest first.
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	// Create fills presentation defaults and persists. The stored document
	// (id, timestamps included) is written back into project.
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}
