package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectSelectCols = `id, name, description, tags, category, image_url, live_link, github_link, created_at, updated_at`

func scanProject(scan func(...any) error) (*model.Project, error) {
	var p model.Project
	if err := scan(&p.ID, &p.Name, &p.Description, &p.Tags, &p.Category, &p.ImageURL, &p.LiveLink, &p.GithubLink, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// List はプロジェクト一覧を作成日時の降順で取得する
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectSelectCols+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID は ID でプロジェクトを取得する
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+projectSelectCols+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create はプロジェクトを作成する
func (r *PgProjectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (name, description, tags, category, image_url, live_link, github_link)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		project.Name, project.Description, project.Tags, project.Category,
		project.ImageURL, project.LiveLink, project.GithubLink,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
}

// Update はプロジェクトを更新する
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE projects
		 SET name = $1, description = $2, tags = $3, category = $4,
		     image_url = $5, live_link = $6, github_link = $7, updated_at = NOW()
		 WHERE id = $8
		 RETURNING updated_at`,
		project.Name, project.Description, project.Tags, project.Category,
		project.ImageURL, project.LiveLink, project.GithubLink, project.ID,
	).Scan(&project.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete はプロジェクトを削除する（存在しない場合は ErrNotFound）
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
