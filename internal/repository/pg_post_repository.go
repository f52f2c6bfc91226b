package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// nullableTime maps the zero time to NULL so COALESCE can apply the DB default.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// PgPostRepository は PostRepository の PostgreSQL 実装
type PgPostRepository struct {
	pool *pgxpool.Pool
}

// NewPgPostRepository は PgPostRepository を生成する
func NewPgPostRepository(pool *pgxpool.Pool) *PgPostRepository {
	return &PgPostRepository{pool: pool}
}

const postSelectCols = `id, title, slug, summary, content, date, tags, created_at, updated_at`

func scanPost(scan func(...any) error) (*model.Post, error) {
	var p model.Post
	if err := scan(&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Content, &p.Date, &p.Tags, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// List は記事一覧を作成日時の降順で取得する
func (r *PgPostRepository) List(ctx context.Context) ([]*model.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+postSelectCols+` FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetByID は ID で記事を取得する
func (r *PgPostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+postSelectCols+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetBySlug はスラッグで記事を取得する
func (r *PgPostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+postSelectCols+` FROM posts WHERE slug = $1`, slug)
	p, err := scanPost(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Create は記事を作成する。title / slug の一意制約違反は ErrDuplicate を返す
func (r *PgPostRepository) Create(ctx context.Context, post *model.Post) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO posts (title, slug, summary, content, date, tags)
		 VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), $6)
		 RETURNING id, date, created_at, updated_at`,
		post.Title, post.Slug, post.Summary, post.Content, nullableTime(post.Date), post.Tags,
	).Scan(&post.ID, &post.Date, &post.CreatedAt, &post.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Update は記事を更新する
func (r *PgPostRepository) Update(ctx context.Context, post *model.Post) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE posts
		 SET title = $1, slug = $2, summary = $3, content = $4, date = $5, tags = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING updated_at`,
		post.Title, post.Slug, post.Summary, post.Content, post.Date, post.Tags, post.ID,
	).Scan(&post.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Delete は記事を削除する（存在しない場合は ErrNotFound）
func (r *PgPostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
