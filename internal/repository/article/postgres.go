package article

import (
	"context"
	"errors"

	"boutique-api/internal/domain"
	"boutique-api/internal/repository/pgerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

const articleColumns = `id::text, name, COALESCE(description, ''), price_cents, stock, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+articleColumns+`
FROM articles
ORDER BY created_at DESC
`)
	if err != nil {
		r.logger.Error().Err(err).Msg("article repo: list")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.PriceCents, &a.Stock, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("article repo: list rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
SELECT `+articleColumns+`
FROM articles
WHERE id = $1
`, id).Scan(&a.ID, &a.Name, &a.Description, &a.PriceCents, &a.Stock, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("article repo: get")
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
INSERT INTO articles (id, name, description, price_cents, stock)
VALUES ($1, $2, NULLIF($3, ''), $4, $5)
RETURNING `+articleColumns+`
`, uuid.NewString(), in.Name, in.Description, in.PriceCents, in.Stock).Scan(
		&a.ID, &a.Name, &a.Description, &a.PriceCents, &a.Stock, &a.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", in.Name).Msg("article repo: create")
		return nil, err
	}
	r.logger.Debug().Str("id", a.ID).Str("name", a.Name).Msg("article repo: created")
	return &a, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateArticleInput) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
UPDATE articles
SET name = $2, description = NULLIF($3, ''), price_cents = $4, stock = $5
WHERE id = $1
RETURNING `+articleColumns+`
`, id, in.Name, in.Description, in.PriceCents, in.Stock).Scan(
		&a.ID, &a.Name, &a.Description, &a.PriceCents, &a.Stock, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("article repo: update")
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		if pgerr.IsInvalidID(err) {
			return domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("article repo: delete")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
