package user

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

const userColumns = `id::text, name, email, password_hash, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+userColumns+`
FROM users
ORDER BY created_at DESC
`)
	if err != nil {
		r.logger.Error().Err(err).Msg("user repo: list")
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("user repo: list rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `
SELECT `+userColumns+`
FROM users
WHERE id = $1
`, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `
SELECT `+userColumns+`
FROM users
WHERE email = $1
`, email))
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `
INSERT INTO users (id, name, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING `+userColumns+`
`, uuid.NewString(), u.Name, u.Email, u.PasswordHash))
}

func (r *postgresRepo) Update(ctx context.Context, u domain.User) (*domain.User, error) {
	return r.scanUser(r.pool.QueryRow(ctx, `
UPDATE users
SET name = $2, email = $3, password_hash = $4
WHERE id = $1
RETURNING `+userColumns+`
`, u.ID, u.Name, u.Email, u.PasswordHash))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if pgerr.IsInvalidID(err) {
			return domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("user repo: delete")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		if pgerr.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Error().Err(err).Msg("user repo: scan")
		return nil, err
	}
	return &u, nil
}
