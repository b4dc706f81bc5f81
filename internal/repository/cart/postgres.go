package cart

import (
	"context"
	"errors"

	"boutique-api/internal/domain"
	"boutique-api/internal/repository/pgerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const cartColumns = `id::text, user_id::text, status, total_cents, created_at`
const itemColumns = `id::text, cart_id::text, article_id::text, quantity, unit_price_cents, created_at`

func (r *postgresRepo) GetPendingByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, `
SELECT `+cartColumns+`
FROM carts
WHERE user_id = $1 AND status = 'pending'
`, userID).Scan(&cart.ID, &cart.UserID, &cart.Status, &cart.TotalCents, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT `+itemColumns+`
FROM cart_items
WHERE cart_id = $1
ORDER BY created_at ASC
`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ArticleID, &item.Quantity, &item.UnitPriceCents, &item.CreatedAt); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, userID string, article domain.Article, quantity int) (*domain.CartItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cartID, err := findOrCreatePending(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	var item domain.CartItem
	// The unique constraint on (cart_id, article_id) makes this an
	// upsert: a second add of the same article grows the existing line and
	// keeps the unit price captured on first add.
	err = tx.QueryRow(ctx, `
INSERT INTO cart_items (id, cart_id, article_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (cart_id, article_id) DO UPDATE SET
    quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING `+itemColumns+`
`, uuid.NewString(), cartID, article.ID, quantity, article.PriceCents).Scan(
		&item.ID, &item.CartID, &item.ArticleID, &item.Quantity, &item.UnitPriceCents, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, userID, articleID string, quantity int) (*domain.CartItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cartID, err := pendingCartID(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	var item domain.CartItem
	err = tx.QueryRow(ctx, `
UPDATE cart_items
SET quantity = $3
WHERE cart_id = $1 AND article_id = $2
RETURNING `+itemColumns+`
`, cartID, articleID, quantity).Scan(
		&item.ID, &item.CartID, &item.ArticleID, &item.Quantity, &item.UnitPriceCents, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, articleID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cartID, err := pendingCartID(ctx, tx, userID)
	if err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE cart_id = $1 AND article_id = $2
`, cartID, articleID)
	if err != nil {
		if pgerr.IsInvalidID(err) {
			return domain.ErrNotFound
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// findOrCreatePending returns the id of the user's pending cart, creating
// one when absent. The insert races against concurrent adds on the partial
// unique index; the loser falls back to reading the winner's row.
func findOrCreatePending(ctx context.Context, tx pgx.Tx, userID string) (string, error) {
	cartID, err := pendingCartID(ctx, tx, userID)
	if err == nil {
		return cartID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	err = tx.QueryRow(ctx, `
INSERT INTO carts (id, user_id, status)
VALUES ($1, $2, 'pending')
ON CONFLICT (user_id) WHERE status = 'pending' DO NOTHING
RETURNING id::text
`, uuid.NewString(), userID).Scan(&cartID)
	if err == nil {
		return cartID, nil
	}
	if pgerr.IsInvalidID(err) {
		return "", domain.ErrNotFound
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}
	return pendingCartID(ctx, tx, userID)
}

// pendingCartID locks the user's pending cart row for the rest of the
// transaction. Checkout locks the same row before snapshotting the cart,
// so a mutation and a checkout over the same cart serialize instead of
// interleaving.
func pendingCartID(ctx context.Context, tx pgx.Tx, userID string) (string, error) {
	var cartID string
	err := tx.QueryRow(ctx, `
SELECT id::text
FROM carts
WHERE user_id = $1 AND status = 'pending'
FOR UPDATE
`, userID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return cartID, nil
}

func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID string) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total_cents = COALESCE((
	SELECT SUM(quantity * unit_price_cents)
	FROM cart_items
	WHERE cart_id = $1
), 0)
WHERE id = $1
`, cartID)
	return err
}
