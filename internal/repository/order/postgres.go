package order

import (
	"context"
	"errors"
	"sort"

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

const orderColumns = `id::text, user_id::text, total_cents, status, created_at`
const orderItemColumns = `id::text, order_id::text, article_id::text, quantity, unit_price_cents`

func (r *postgresRepo) CreateFromCart(ctx context.Context, userID string) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the cart row so a concurrent add/update cannot change the
	// snapshot while checkout is in flight.
	var cartID string
	err = tx.QueryRow(ctx, `
SELECT id::text
FROM carts
WHERE user_id = $1 AND status = 'pending'
FOR UPDATE
`, userID).Scan(&cartID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return nil, domain.ErrEmptyCart
		}
		return nil, err
	}

	items, err := cartItems(ctx, tx, cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// Articles are locked in ascending id order so two checkouts sharing
	// articles always acquire locks in the same sequence.
	sort.Slice(items, func(i, j int) bool { return items[i].ArticleID < items[j].ArticleID })

	for _, item := range items {
		var stock int
		err := tx.QueryRow(ctx, `
SELECT stock
FROM articles
WHERE id = $1
FOR UPDATE
`, item.ArticleID).Scan(&stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &domain.StockError{ArticleID: item.ArticleID}
			}
			return nil, err
		}
		if stock < item.Quantity {
			return nil, &domain.StockError{ArticleID: item.ArticleID}
		}
	}
	total := domain.CartTotalCents(items)

	ord := domain.Order{
		UserID:     userID,
		TotalCents: total,
		Status:     domain.OrderStatusPending,
	}
	err = tx.QueryRow(ctx, `
INSERT INTO orders (id, user_id, total_cents, status)
VALUES ($1, $2, $3, 'pending')
RETURNING id::text, created_at
`, uuid.NewString(), userID, total).Scan(&ord.ID, &ord.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		var frozen domain.OrderItem
		err = tx.QueryRow(ctx, `
INSERT INTO order_items (id, order_id, article_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+orderItemColumns+`
`, uuid.NewString(), ord.ID, item.ArticleID, item.Quantity, item.UnitPriceCents).Scan(
			&frozen.ID, &frozen.OrderID, &frozen.ArticleID, &frozen.Quantity, &frozen.UnitPriceCents)
		if err != nil {
			return nil, err
		}
		ord.Items = append(ord.Items, frozen)

		if _, err := tx.Exec(ctx, `
UPDATE articles
SET stock = stock - $2
WHERE id = $1
`, item.ArticleID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `
UPDATE carts
SET status = 'completed'
WHERE id = $1
`, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Info().Str("order_id", ord.ID).Str("user_id", userID).Int64("total_cents", total).Msg("order repo: checkout committed")
	return &ord, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		// A malformed user id matches no orders.
		if pgerr.IsInvalidID(err) {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("order repo: list")
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		if pgerr.IsInvalidID(err) {
			return nil, nil
		}
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *postgresRepo) MarkCompleted(ctx context.Context, orderID string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
UPDATE orders
SET status = 'completed'
WHERE id = $1
RETURNING `+orderColumns+`
`, orderID).Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgerr.IsInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("order_id", orderID).Msg("order repo: mark completed")
		return nil, err
	}

	items, err := r.orderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+orderItemColumns+`
FROM order_items
WHERE order_id = $1
`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ArticleID, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func cartItems(ctx context.Context, tx pgx.Tx, cartID string) ([]domain.CartItem, error) {
	rows, err := tx.Query(ctx, `
SELECT id::text, cart_id::text, article_id::text, quantity, unit_price_cents, created_at
FROM cart_items
WHERE cart_id = $1
`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ArticleID, &item.Quantity, &item.UnitPriceCents, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
