package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type productStore struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewProductStore(db *sqlx.DB) *productStore {
	return &productStore{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *productStore) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(
		"p.product_id", "p.name", "p.image", "p.price", "p.stock",
		"p.shop_id", "s.name AS shop_name", "s.email AS shop_email", "s.push_token AS shop_push_token",
	).
		From("products p").
		Join("shops s ON s.shop_id = p.shop_id").
		Where(sq.Eq{"p.product_id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return ProductToEntity(product), nil
}

// ReserveStock decrements stock only when enough is available. The check and
// the decrement are a single conditional update, so concurrent orders for the
// same product cannot oversell.
func (r *productStore) ReserveStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Where(sq.Expr("product_id = ? AND stock >= ?", productID, quantity)).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// zero rows: distinguish a missing product from insufficient stock
	query, args = r.qb.Select("stock").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var stock int
	err = r.getContext(ctx, &stock, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get product stock: %w", err)
	}
	return entities.InsufficientStockError{Available: stock}
}

// RestoreStock returns reserved inventory after a cancellation.
func (r *productStore) RestoreStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}

func (r *productStore) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *productStore) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}
