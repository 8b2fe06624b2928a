package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"o.order_id", "o.order_number", "o.user_id", "o.shop_id",
	"s.name AS shop_name",
	"o.payment_method", "o.payment_status", "o.status",
	"o.subtotal", "o.tax", "o.shipping", "o.total",
	"o.ship_street", "o.ship_city", "o.ship_state", "o.ship_zip_code", "o.ship_country", "o.ship_phone",
	"o.pd_transaction_id", "o.pd_provider", "o.pd_status", "o.pd_message",
	"o.pd_initiated_at", "o.pd_paid_at", "o.pd_failed_at", "o.pd_cancelled_at",
	"o.pd_reference", "o.pd_failure_reason",
	"o.created_at", "o.updated_at",
}

type orderRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "order_number", "user_id", "shop_id",
			"payment_method", "payment_status", "status",
			"subtotal", "tax", "shipping", "total",
			"ship_street", "ship_city", "ship_state", "ship_zip_code", "ship_country", "ship_phone",
			"pd_transaction_id", "pd_provider", "pd_status", "pd_message", "pd_initiated_at",
			"created_at", "updated_at",
		).
		Values(
			o.ID, o.OrderNumber, o.UserID, o.ShopID,
			string(o.PaymentMethod), string(o.PaymentStatus), string(o.Status),
			o.Amounts.Subtotal, o.Amounts.Tax, o.Amounts.Shipping, o.Amounts.Total,
			nullString(o.ShippingAddress.Street),
			nullString(o.ShippingAddress.City),
			nullString(o.ShippingAddress.State),
			nullString(o.ShippingAddress.ZipCode),
			nullString(o.ShippingAddress.Country),
			nullString(o.ShippingAddress.Phone),
			nullString(o.PaymentDetails.TransactionID),
			nullString(o.PaymentDetails.Provider),
			nullString(string(o.PaymentDetails.Status)),
			nullString(o.PaymentDetails.Message),
			nullTime(o.PaymentDetails.InitiatedAt),
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	return r.saveItems(ctx, o.ID, o.Items)
}

func (r *orderRepo) saveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "quantity", "price", "name")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Quantity, it.Price, it.Name)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"o.order_id": orderID})
}

// GetOrderByTransactionID resolves the order a gateway callback belongs to.
// pd_transaction_id carries a unique index, so at most one order matches.
func (r *orderRepo) GetOrderByTransactionID(ctx context.Context, transactionID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"o.pd_transaction_id": transactionID})
}

func (r *orderRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders o").
		LeftJoin("shops s ON s.shop_id = o.shop_id").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("i.order_id", "i.product_id", "i.quantity", "i.price", "i.name", "p.image").
		From("order_items i").
		LeftJoin("products p ON p.product_id = i.product_id").
		Where(sq.Eq{"i.order_id": order.OrderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	query, args = r.qb.Select("order_id", "status", "updated_by", "created_at").
		From("order_status_history").
		Where(sq.Eq{"order_id": order.OrderID}).
		OrderBy("created_at ASC").
		MustSql()

	var history []StatusRecord
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get status history: %w", err)
	}

	return OrderToEntity(order, items, history), nil
}

func (r *orderRepo) ListUserOrders(ctx context.Context, userID string, f entities.OrderFilter) ([]entities.Order, int, error) {
	return r.listOrders(ctx, sq.Eq{"o.user_id": userID}, f)
}

func (r *orderRepo) ListShopOrders(ctx context.Context, shopID string, f entities.OrderFilter) ([]entities.Order, int, error) {
	return r.listOrders(ctx, sq.Eq{"o.shop_id": shopID}, f)
}

func (r *orderRepo) listOrders(ctx context.Context, where sq.Eq, f entities.OrderFilter) ([]entities.Order, int, error) {
	if f.Status != "" {
		where["o.status"] = string(f.Status)
	}
	if f.PaymentStatus != "" {
		where["o.payment_status"] = string(f.PaymentStatus)
	}

	query, args := r.qb.Select("COUNT(*)").
		From("orders o").
		Where(where).
		MustSql()

	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = r.qb.Select(orderColumns...).
		From("orders o").
		LeftJoin("shops s ON s.shop_id = o.shop_id").
		Where(where).
		OrderBy("o.created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, total, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}

	query, args = r.qb.Select("i.order_id", "i.product_id", "i.quantity", "i.price", "i.name", "p.image").
		From("order_items i").
		LeftJoin("products p ON p.product_id = i.product_id").
		Where(sq.Eq{"i.order_id": ids}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.OrderID], nil))
	}

	return result, total, nil
}

// UpdateStatus mutates status only when the order is still in the expected
// state, so concurrent writers cannot skip or repeat a transition.
func (r *orderRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, updatedAt time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"order_id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderConflict
	}
	return nil
}

func (r *orderRepo) AppendStatusHistory(ctx context.Context, orderID string, status entities.OrderStatus, updatedBy string, at time.Time) error {
	query, args := r.qb.Insert("order_status_history").
		Columns("order_id", "status", "updated_by", "created_at").
		Values(orderID, string(status), updatedBy, at).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

// SettlePayment applies a settlement outcome with a compare-and-set on the
// pending payment state. A payment leaves pending at most once; the losing
// writer gets ErrAlreadySettled and must not re-apply side effects.
func (r *orderRepo) SettlePayment(ctx context.Context, orderID string, s entities.PaymentSettlement) error {
	q := r.qb.Update("orders").
		Set("pd_status", string(s.PaymentStatus())).
		Set("payment_status", string(s.PaymentStatus())).
		Set("status", string(s.OrderStatus())).
		Set("updated_at", s.SettledAt)

	switch s.Outcome {
	case entities.SettlementSuccess:
		q = q.Set("pd_paid_at", s.SettledAt).
			Set("pd_reference", nullString(s.PaymentReference))
	case entities.SettlementFailed:
		q = q.Set("pd_failed_at", s.SettledAt).
			Set("pd_failure_reason", nullString(s.FailureReason))
	case entities.SettlementCancelled:
		q = q.Set("pd_cancelled_at", s.SettledAt)
	}

	query, args := q.
		Where(sq.Eq{"order_id": orderID, "pd_status": string(entities.PaymentPending)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to settle payment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrAlreadySettled
	}
	return nil
}

// OverridePaymentStatus is the administrative side channel: it rewrites the
// payment state unconditionally, bypassing the settlement compare-and-set.
func (r *orderRepo) OverridePaymentStatus(ctx context.Context, orderID string, d entities.PaymentDetails, orderStatus entities.OrderStatus, at time.Time) error {
	q := r.qb.Update("orders").
		Set("pd_status", string(d.Status)).
		Set("payment_status", string(d.Status)).
		Set("updated_at", at)

	if orderStatus != "" {
		q = q.Set("status", string(orderStatus))
	}
	if d.TransactionID != "" {
		q = q.Set("pd_transaction_id", d.TransactionID)
	}
	if d.Message != "" {
		q = q.Set("pd_message", d.Message)
	}
	if d.PaymentReference != "" {
		q = q.Set("pd_reference", d.PaymentReference)
	}
	if d.FailureReason != "" {
		q = q.Set("pd_failure_reason", d.FailureReason)
	}
	switch d.Status {
	case entities.PaymentCompleted:
		q = q.Set("pd_paid_at", at)
	case entities.PaymentFailed:
		q = q.Set("pd_failed_at", at)
	case entities.PaymentCancelled:
		q = q.Set("pd_cancelled_at", at)
	}

	query, args := q.Where(sq.Eq{"order_id": orderID}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to override payment status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *orderRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *orderRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
