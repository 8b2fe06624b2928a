package repo

import (
	"database/sql"
	"time"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
)

type Order struct {
	OrderID       string         `db:"order_id"`
	OrderNumber   string         `db:"order_number"`
	UserID        string         `db:"user_id"`
	ShopID        string         `db:"shop_id"`
	ShopName      sql.NullString `db:"shop_name"`
	PaymentMethod string         `db:"payment_method"`
	PaymentStatus string         `db:"payment_status"`
	Status        string         `db:"status"`

	Subtotal float64 `db:"subtotal"`
	Tax      float64 `db:"tax"`
	Shipping float64 `db:"shipping"`
	Total    float64 `db:"total"`

	ShipStreet  sql.NullString `db:"ship_street"`
	ShipCity    sql.NullString `db:"ship_city"`
	ShipState   sql.NullString `db:"ship_state"`
	ShipZipCode sql.NullString `db:"ship_zip_code"`
	ShipCountry sql.NullString `db:"ship_country"`
	ShipPhone   sql.NullString `db:"ship_phone"`

	PDTransactionID sql.NullString `db:"pd_transaction_id"`
	PDProvider      sql.NullString `db:"pd_provider"`
	PDStatus        sql.NullString `db:"pd_status"`
	PDMessage       sql.NullString `db:"pd_message"`
	PDInitiatedAt   sql.NullTime   `db:"pd_initiated_at"`
	PDPaidAt        sql.NullTime   `db:"pd_paid_at"`
	PDFailedAt      sql.NullTime   `db:"pd_failed_at"`
	PDCancelledAt   sql.NullTime   `db:"pd_cancelled_at"`
	PDReference     sql.NullString `db:"pd_reference"`
	PDFailureReason sql.NullString `db:"pd_failure_reason"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string         `db:"order_id"`
	ProductID string         `db:"product_id"`
	Quantity  int            `db:"quantity"`
	Price     float64        `db:"price"`
	Name      string         `db:"name"`
	Image     sql.NullString `db:"image"`
}

type StatusRecord struct {
	OrderID   string    `db:"order_id"`
	Status    string    `db:"status"`
	UpdatedBy string    `db:"updated_by"`
	CreatedAt time.Time `db:"created_at"`
}

type Product struct {
	ProductID     string         `db:"product_id"`
	Name          string         `db:"name"`
	Image         sql.NullString `db:"image"`
	Price         float64        `db:"price"`
	Stock         int            `db:"stock"`
	ShopID        string         `db:"shop_id"`
	ShopName      string         `db:"shop_name"`
	ShopEmail     string         `db:"shop_email"`
	ShopPushToken sql.NullString `db:"shop_push_token"`
}

type User struct {
	UserID    string         `db:"user_id"`
	Username  string         `db:"username"`
	Email     string         `db:"email"`
	UserType  string         `db:"user_type"`
	PushToken sql.NullString `db:"push_token"`
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     i.Price,
		Name:      i.Name,
		Image:     nullStringToString(i.Image),
	}
}

func StatusRecordToEntity(r StatusRecord) entities.StatusRecord {
	return entities.StatusRecord{
		Status:    entities.OrderStatus(r.Status),
		Timestamp: r.CreatedAt,
		UpdatedBy: r.UpdatedBy,
	}
}

func OrderToEntity(o Order, items []OrderItem, history []StatusRecord) entities.Order {
	order := entities.Order{
		ID:            o.OrderID,
		OrderNumber:   o.OrderNumber,
		UserID:        o.UserID,
		ShopID:        o.ShopID,
		ShopName:      nullStringToString(o.ShopName),
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		Status:        entities.OrderStatus(o.Status),
		Amounts: entities.Amounts{
			Subtotal: o.Subtotal,
			Tax:      o.Tax,
			Shipping: o.Shipping,
			Total:    o.Total,
		},
		ShippingAddress: entities.ShippingAddress{
			Street:  nullStringToString(o.ShipStreet),
			City:    nullStringToString(o.ShipCity),
			State:   nullStringToString(o.ShipState),
			ZipCode: nullStringToString(o.ShipZipCode),
			Country: nullStringToString(o.ShipCountry),
			Phone:   nullStringToString(o.ShipPhone),
		},
		PaymentDetails: entities.PaymentDetails{
			TransactionID:    nullStringToString(o.PDTransactionID),
			Provider:         nullStringToString(o.PDProvider),
			Status:           entities.PaymentStatus(nullStringToString(o.PDStatus)),
			Message:          nullStringToString(o.PDMessage),
			InitiatedAt:      nullTimeToPtr(o.PDInitiatedAt),
			PaidAt:           nullTimeToPtr(o.PDPaidAt),
			FailedAt:         nullTimeToPtr(o.PDFailedAt),
			CancelledAt:      nullTimeToPtr(o.PDCancelledAt),
			PaymentReference: nullStringToString(o.PDReference),
			FailureReason:    nullStringToString(o.PDFailureReason),
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	if len(history) > 0 {
		order.StatusHistory = make([]entities.StatusRecord, 0, len(history))
		for _, r := range history {
			order.StatusHistory = append(order.StatusHistory, StatusRecordToEntity(r))
		}
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:    p.ProductID,
		Name:  p.Name,
		Image: nullStringToString(p.Image),
		Price: p.Price,
		Stock: p.Stock,
		Shop: entities.ShopSummary{
			ID:        p.ShopID,
			Name:      p.ShopName,
			Email:     p.ShopEmail,
			PushToken: nullStringToString(p.ShopPushToken),
		},
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      entities.UserRole(u.UserType),
		PushToken: nullStringToString(u.PushToken),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
