package handler

import (
	"time"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
)

// ShippingAddress is required for every order; phone backs mobile money.
type ShippingAddress struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

type CreateOrderRequest struct {
	ProductID       string          `json:"productId" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,gte=1"`
	ShippingAddress ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required,oneof=credit_card debit_card mobile_money"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus  string                `json:"paymentStatus" validate:"required,oneof=pending completed failed cancelled"`
	TransactionID  string                `json:"transactionId,omitempty"`
	PaymentDetails PaymentDetailsPayload `json:"paymentDetails"`
}

type PaymentDetailsPayload struct {
	Message          string `json:"message,omitempty"`
	PaymentReference string `json:"paymentReference,omitempty"`
	FailureReason    string `json:"failureReason,omitempty"`
}

// WebhookPayload is the gateway-defined callback shape; order_id carries the
// transaction id returned at initiation.
type WebhookPayload struct {
	OrderID       string `json:"order_id" validate:"required"`
	PaymentStatus string `json:"payment_status" validate:"required"`
	Reference     string `json:"reference,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type ItemProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type OrderItem struct {
	Product  ItemProduct `json:"product"`
	Quantity int         `json:"quantity"`
	Price    float64     `json:"price"`
}

type Amounts struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type OrderShop struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type PaymentDetails struct {
	TransactionID    string     `json:"transactionId,omitempty"`
	Provider         string     `json:"provider,omitempty"`
	Status           string     `json:"status,omitempty"`
	Message          string     `json:"message,omitempty"`
	InitiatedAt      *time.Time `json:"initiatedAt,omitempty"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
	FailedAt         *time.Time `json:"failedAt,omitempty"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	PaymentReference string     `json:"paymentReference,omitempty"`
	FailureReason    string     `json:"failureReason,omitempty"`
}

type StatusRecord struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updatedBy"`
}

// Order is the API representation of an order.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	User            string          `json:"user"`
	Shop            OrderShop       `json:"shop"`
	Items           []OrderItem     `json:"items"`
	Amounts         Amounts         `json:"amounts"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	PaymentDetails  *PaymentDetails `json:"paymentDetails,omitempty"`
	Status          string          `json:"status"`
	StatusHistory   []StatusRecord  `json:"statusHistory,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type Pagination struct {
	Current      int `json:"current"`
	Total        int `json:"total"`
	TotalRecords int `json:"totalRecords"`
}

type StatusInfo struct {
	Description          string   `json:"description"`
	NextPossibleStatuses []string `json:"nextPossibleStatuses"`
}

type PaymentStatusInfo struct {
	PaymentStatus  string          `json:"paymentStatus"`
	TransactionID  string          `json:"transactionId"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			Product: ItemProduct{
				ID:    it.ProductID,
				Name:  it.Name,
				Image: it.Image,
			},
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	var history []StatusRecord
	for _, r := range o.StatusHistory {
		history = append(history, StatusRecord{
			Status:    string(r.Status),
			Timestamp: r.Timestamp,
			UpdatedBy: r.UpdatedBy,
		})
	}

	order := Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		User:        o.UserID,
		Shop:        OrderShop{ID: o.ShopID, Name: o.ShopName},
		Items:       items,
		Amounts: Amounts{
			Subtotal: o.Amounts.Subtotal,
			Tax:      o.Amounts.Tax,
			Shipping: o.Amounts.Shipping,
			Total:    o.Amounts.Total,
		},
		ShippingAddress: ShippingAddress{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
			Phone:   o.ShippingAddress.Phone,
		},
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		Status:        string(o.Status),
		StatusHistory: history,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if o.PaymentDetails.TransactionID != "" || o.PaymentDetails.Status != "" {
		order.PaymentDetails = PaymentDetailsEntityToJSON(o.PaymentDetails)
	}

	return order
}

func PaymentDetailsEntityToJSON(d entities.PaymentDetails) *PaymentDetails {
	return &PaymentDetails{
		TransactionID:    d.TransactionID,
		Provider:         d.Provider,
		Status:           string(d.Status),
		Message:          d.Message,
		InitiatedAt:      d.InitiatedAt,
		PaidAt:           d.PaidAt,
		FailedAt:         d.FailedAt,
		CancelledAt:      d.CancelledAt,
		PaymentReference: d.PaymentReference,
		FailureReason:    d.FailureReason,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}

func ShippingAddressToEntity(a ShippingAddress) entities.ShippingAddress {
	return entities.ShippingAddress{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
		Country: a.Country,
		Phone:   a.Phone,
	}
}

func WebhookPayloadToEntity(p WebhookPayload) entities.PaymentCallback {
	return entities.PaymentCallback{
		OrderID:       p.OrderID,
		PaymentStatus: p.PaymentStatus,
		Reference:     p.Reference,
		Reason:        p.Reason,
	}
}
