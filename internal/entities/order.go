package entities

import (
	"bytes"
	"encoding/gob"
	"math/rand"
	"strconv"
	"time"
)

// TaxRate is applied to the subtotal once, at order creation.
const TaxRate = 0.15

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "pending_payment"
	StatusPending        OrderStatus = "pending"
	StatusProcessing     OrderStatus = "processing"
	StatusShipped        OrderStatus = "shipped"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

// statusFlow holds the allowed fulfillment transitions. An order leaves
// pending_payment only through payment settlement, so it has no manual edges.
var statusFlow = map[OrderStatus][]OrderStatus{
	StatusPendingPayment: {},
	StatusPending:        {StatusProcessing, StatusCancelled},
	StatusProcessing:     {StatusShipped, StatusCancelled},
	StatusShipped:        {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

var statusDescriptions = map[OrderStatus]string{
	StatusPendingPayment: "Order is awaiting payment confirmation",
	StatusPending:        "Order has been placed but not yet processed",
	StatusProcessing:     "Order is being processed and prepared for shipping",
	StatusShipped:        "Order has been shipped and is in transit",
	StatusDelivered:      "Order has been delivered to the customer",
	StatusCancelled:      "Order has been cancelled",
}

func (s OrderStatus) Valid() bool {
	_, ok := statusFlow[s]
	return ok
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range statusFlow[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) NextStatuses() []OrderStatus {
	return statusFlow[s]
}

func (s OrderStatus) Description() string {
	return statusDescriptions[s]
}

// OrderStatuses returns every known status in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPendingPayment,
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

type OrderItem struct {
	ProductID string
	Quantity  int
	// Price and Name are snapshots taken at order time
	Price float64
	Name  string
	Image string
}

type Amounts struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// CalculateAmounts computes the order totals once; they are immutable afterwards.
func CalculateAmounts(price float64, quantity int) Amounts {
	subtotal := price * float64(quantity)
	tax := subtotal * TaxRate
	shipping := 0.0
	return Amounts{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

type ShippingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
	// Phone is required for mobile money
	Phone string
}

type StatusRecord struct {
	Status    OrderStatus
	Timestamp time.Time
	UpdatedBy string
}

type Order struct {
	ID          string
	OrderNumber string
	UserID      string
	ShopID      string

	Items           []OrderItem
	Amounts         Amounts
	ShippingAddress ShippingAddress

	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	PaymentDetails PaymentDetails

	Status        OrderStatus
	StatusHistory []StatusRecord

	CreatedAt time.Time
	UpdatedAt time.Time

	// ShopName is populated on reads for response shaping
	ShopName string
}

// NewOrderNumber generates a human-readable order number. Uniqueness is
// probabilistic, collisions are not checked.
func NewOrderNumber() string {
	return "ORD" + strconv.FormatInt(time.Now().UnixMilli(), 10) + strconv.Itoa(rand.Intn(1000))
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(PaymentDetails{})
	gob.Register(StatusRecord{})
}

// CreateOrderInput is the validated request the lifecycle engine accepts.
type CreateOrderInput struct {
	UserID          string
	ProductID       string
	Quantity        int
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
}

type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Page          int
	Limit         int
}

func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
