package entities

import "time"

type PaymentMethod string

const (
	PaymentMethodCreditCard  PaymentMethod = "credit_card"
	PaymentMethodDebitCard   PaymentMethod = "debit_card"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodMobileMoney:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}

type PaymentDetails struct {
	// TransactionID is the gateway-assigned reference and the join key
	// used by webhook reconciliation
	TransactionID string
	Provider      string
	Status        PaymentStatus
	Message       string

	InitiatedAt *time.Time
	PaidAt      *time.Time
	FailedAt    *time.Time
	CancelledAt *time.Time

	PaymentReference string
	FailureReason    string
}

type SettlementOutcome string

const (
	SettlementSuccess   SettlementOutcome = "success"
	SettlementFailed    SettlementOutcome = "failed"
	SettlementCancelled SettlementOutcome = "cancelled"
)

// gatewayStatuses maps the Zenopay status vocabulary to settlement outcomes.
var gatewayStatuses = map[string]SettlementOutcome{
	"COMPLETED": SettlementSuccess,
	"FAILED":    SettlementFailed,
	"CANCELLED": SettlementCancelled,
}

// MapGatewayStatus resolves a raw gateway status. Unrecognized statuses
// return ok=false and must not cause any mutation.
func MapGatewayStatus(raw string) (SettlementOutcome, bool) {
	outcome, ok := gatewayStatuses[raw]
	return outcome, ok
}

// PaymentSettlement is the single outcome applied to an order's payment.
// Settlement is guarded by a compare-and-set on the pending payment state,
// so at most one settlement ever lands per order.
type PaymentSettlement struct {
	Outcome          SettlementOutcome
	PaymentReference string
	FailureReason    string
	SettledAt        time.Time
}

// OrderStatus returns the fulfillment status implied by the settlement.
func (s PaymentSettlement) OrderStatus() OrderStatus {
	if s.Outcome == SettlementSuccess {
		return StatusPending
	}
	return StatusCancelled
}

// PaymentStatus returns the payment status implied by the settlement.
func (s PaymentSettlement) PaymentStatus() PaymentStatus {
	switch s.Outcome {
	case SettlementSuccess:
		return PaymentCompleted
	case SettlementCancelled:
		return PaymentCancelled
	default:
		return PaymentFailed
	}
}

// PaymentCallback is the payload the gateway pushes to the webhook endpoint.
// OrderID carries the value previously returned as TransactionID.
type PaymentCallback struct {
	OrderID       string
	PaymentStatus string
	Reference     string
	Reason        string
}

// ChargeRequest initiates a mobile-money charge with the gateway.
type ChargeRequest struct {
	Amount     float64
	BuyerName  string
	BuyerEmail string
	BuyerPhone string
}

type ChargeResult struct {
	TransactionID string
	Status        string
	Message       string
}

// PaymentOverride is the administrative correction applied through the
// payment-status side channel.
type PaymentOverride struct {
	Status           PaymentStatus
	TransactionID    string
	Message          string
	PaymentReference string
	FailureReason    string
}

// PaymentStatusInfo is the read-through view of a payment: stored details
// plus the provider's live status. Building it never mutates the order.
type PaymentStatusInfo struct {
	PaymentStatus string
	TransactionID string
	Details       PaymentDetails
}
