package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    entities.OrderStatus
		to      entities.OrderStatus
		allowed bool
	}{
		{entities.StatusPending, entities.StatusProcessing, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusPending, entities.StatusShipped, false},
		{entities.StatusProcessing, entities.StatusShipped, true},
		{entities.StatusProcessing, entities.StatusCancelled, true},
		{entities.StatusShipped, entities.StatusDelivered, true},
		{entities.StatusShipped, entities.StatusCancelled, true},
		{entities.StatusDelivered, entities.StatusCancelled, false},
		{entities.StatusCancelled, entities.StatusPending, false},
		// settlement is the only way out of pending_payment
		{entities.StatusPendingPayment, entities.StatusPending, false},
		{entities.StatusPendingPayment, entities.StatusCancelled, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range entities.OrderStatuses() {
		assert.True(t, s.Valid())
		assert.NotEmpty(t, s.Description())
	}
	assert.False(t, entities.OrderStatus("teleported").Valid())
}

func TestCalculateAmounts(t *testing.T) {
	amounts := entities.CalculateAmounts(1000, 3)

	assert.InDelta(t, 3000.0, amounts.Subtotal, 0.001)
	assert.InDelta(t, 450.0, amounts.Tax, 0.001)
	assert.InDelta(t, 0.0, amounts.Shipping, 0.001)
	assert.InDelta(t, 3450.0, amounts.Total, 0.001)
}

func TestMapGatewayStatus(t *testing.T) {
	testCases := []struct {
		raw     string
		outcome entities.SettlementOutcome
		ok      bool
	}{
		{"COMPLETED", entities.SettlementSuccess, true},
		{"FAILED", entities.SettlementFailed, true},
		{"CANCELLED", entities.SettlementCancelled, true},
		{"PENDING", "", false},
		{"completed", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		outcome, ok := entities.MapGatewayStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.outcome, outcome, tc.raw)
	}
}

func TestPaymentSettlement_Mapping(t *testing.T) {
	success := entities.PaymentSettlement{Outcome: entities.SettlementSuccess}
	assert.Equal(t, entities.StatusPending, success.OrderStatus())
	assert.Equal(t, entities.PaymentCompleted, success.PaymentStatus())

	failed := entities.PaymentSettlement{Outcome: entities.SettlementFailed}
	assert.Equal(t, entities.StatusCancelled, failed.OrderStatus())
	assert.Equal(t, entities.PaymentFailed, failed.PaymentStatus())

	cancelled := entities.PaymentSettlement{Outcome: entities.SettlementCancelled}
	assert.Equal(t, entities.StatusCancelled, cancelled.OrderStatus())
	assert.Equal(t, entities.PaymentCancelled, cancelled.PaymentStatus())
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:          "order-1",
		OrderNumber: "ORD1",
		UserID:      "user-1",
		Status:      entities.StatusPending,
		Items: []entities.OrderItem{
			{ProductID: "prod-1", Quantity: 2, Price: 1000, Name: "Kitenge Fabric"},
		},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var decoded entities.Order
	require.NoError(t, decoded.Unmarshal(data))
	assert.Equal(t, order, decoded)
}

func TestNewOrderNumber(t *testing.T) {
	n := entities.NewOrderNumber()
	assert.True(t, len(n) > 3)
	assert.Equal(t, "ORD", n[:3])
}
