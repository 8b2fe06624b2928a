package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/service"
	mocks "github.com/KIBUTI-SOFTWARE/swahili-api/internal/service/mocks"
	txMocks "github.com/KIBUTI-SOFTWARE/swahili-api/pkg/trm/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type orderServiceMocks struct {
	orders   *mocks.MockOrderRepo
	products *mocks.MockProductStore
	users    *mocks.MockUserStore
	gateway  *mocks.MockPaymentGateway
	notifier *mocks.MockNotifier
	cache    *mocks.MockCache
	tx       *txMocks.MockManager
}

func newOrderServiceMocks(t *testing.T) orderServiceMocks {
	m := orderServiceMocks{
		orders:   mocks.NewMockOrderRepo(t),
		products: mocks.NewMockProductStore(t),
		users:    mocks.NewMockUserStore(t),
		gateway:  mocks.NewMockPaymentGateway(t),
		notifier: mocks.NewMockNotifier(t),
		cache:    mocks.NewMockCache(t),
		tx:       txMocks.NewMockManager(t),
	}
	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	return m
}

type orderAPI interface {
	CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error)
	ListUserOrders(ctx context.Context, actor entities.Actor, f entities.OrderFilter) ([]entities.Order, int, error)
	ListShopOrders(ctx context.Context, actor entities.Actor, f entities.OrderFilter) ([]entities.Order, int, error)
	UpdateOrderStatus(ctx context.Context, orderID string, actor entities.Actor, newStatus entities.OrderStatus) (entities.Order, error)
	CheckPaymentStatus(ctx context.Context, orderID string, actor entities.Actor) (entities.PaymentStatusInfo, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, actor entities.Actor, in entities.PaymentOverride) (entities.Order, error)
}

func (m orderServiceMocks) build() orderAPI {
	return service.NewOrderService(newTestLogger(), m.tx, m.orders, m.products, m.users, m.gateway, m.notifier, m.cache)
}

var testProduct = entities.Product{
	ID:    "prod-1",
	Name:  "Kitenge Fabric",
	Price: 1000,
	Stock: 5,
	Shop: entities.ShopSummary{
		ID:   "shop-1",
		Name: "Mama Ntilie Shop",
	},
}

var testBuyer = entities.User{
	ID:       "user-1",
	Username: "asha",
	Email:    "asha@example.com",
	Role:     entities.RoleBuyer,
}

func TestOrderService_CreateOrder(t *testing.T) {
	gatewayError := errors.New("gateway unreachable")
	dbError := errors.New("db error")

	validInput := entities.CreateOrderInput{
		UserID:    "user-1",
		ProductID: "prod-1",
		Quantity:  2,
		ShippingAddress: entities.ShippingAddress{
			Street: "Uhuru St", City: "Dar es Salaam", State: "DSM",
			ZipCode: "11101", Country: "TZ", Phone: "+255700000001",
		},
		PaymentMethod: entities.PaymentMethodMobileMoney,
	}

	testCases := []struct {
		name         string
		input        entities.CreateOrderInput
		mockBehavior func(m orderServiceMocks)
		check        func(t *testing.T, order entities.Order)
		wantErr      error
	}{
		{
			name:  "OK mobile money",
			input: validInput,
			mockBehavior: func(m orderServiceMocks) {
				m.products.EXPECT().GetProduct(mock.Anything, "prod-1").Return(testProduct, nil)
				m.users.EXPECT().GetUser(mock.Anything, "user-1").Return(testBuyer, nil)
				m.gateway.EXPECT().Initiate(mock.Anything, mock.Anything).
					Return(entities.ChargeResult{TransactionID: "tx-123", Status: "success"}, nil)
				m.products.EXPECT().ReserveStock(mock.Anything, "prod-1", 2).Return(nil)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, o entities.Order) {
						assert.Equal(t, entities.StatusPendingPayment, o.Status)
						assert.Equal(t, entities.PaymentPending, o.PaymentStatus)
						assert.Equal(t, "tx-123", o.PaymentDetails.TransactionID)
						assert.InDelta(t, 2000.0, o.Amounts.Subtotal, 0.001)
						assert.InDelta(t, 300.0, o.Amounts.Tax, 0.001)
						assert.InDelta(t, 2300.0, o.Amounts.Total, 0.001)
					}).Return(nil)
				m.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Twice()
				m.orders.EXPECT().GetOrderByID(mock.Anything, mock.Anything).
					Return(entities.Order{ID: "order-1", Status: entities.StatusPendingPayment}, nil)
			},
			check: func(t *testing.T, order entities.Order) {
				assert.Equal(t, "order-1", order.ID)
			},
		},
		{
			name: "OK card payment skips gateway",
			input: func() entities.CreateOrderInput {
				in := validInput
				in.PaymentMethod = entities.PaymentMethodCreditCard
				return in
			}(),
			mockBehavior: func(m orderServiceMocks) {
				m.products.EXPECT().GetProduct(mock.Anything, "prod-1").Return(testProduct, nil)
				m.users.EXPECT().GetUser(mock.Anything, "user-1").Return(testBuyer, nil)
				m.products.EXPECT().ReserveStock(mock.Anything, "prod-1", 2).Return(nil)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, o entities.Order) {
						assert.Equal(t, entities.StatusPending, o.Status)
						assert.Empty(t, o.PaymentDetails.TransactionID)
					}).Return(nil)
				m.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil).Twice()
				m.orders.EXPECT().GetOrderByID(mock.Anything, mock.Anything).
					Return(entities.Order{ID: "order-2"}, nil)
			},
		},
		{
			name:  "payment declined leaves nothing behind",
			input: validInput,
			mockBehavior: func(m orderServiceMocks) {
				m.products.EXPECT().GetProduct(mock.Anything, "prod-1").Return(testProduct, nil)
				m.users.EXPECT().GetUser(mock.Anything, "user-1").Return(testBuyer, nil)
				m.gateway.EXPECT().Initiate(mock.Anything, mock.Anything).
					Return(entities.ChargeResult{}, gatewayError)
			},
			wantErr: entities.ErrPaymentFailed,
		},
		{
			name: "insufficient stock",
			input: func() entities.CreateOrderInput {
				in := validInput
				in.Quantity = 10
				return in
			}(),
			mockBehavior: func(m orderServiceMocks) {
				m.products.EXPECT().GetProduct(mock.Anything, "prod-1").Return(testProduct, nil)
			},
			wantErr: entities.InsufficientStockError{Available: 5},
		},
		{
			name: "unknown payment method",
			input: func() entities.CreateOrderInput {
				in := validInput
				in.PaymentMethod = "barter"
				return in
			}(),
			mockBehavior: func(m orderServiceMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "zero quantity",
			input: func() entities.CreateOrderInput {
				in := validInput
				in.Quantity = 0
				return in
			}(),
			mockBehavior: func(m orderServiceMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:  "product not found",
			input: validInput,
			mockBehavior: func(m orderServiceMocks) {
				m.products.EXPECT().GetProduct(mock.Anything, "prod-1").
					Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "save fails inside transaction",
			input: validInput,
			mockBehavior: func(m orderServiceMocks) {
				m.products.EXPECT().GetProduct(mock.Anything, "prod-1").Return(testProduct, nil)
				m.users.EXPECT().GetUser(mock.Anything, "user-1").Return(testBuyer, nil)
				m.gateway.EXPECT().Initiate(mock.Anything, mock.Anything).
					Return(entities.ChargeResult{TransactionID: "tx-123"}, nil)
				m.products.EXPECT().ReserveStock(mock.Anything, "prod-1", 2).Return(nil)
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderServiceMocks(t)
			tc.mockBehavior(m)

			order, err := m.build().CreateOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				var stockErr entities.InsufficientStockError
				if errors.As(tc.wantErr, &stockErr) {
					var got entities.InsufficientStockError
					require.ErrorAs(t, err, &got)
					assert.Equal(t, stockErr.Available, got.Available)
					return
				}
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, order)
			}
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	shopActor := entities.Actor{ID: "shop-1", Role: entities.RoleShop}
	adminActor := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}

	pendingOrder := entities.Order{
		ID:     "order-1",
		ShopID: "shop-1",
		UserID: "user-1",
		Status: entities.StatusPending,
		Items: []entities.OrderItem{
			{ProductID: "prod-1", Quantity: 2},
		},
	}

	testCases := []struct {
		name         string
		actor        entities.Actor
		newStatus    entities.OrderStatus
		mockBehavior func(m orderServiceMocks)
		wantErr      error
	}{
		{
			name:      "shop moves order to processing",
			actor:     shopActor,
			newStatus: entities.StatusProcessing,
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder, nil).Once()
				m.orders.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusProcessing, mock.Anything).Return(nil)
				m.orders.EXPECT().AppendStatusHistory(mock.Anything, "order-1", entities.StatusPending, "shop-1", mock.Anything).Return(nil)
				m.cache.EXPECT().Remove("order-1").Return()
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusProcessing}, nil).Once()
			},
		},
		{
			name:      "cancellation restores stock",
			actor:     adminActor,
			newStatus: entities.StatusCancelled,
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder, nil).Once()
				m.orders.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusCancelled, mock.Anything).Return(nil)
				m.orders.EXPECT().AppendStatusHistory(mock.Anything, "order-1", entities.StatusPending, "admin-1", mock.Anything).Return(nil)
				m.products.EXPECT().RestoreStock(mock.Anything, "prod-1", 2).Return(nil)
				m.cache.EXPECT().Remove("order-1").Return()
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusCancelled}, nil).Once()
			},
		},
		{
			name:      "stranger is rejected",
			actor:     entities.Actor{ID: "other-shop", Role: entities.RoleShop},
			newStatus: entities.StatusProcessing,
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder, nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:      "terminal status rejects transitions",
			actor:     shopActor,
			newStatus: entities.StatusProcessing,
			mockBehavior: func(m orderServiceMocks) {
				delivered := pendingOrder
				delivered.Status = entities.StatusDelivered
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(delivered, nil)
			},
			wantErr: entities.InvalidTransitionError{From: entities.StatusDelivered, To: entities.StatusProcessing},
		},
		{
			name:      "awaiting payment has no manual transitions",
			actor:     shopActor,
			newStatus: entities.StatusPending,
			mockBehavior: func(m orderServiceMocks) {
				awaiting := pendingOrder
				awaiting.Status = entities.StatusPendingPayment
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(awaiting, nil)
			},
			wantErr: entities.InvalidTransitionError{From: entities.StatusPendingPayment, To: entities.StatusPending},
		},
		{
			name:         "invalid status value",
			actor:        shopActor,
			newStatus:    "teleported",
			mockBehavior: func(m orderServiceMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:      "concurrent update surfaces conflict",
			actor:     shopActor,
			newStatus: entities.StatusProcessing,
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(pendingOrder, nil)
				m.orders.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.StatusPending, entities.StatusProcessing, mock.Anything).
					Return(entities.ErrOrderConflict)
			},
			wantErr: entities.ErrOrderConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderServiceMocks(t)
			tc.mockBehavior(m)

			_, err := m.build().UpdateOrderStatus(context.Background(), "order-1", tc.actor, tc.newStatus)

			if tc.wantErr != nil {
				var transitionErr entities.InvalidTransitionError
				if errors.As(tc.wantErr, &transitionErr) {
					var got entities.InvalidTransitionError
					require.ErrorAs(t, err, &got)
					assert.Equal(t, transitionErr, got)
					return
				}
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	buyerActor := entities.Actor{ID: "user-1", Role: entities.RoleBuyer}

	storedOrder := entities.Order{
		ID:     "order-1",
		UserID: "user-1",
		ShopID: "shop-1",
		Status: entities.StatusPending,
	}
	cachedData, err := storedOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		actor        entities.Actor
		mockBehavior func(m orderServiceMocks)
		wantErr      error
	}{
		{
			name:  "cache hit",
			actor: buyerActor,
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("order-1").Return(cachedData, true)
			},
		},
		{
			name:  "cache miss falls back to repo and fills cache",
			actor: buyerActor,
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("order-1").Return(nil, false)
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(storedOrder, nil)
				m.cache.EXPECT().Set("order-1", mock.Anything).Return()
			},
		},
		{
			name:  "transient repo error is retried",
			actor: buyerActor,
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("order-1").Return(nil, false)
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Once().Return(entities.Order{}, errors.New("temporary error"))
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Once().Return(storedOrder, nil)
				m.cache.EXPECT().Set("order-1", mock.Anything).Return()
			},
		},
		{
			name:  "not found is not retried",
			actor: buyerActor,
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("order-1").Return(nil, false)
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Once().Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:  "unrelated reader is rejected",
			actor: entities.Actor{ID: "user-2", Role: entities.RoleBuyer},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("order-1").Return(cachedData, true)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "shop owner can read",
			actor: entities.Actor{ID: "shop-1", Role: entities.RoleShop},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("order-1").Return(cachedData, true)
			},
		},
		{
			name:  "admin can read",
			actor: entities.Actor{ID: "someone-else", Role: entities.RoleAdmin},
			mockBehavior: func(m orderServiceMocks) {
				m.cache.EXPECT().Get("order-1").Return(cachedData, true)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderServiceMocks(t)
			tc.mockBehavior(m)

			order, err := m.build().GetOrderByID(context.Background(), "order-1", tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, storedOrder.ID, order.ID)
		})
	}
}

func TestOrderService_CheckPaymentStatus(t *testing.T) {
	buyerActor := entities.Actor{ID: "user-1", Role: entities.RoleBuyer}

	paidOrder := entities.Order{
		ID:     "order-1",
		UserID: "user-1",
		PaymentDetails: entities.PaymentDetails{
			TransactionID: "tx-123",
			Provider:      "zenopay",
		},
	}

	testCases := []struct {
		name         string
		actor        entities.Actor
		mockBehavior func(m orderServiceMocks)
		wantStatus   string
		wantErr      error
	}{
		{
			name:  "OK",
			actor: buyerActor,
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidOrder, nil)
				m.gateway.EXPECT().QueryStatus(mock.Anything, "tx-123").Return("COMPLETED", nil)
			},
			wantStatus: "COMPLETED",
		},
		{
			name:  "only the buyer may ask",
			actor: entities.Actor{ID: "shop-1", Role: entities.RoleShop},
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidOrder, nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:  "order without transaction",
			actor: buyerActor,
			mockBehavior: func(m orderServiceMocks) {
				bare := paidOrder
				bare.PaymentDetails = entities.PaymentDetails{}
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(bare, nil)
			},
			wantErr: entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderServiceMocks(t)
			tc.mockBehavior(m)

			info, err := m.build().CheckPaymentStatus(context.Background(), "order-1", tc.actor)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, info.PaymentStatus)
			assert.Equal(t, "tx-123", info.TransactionID)
		})
	}
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	adminActor := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}

	awaitingOrder := entities.Order{
		ID:          "order-1",
		OrderNumber: "ORD1",
		UserID:      "user-1",
		Status:      entities.StatusPendingPayment,
		Items: []entities.OrderItem{
			{ProductID: "prod-1", Quantity: 3},
		},
	}

	testCases := []struct {
		name         string
		actor        entities.Actor
		override     entities.PaymentOverride
		mockBehavior func(m orderServiceMocks)
		wantErr      error
	}{
		{
			name:     "completed forces order into fulfillment",
			actor:    adminActor,
			override: entities.PaymentOverride{Status: entities.PaymentCompleted},
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(awaitingOrder, nil).Once()
				m.orders.EXPECT().OverridePaymentStatus(mock.Anything, "order-1", mock.Anything, entities.StatusPending, mock.Anything).Return(nil)
				m.orders.EXPECT().AppendStatusHistory(mock.Anything, "order-1", entities.StatusPendingPayment, "admin-1", mock.Anything).Return(nil)
				m.cache.EXPECT().Remove("order-1").Return()
				m.users.EXPECT().GetUser(mock.Anything, "user-1").Return(testBuyer, nil)
				m.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusPending}, nil).Once()
			},
		},
		{
			name:     "failed cancels the order and returns stock",
			actor:    adminActor,
			override: entities.PaymentOverride{Status: entities.PaymentFailed, FailureReason: "Charge reversed"},
			mockBehavior: func(m orderServiceMocks) {
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(awaitingOrder, nil).Once()
				m.orders.EXPECT().OverridePaymentStatus(mock.Anything, "order-1", mock.Anything, entities.StatusCancelled, mock.Anything).Return(nil)
				m.orders.EXPECT().AppendStatusHistory(mock.Anything, "order-1", entities.StatusPendingPayment, "admin-1", mock.Anything).Return(nil)
				m.products.EXPECT().RestoreStock(mock.Anything, "prod-1", 3).Return(nil)
				m.cache.EXPECT().Remove("order-1").Return()
				m.users.EXPECT().GetUser(mock.Anything, "user-1").Return(testBuyer, nil)
				m.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").
					Return(entities.Order{ID: "order-1", Status: entities.StatusCancelled}, nil).Once()
			},
		},
		{
			name:         "non-admin is rejected",
			actor:        entities.Actor{ID: "shop-1", Role: entities.RoleShop},
			override:     entities.PaymentOverride{Status: entities.PaymentCompleted},
			mockBehavior: func(m orderServiceMocks) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:     "terminal order is never forced back",
			actor:    adminActor,
			override: entities.PaymentOverride{Status: entities.PaymentFailed},
			mockBehavior: func(m orderServiceMocks) {
				delivered := awaitingOrder
				delivered.Status = entities.StatusDelivered
				m.orders.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(delivered, nil)
			},
			wantErr: entities.InvalidTransitionError{From: entities.StatusDelivered, To: entities.StatusCancelled},
		},
		{
			name:         "invalid payment status",
			actor:        adminActor,
			override:     entities.PaymentOverride{Status: "refunded-ish"},
			mockBehavior: func(m orderServiceMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderServiceMocks(t)
			tc.mockBehavior(m)

			_, err := m.build().UpdatePaymentStatus(context.Background(), "order-1", tc.actor, tc.override)

			if tc.wantErr != nil {
				var transitionErr entities.InvalidTransitionError
				if errors.As(tc.wantErr, &transitionErr) {
					var got entities.InvalidTransitionError
					require.ErrorAs(t, err, &got)
					assert.Equal(t, transitionErr, got)
					return
				}
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_ListOrders_NormalizesFilter(t *testing.T) {
	m := newOrderServiceMocks(t)
	actor := entities.Actor{ID: "user-1", Role: entities.RoleBuyer}

	m.orders.EXPECT().
		ListUserOrders(mock.Anything, "user-1", entities.OrderFilter{Page: 1, Limit: 10}).
		Return(nil, 0, nil)

	_, _, err := m.build().ListUserOrders(context.Background(), actor, entities.OrderFilter{})
	assert.NoError(t, err)
}
