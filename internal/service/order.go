package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/trm"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/utils"

	"github.com/google/uuid"
)

const paymentProvider = "zenopay"

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByTransactionID(ctx context.Context, transactionID string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID string, f entities.OrderFilter) ([]entities.Order, int, error)
	ListShopOrders(ctx context.Context, shopID string, f entities.OrderFilter) ([]entities.Order, int, error)
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, updatedAt time.Time) error
	AppendStatusHistory(ctx context.Context, orderID string, status entities.OrderStatus, updatedBy string, at time.Time) error
	SettlePayment(ctx context.Context, orderID string, s entities.PaymentSettlement) error
	OverridePaymentStatus(ctx context.Context, orderID string, d entities.PaymentDetails, orderStatus entities.OrderStatus, at time.Time) error
}

type ProductStore interface {
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	ReserveStock(ctx context.Context, productID string, quantity int) error
	RestoreStock(ctx context.Context, productID string, quantity int) error
}

type UserStore interface {
	GetUser(ctx context.Context, userID string) (entities.User, error)
}

type PaymentGateway interface {
	Initiate(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error)
	QueryStatus(ctx context.Context, transactionID string) (string, error)
}

type Notifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductStore
	users     UserStore
	gateway   PaymentGateway
	notifier  Notifier
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductStore,
	users UserStore,
	gateway PaymentGateway,
	notifier Notifier,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		products:  products,
		users:     users,
		gateway:   gateway,
		notifier:  notifier,
		cache:     cache,
	}
}

// CreateOrder validates the request against current product state, prices it,
// settles payment initiation for mobile money, and persists order + stock
// reservation as one transaction. A declined payment leaves nothing behind.
func (s *orderService) CreateOrder(ctx context.Context, in entities.CreateOrderInput) (entities.Order, error) {
	if !in.PaymentMethod.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown payment method %q", entities.ErrInvalidOrder, in.PaymentMethod)
	}
	if in.Quantity < 1 {
		return entities.Order{}, fmt.Errorf("%w: quantity must be at least 1", entities.ErrInvalidOrder)
	}

	product, err := s.products.GetProduct(ctx, in.ProductID)
	if err != nil {
		return entities.Order{}, err
	}
	if product.Stock < in.Quantity {
		return entities.Order{}, entities.InsufficientStockError{Available: product.Stock}
	}

	buyer, err := s.users.GetUser(ctx, in.UserID)
	if err != nil {
		return entities.Order{}, err
	}

	// pricing happens before any external call, so a payment failure can
	// never leave partial amounts behind
	now := time.Now()
	order := entities.Order{
		ID:          uuid.NewString(),
		OrderNumber: entities.NewOrderNumber(),
		UserID:      in.UserID,
		ShopID:      product.Shop.ID,
		Items: []entities.OrderItem{{
			ProductID: product.ID,
			Quantity:  in.Quantity,
			Price:     product.Price,
			Name:      product.Name,
		}},
		Amounts:         entities.CalculateAmounts(product.Price, in.Quantity),
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   entities.PaymentPending,
		Status:          entities.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// payment is initiated before persistence: an order whose payment is
	// already known to have failed is never created
	if in.PaymentMethod == entities.PaymentMethodMobileMoney {
		result, err := s.gateway.Initiate(ctx, entities.ChargeRequest{
			Amount:     order.Amounts.Total,
			BuyerName:  buyer.Username,
			BuyerEmail: buyer.Email,
			BuyerPhone: in.ShippingAddress.Phone,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "payment initiation failed",
				slog.String("user_id", in.UserID), slog.Any("error", err))
			return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrPaymentFailed, err)
		}

		order.Status = entities.StatusPendingPayment
		order.PaymentDetails = entities.PaymentDetails{
			TransactionID: result.TransactionID,
			Provider:      paymentProvider,
			Status:        entities.PaymentPending,
			Message:       result.Message,
			InitiatedAt:   &now,
		}
	}

	// stock reservation and order persistence are one transaction: the
	// availability check and the decrement are a single conditional update
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.products.ReserveStock(ctx, product.ID, in.Quantity); err != nil {
			return err
		}
		return s.orders.SaveOrder(ctx, order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("payment_method", string(order.PaymentMethod)),
	)

	message := fmt.Sprintf("New order #%s for %s", order.OrderNumber, product.Name)
	s.notify(ctx, entities.Notification{
		RecipientID: product.Shop.ID,
		Message:     message,
		OrderID:     order.ID,
		PushToken:   product.Shop.PushToken,
	})
	s.notify(ctx, entities.Notification{
		RecipientID: buyer.ID,
		Message:     fmt.Sprintf("Your order #%s has been placed", order.OrderNumber),
		OrderID:     order.ID,
		PushToken:   buyer.PushToken,
	})

	// re-fetch with shop and product fields populated for response shaping
	created, err := s.orders.GetOrderByID(ctx, order.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to reload created order", slog.Any("error", err))
		return order, nil
	}
	return created, nil
}

// UpdateOrderStatus applies a fulfillment transition. Cancellation restores
// stock for every line item inside the same transaction.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, actor entities.Actor, newStatus entities.OrderStatus) (entities.Order, error) {
	if !newStatus.Valid() {
		return entities.Order{}, fmt.Errorf("%w: invalid status value %q", entities.ErrInvalidOrder, newStatus)
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if actor.ID != order.ShopID && !actor.IsAdmin() {
		return entities.Order{}, entities.ErrForbidden
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return entities.Order{}, entities.InvalidTransitionError{From: order.Status, To: newStatus}
	}

	now := time.Now()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateStatus(ctx, orderID, order.Status, newStatus, now); err != nil {
			return err
		}
		if err := s.orders.AppendStatusHistory(ctx, orderID, order.Status, actor.ID, now); err != nil {
			return err
		}
		if newStatus == entities.StatusCancelled {
			for _, item := range order.Items {
				if err := s.products.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Remove(orderID)
	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(newStatus)),
	)

	return s.orders.GetOrderByID(ctx, orderID)
}

// CheckPaymentStatus queries the provider for the live payment state.
// It is a read-through: the order is never mutated here.
func (s *orderService) CheckPaymentStatus(ctx context.Context, orderID string, actor entities.Actor) (entities.PaymentStatusInfo, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.PaymentStatusInfo{}, err
	}

	if order.UserID != actor.ID {
		return entities.PaymentStatusInfo{}, entities.ErrForbidden
	}
	if order.PaymentDetails.TransactionID == "" {
		return entities.PaymentStatusInfo{}, fmt.Errorf("%w: order has no payment transaction", entities.ErrInvalidOrder)
	}

	status, err := s.gateway.QueryStatus(ctx, order.PaymentDetails.TransactionID)
	if err != nil {
		return entities.PaymentStatusInfo{}, fmt.Errorf("failed to query payment status: %w", err)
	}

	return entities.PaymentStatusInfo{
		PaymentStatus: status,
		TransactionID: order.PaymentDetails.TransactionID,
		Details:       order.PaymentDetails,
	}, nil
}

// UpdatePaymentStatus is the administrative side channel for correcting
// payment state. It bypasses the fulfillment state machine: completed forces
// the order into pending, failed forces cancellation and returns the stock
// that was reserved at creation.
func (s *orderService) UpdatePaymentStatus(ctx context.Context, orderID string, actor entities.Actor, in entities.PaymentOverride) (entities.Order, error) {
	if !actor.IsAdmin() {
		return entities.Order{}, entities.ErrForbidden
	}
	if !in.Status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: invalid payment status %q", entities.ErrInvalidOrder, in.Status)
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	var forced entities.OrderStatus
	switch in.Status {
	case entities.PaymentCompleted:
		forced = entities.StatusPending
	case entities.PaymentFailed:
		forced = entities.StatusCancelled
	}

	// terminal orders are never forced back into the flow
	if forced != "" && (order.Status == entities.StatusDelivered || order.Status == entities.StatusCancelled) {
		return entities.Order{}, entities.InvalidTransitionError{From: order.Status, To: forced}
	}

	details := entities.PaymentDetails{
		Status:           in.Status,
		TransactionID:    in.TransactionID,
		Message:          in.Message,
		PaymentReference: in.PaymentReference,
		FailureReason:    in.FailureReason,
	}

	now := time.Now()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.OverridePaymentStatus(ctx, orderID, details, forced, now); err != nil {
			return err
		}
		if forced != "" && forced != order.Status {
			if err := s.orders.AppendStatusHistory(ctx, orderID, order.Status, actor.ID, now); err != nil {
				return err
			}
		}
		// the terminal guard above ensures the order was never cancelled
		// before, so the creation-time reservation is still outstanding
		if forced == entities.StatusCancelled {
			for _, item := range order.Items {
				if err := s.products.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Remove(orderID)

	buyer, err := s.users.GetUser(ctx, order.UserID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load buyer for notification", slog.Any("error", err))
		buyer = entities.User{ID: order.UserID}
	}
	message := fmt.Sprintf("Payment for order #%s is now %s", order.OrderNumber, in.Status)
	s.notify(ctx, entities.Notification{
		RecipientID: order.UserID,
		Message:     message,
		OrderID:     order.ID,
		PushToken:   buyer.PushToken,
	})

	return s.orders.GetOrderByID(ctx, orderID)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string, actor entities.Actor) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
		}
		return s.authorizeRead(order, actor)
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if data, err := order.Marshal(); err == nil {
		s.cache.Set(orderID, data)
	}

	return s.authorizeRead(order, actor)
}

func (s *orderService) authorizeRead(order entities.Order, actor entities.Actor) (entities.Order, error) {
	if order.UserID != actor.ID && order.ShopID != actor.ID && !actor.IsAdmin() {
		return entities.Order{}, entities.ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListUserOrders(ctx context.Context, actor entities.Actor, f entities.OrderFilter) ([]entities.Order, int, error) {
	return s.orders.ListUserOrders(ctx, actor.ID, normalizeFilter(f))
}

func (s *orderService) ListShopOrders(ctx context.Context, actor entities.Actor, f entities.OrderFilter) ([]entities.Order, int, error) {
	return s.orders.ListShopOrders(ctx, actor.ID, normalizeFilter(f))
}

func normalizeFilter(f entities.OrderFilter) entities.OrderFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
	return f
}

// notify is fire-and-forget: notification infrastructure outages must never
// fail an order operation.
func (s *orderService) notify(ctx context.Context, n entities.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.ErrorContext(ctx, "failed to send notification",
			slog.String("recipient", n.RecipientID), slog.Any("error", err))
	}
}
