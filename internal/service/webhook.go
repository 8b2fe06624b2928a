package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/pkg/trm"
)

type AuditLog interface {
	Record(ctx context.Context, e entities.AuditEvent) error
}

type webhookService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	products  ProductStore
	users     UserStore
	notifier  Notifier
	audit     AuditLog
	cache     Cache
}

func NewWebhookService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductStore,
	users UserStore,
	notifier Notifier,
	audit AuditLog,
	cache Cache,
) *webhookService {
	return &webhookService{
		logger:    logger.With(slog.String("service", "webhook")),
		txManager: txManager,
		orders:    orders,
		products:  products,
		users:     users,
		notifier:  notifier,
		audit:     audit,
		cache:     cache,
	}
}

// HandleCallback reconciles an asynchronous gateway callback with the order
// it belongs to. It runs concurrently with, and independently of, the
// request that created the order; the settlement compare-and-set guarantees
// that exactly one outcome is ever applied.
func (s *webhookService) HandleCallback(ctx context.Context, raw []byte, cb entities.PaymentCallback) error {
	// the raw payload is audited before any processing
	s.record(ctx, entities.AuditEvent{
		Kind:          entities.AuditCallbackReceived,
		TransactionID: cb.OrderID,
		Payload:       raw,
		At:            time.Now(),
	})

	order, err := s.orders.GetOrderByTransactionID(ctx, cb.OrderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		s.record(ctx, entities.AuditEvent{
			Kind:          entities.AuditOrderNotFound,
			TransactionID: cb.OrderID,
			At:            time.Now(),
		})
		return err
	}
	if err != nil {
		s.recordError(ctx, cb.OrderID, err)
		return err
	}

	outcome, ok := entities.MapGatewayStatus(cb.PaymentStatus)
	if !ok {
		s.logger.WarnContext(ctx, "unhandled webhook status",
			slog.String("payment_status", cb.PaymentStatus),
			slog.String("transaction_id", cb.OrderID),
		)
		s.record(ctx, entities.AuditEvent{
			Kind:          entities.AuditUnhandledStatus,
			TransactionID: cb.OrderID,
			Payload:       raw,
			At:            time.Now(),
		})
		return nil
	}

	reason := cb.Reason
	if reason == "" && outcome == entities.SettlementFailed {
		reason = "Payment failed"
	}
	settlement := entities.PaymentSettlement{
		Outcome:          outcome,
		PaymentReference: cb.Reference,
		FailureReason:    reason,
		SettledAt:        time.Now(),
	}

	err = s.applySettlement(ctx, order, settlement)
	if errors.Is(err, entities.ErrAlreadySettled) {
		// a concurrent writer won the race; re-applying side effects here
		// would double-count stock, so the event is only audited
		s.record(ctx, entities.AuditEvent{
			Kind:          entities.AuditDuplicateEvent,
			TransactionID: cb.OrderID,
			At:            time.Now(),
		})
		return nil
	}
	if err != nil {
		s.recordError(ctx, cb.OrderID, err)
		return err
	}

	s.cache.Remove(order.ID)
	s.logger.InfoContext(ctx, "payment settled",
		slog.String("order_id", order.ID),
		slog.String("outcome", string(outcome)),
	)

	s.notifyBuyer(ctx, order, outcome)
	return nil
}

// applySettlement moves the payment out of pending at most once. A failed or
// cancelled settlement also cancels the order and returns the stock that was
// reserved at creation, all in the same transaction.
func (s *webhookService) applySettlement(ctx context.Context, order entities.Order, settlement entities.PaymentSettlement) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.SettlePayment(ctx, order.ID, settlement); err != nil {
			return err
		}
		if err := s.orders.AppendStatusHistory(ctx, order.ID, order.Status, paymentProvider, settlement.SettledAt); err != nil {
			return err
		}
		if settlement.Outcome != entities.SettlementSuccess {
			for _, item := range order.Items {
				if err := s.products.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *webhookService) notifyBuyer(ctx context.Context, order entities.Order, outcome entities.SettlementOutcome) {
	var message string
	switch outcome {
	case entities.SettlementSuccess:
		message = fmt.Sprintf("Payment for order #%s confirmed", order.OrderNumber)
	case entities.SettlementCancelled:
		message = fmt.Sprintf("Payment for order #%s was cancelled", order.OrderNumber)
	default:
		message = fmt.Sprintf("Payment for order #%s failed", order.OrderNumber)
	}

	var pushToken string
	if buyer, err := s.users.GetUser(ctx, order.UserID); err == nil {
		pushToken = buyer.PushToken
	}

	n := entities.Notification{
		RecipientID: order.UserID,
		Message:     message,
		OrderID:     order.ID,
		PushToken:   pushToken,
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.logger.ErrorContext(ctx, "failed to notify buyer", slog.Any("error", err))
	}
}

// record writes to the audit stream; audit failures are logged but never
// interrupt reconciliation.
func (s *webhookService) record(ctx context.Context, e entities.AuditEvent) {
	if err := s.audit.Record(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to write audit event",
			slog.String("kind", e.Kind), slog.Any("error", err))
	}
}

func (s *webhookService) recordError(ctx context.Context, transactionID string, cause error) {
	s.record(ctx, entities.AuditEvent{
		Kind:          entities.AuditProcessingError,
		TransactionID: transactionID,
		Error:         cause.Error(),
		At:            time.Now(),
	})
}
