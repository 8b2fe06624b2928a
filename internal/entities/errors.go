package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidOrder    = errors.New("invalid order data")
	ErrPaymentFailed   = errors.New("payment processing failed")
	ErrForbidden       = errors.New("not authorized")

	// ErrAlreadySettled means the payment left its pending state earlier;
	// the second writer must no-op instead of re-applying side effects.
	ErrAlreadySettled = errors.New("payment already settled")

	// ErrOrderConflict means a conditional status update matched zero rows
	// because a concurrent writer changed the order first.
	ErrOrderConflict = errors.New("order was modified concurrently")
)

type InsufficientStockError struct {
	Available int
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d items available in stock", e.Available)
}

type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}
