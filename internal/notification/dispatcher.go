package notification

import (
	"context"
	"log/slog"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"

	"golang.org/x/sync/errgroup"
)

type Store interface {
	SaveNotification(ctx context.Context, n entities.Notification) error
}

type Pusher interface {
	SendPush(ctx context.Context, token, message string) error
}

// Dispatcher delivers a notification as a persistent in-app record plus a
// best-effort push message when the recipient has a device token.
type Dispatcher struct {
	logger *slog.Logger
	store  Store
	pusher Pusher
}

func NewDispatcher(logger *slog.Logger, store Store, pusher Pusher) *Dispatcher {
	return &Dispatcher{
		logger: logger.With(slog.String("service", "notification")),
		store:  store,
		pusher: pusher,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, n entities.Notification) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return d.store.SaveNotification(ctx, n)
	})

	if n.PushToken != "" {
		g.Go(func() error {
			if err := d.pusher.SendPush(ctx, n.PushToken, n.Message); err != nil {
				// push delivery is best effort, only the persistent record matters
				d.logger.ErrorContext(ctx, "failed to send push notification",
					slog.String("recipient", n.RecipientID), slog.Any("error", err))
			}
			return nil
		})
	}

	return g.Wait()
}
