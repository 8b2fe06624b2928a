package notification_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"
	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/notification"
)

type stubStore struct {
	saved []entities.Notification
	err   error
}

func (s *stubStore) SaveNotification(ctx context.Context, n entities.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, n)
	return nil
}

type stubPusher struct {
	sent []string
	err  error
}

func (p *stubPusher) SendPush(ctx context.Context, token, message string) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, token)
	return nil
}

func newDispatcher(store *stubStore, pusher *stubPusher) *notification.Dispatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return notification.NewDispatcher(logger, store, pusher)
}

func TestDispatcher_Notify(t *testing.T) {
	t.Run("persists and pushes", func(t *testing.T) {
		store := &stubStore{}
		pusher := &stubPusher{}

		err := newDispatcher(store, pusher).Notify(context.Background(), entities.Notification{
			RecipientID: "user-1",
			Message:     "Your order has been placed",
			PushToken:   "ExponentPushToken[abc]",
		})

		assert.NoError(t, err)
		assert.Len(t, store.saved, 1)
		assert.Equal(t, []string{"ExponentPushToken[abc]"}, pusher.sent)
	})

	t.Run("no push token skips push", func(t *testing.T) {
		store := &stubStore{}
		pusher := &stubPusher{}

		err := newDispatcher(store, pusher).Notify(context.Background(), entities.Notification{
			RecipientID: "user-1",
			Message:     "hello",
		})

		assert.NoError(t, err)
		assert.Empty(t, pusher.sent)
	})

	t.Run("push failure is swallowed", func(t *testing.T) {
		store := &stubStore{}
		pusher := &stubPusher{err: errors.New("expo down")}

		err := newDispatcher(store, pusher).Notify(context.Background(), entities.Notification{
			RecipientID: "user-1",
			Message:     "hello",
			PushToken:   "token",
		})

		assert.NoError(t, err)
		assert.Len(t, store.saved, 1)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		store := &stubStore{err: errors.New("db down")}
		pusher := &stubPusher{}

		err := newDispatcher(store, pusher).Notify(context.Background(), entities.Notification{
			RecipientID: "user-1",
			Message:     "hello",
		})

		assert.Error(t, err)
	})
}
