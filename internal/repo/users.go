package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/KIBUTI-SOFTWARE/swahili-api/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type userStore struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewUserStore(db *sqlx.DB) *userStore {
	return &userStore{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *userStore) GetUser(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select("user_id", "username", "email", "user_type", "push_token").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var user User
	err := r.db.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return UserToEntity(user), nil
}

type notificationStore struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewNotificationStore(db *sqlx.DB) *notificationStore {
	return &notificationStore{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *notificationStore) SaveNotification(ctx context.Context, n entities.Notification) error {
	query, args := r.qb.Insert("notifications").
		Columns("notification_id", "recipient_id", "message", "related_order_id", "created_at").
		Values(uuid.NewString(), n.RecipientID, n.Message, nullString(n.OrderID), time.Now()).
		MustSql()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}
