package notificationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/notification"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresNotificationRepository implements notification.Repository using PostgreSQL
type PostgresNotificationRepository struct {
	db *sqlx.DB
}

// NewPostgresNotificationRepository creates a new PostgreSQL notification repository
func NewPostgresNotificationRepository(db *sqlx.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type notificationModel struct {
	ID          string    `db:"id"`
	RecipientID string    `db:"recipient_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Message     string    `db:"message"`
	Link        string    `db:"link"`
	IsRead      bool      `db:"is_read"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m *notificationModel) toEntity() *notification.Notification {
	return &notification.Notification{
		ID:          kernel.NotificationID(m.ID),
		RecipientID: kernel.UserID(m.RecipientID),
		Type:        notification.Type(m.Type),
		Title:       m.Title,
		Message:     m.Message,
		Link:        m.Link,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
}

func fromEntity(n *notification.Notification) *notificationModel {
	return &notificationModel{
		ID:          string(n.ID),
		RecipientID: string(n.RecipientID),
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		Link:        n.Link,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new notification
func (r *PostgresNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := fromEntity(n)

	query := `
		INSERT INTO notifications (
			id, recipient_id, type, title, message, link, is_read, created_at
		) VALUES (
			:id, :recipient_id, :type, :title, :message, :link, :is_read, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// GetOwned retrieves a notification scoped to its recipient
func (r *PostgresNotificationRepository) GetOwned(ctx context.Context, id kernel.NotificationID, recipientID kernel.UserID) (*notification.Notification, error) {
	query := `
		SELECT id, recipient_id, type, title, message, link, is_read, created_at
		FROM notifications
		WHERE id = $1 AND recipient_id = $2
	`

	var model notificationModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(recipientID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notification.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return model.toEntity(), nil
}

// ListByRecipient retrieves a recipient's notifications, newest first
func (r *PostgresNotificationRepository) ListByRecipient(ctx context.Context, recipientID kernel.UserID, unreadOnly bool, pagination kernel.PaginationOptions) (*kernel.Paginated[notification.Notification], error) {
	filter := ""
	if unreadOnly {
		filter = " AND is_read = FALSE"
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1` + filter
	if err := r.db.GetContext(ctx, &total, countQuery, string(recipientID)); err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT id, recipient_id, type, title, message, link, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1` + filter + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []notificationModel
	err := r.db.SelectContext(ctx, &models, query, string(recipientID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities := make([]notification.Notification, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[notification.Notification]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}

// MarkRead marks one notification as read for its recipient
func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id kernel.NotificationID, recipientID kernel.UserID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`

	result, err := r.db.ExecContext(ctx, query, string(id), string(recipientID))
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return notification.ErrNotFound()
	}

	return nil
}

// MarkAllRead marks every unread notification of a recipient as read
func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, recipientID kernel.UserID) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE`

	result, err := r.db.ExecContext(ctx, query, string(recipientID))
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// Delete removes a notification for its recipient
func (r *PostgresNotificationRepository) Delete(ctx context.Context, id kernel.NotificationID, recipientID kernel.UserID) error {
	query := `DELETE FROM notifications WHERE id = $1 AND recipient_id = $2`

	result, err := r.db.ExecContext(ctx, query, string(id), string(recipientID))
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return notification.ErrNotFound()
	}

	return nil
}

// CountUnread counts a recipient's unread notifications
func (r *PostgresNotificationRepository) CountUnread(ctx context.Context, recipientID kernel.UserID) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(recipientID))
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// DeleteReadOlderThan purges stale read notifications
func (r *PostgresNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM notifications WHERE is_read = TRUE AND created_at < $1`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge notifications: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}
