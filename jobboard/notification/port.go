package notification

import (
	"context"
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, notification *Notification) error

	// GetOwned retrieves a notification only if it belongs to the given
	// recipient.
	GetOwned(ctx context.Context, id kernel.NotificationID, recipientID kernel.UserID) (*Notification, error)

	ListByRecipient(ctx context.Context, recipientID kernel.UserID, unreadOnly bool, pagination kernel.PaginationOptions) (*kernel.Paginated[Notification], error)
	MarkRead(ctx context.Context, id kernel.NotificationID, recipientID kernel.UserID) error
	MarkAllRead(ctx context.Context, recipientID kernel.UserID) (int64, error)
	Delete(ctx context.Context, id kernel.NotificationID, recipientID kernel.UserID) error
	CountUnread(ctx context.Context, recipientID kernel.UserID) (int64, error)

	// DeleteReadOlderThan purges read notifications created before the
	// cutoff and returns how many were removed.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// EmailQueue buffers outbound mail so request handling never waits on SMTP.
type EmailQueue interface {
	Enqueue(ctx context.Context, msg *EmailMessage) error
	Dequeue(ctx context.Context, timeout time.Duration) (*EmailMessage, error)
	EnqueueDelayed(ctx context.Context, msg *EmailMessage, delay time.Duration) error
	MoveDelayedToReady(ctx context.Context) (int, error)
}

// EmailSender delivers a single message.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}
