package notification

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// Type classifies what a notification is about.
type Type string

const (
	TypeApplicationReceived      Type = "application_received"
	TypeApplicationStatusChanged Type = "application_status_changed"
	TypeJobPosted                Type = "job_posted"
)

// IsValid checks whether the notification type is a known value.
func (t Type) IsValid() bool {
	switch t {
	case TypeApplicationReceived, TypeApplicationStatusChanged, TypeJobPosted:
		return true
	}
	return false
}

type Notification struct {
	ID          kernel.NotificationID `db:"id" json:"id"`
	RecipientID kernel.UserID         `db:"recipient_id" json:"recipient_id"`
	Type        Type                  `db:"type" json:"type"`
	Title       string                `db:"title" json:"title"`
	Message     string                `db:"message" json:"message"`
	Link        string                `db:"link" json:"link,omitempty"`
	IsRead      bool                  `db:"is_read" json:"is_read"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

// MarkRead flags the notification as seen.
func (n *Notification) MarkRead() {
	n.IsRead = true
}
