package notification

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// ============================================================================
// Response DTOs
// ============================================================================

type NotificationResponse struct {
	ID        kernel.NotificationID `json:"id"`
	Type      Type                  `json:"type"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Link      string                `json:"link,omitempty"`
	IsRead    bool                  `json:"is_read"`
	CreatedAt time.Time             `json:"created_at"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

func ToNotificationResponse(n *Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ============================================================================
// Email Queue Payload
// ============================================================================

// EmailMessage is the payload carried through the email queue.
type EmailMessage struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Attempts int    `json:"attempts"`
}
