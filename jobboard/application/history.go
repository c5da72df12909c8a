package application

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/google/uuid"
)

// StatusHistory is one entry in an application's audit trail. An entry is
// appended on every status update call, including ones that keep the
// status unchanged.
type StatusHistory struct {
	ID            string               `db:"id" json:"id"`
	ApplicationID kernel.ApplicationID `db:"application_id" json:"application_id"`
	OldStatus     Status               `db:"old_status" json:"old_status"`
	NewStatus     Status               `db:"new_status" json:"new_status"`
	ChangedBy     *kernel.UserID       `db:"changed_by" json:"changed_by,omitempty"`
	Notes         string               `db:"notes" json:"notes,omitempty"`
	ChangedAt     time.Time            `db:"changed_at" json:"changed_at"`
}

// NewStatusHistory builds an audit entry for a status transition.
func NewStatusHistory(applicationID kernel.ApplicationID, oldStatus, newStatus Status, changedBy kernel.UserID, notes string) *StatusHistory {
	return &StatusHistory{
		ID:            uuid.NewString(),
		ApplicationID: applicationID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		ChangedBy:     &changedBy,
		Notes:         notes,
		ChangedAt:     time.Now(),
	}
}
