package application

import (
	"testing"
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication() *Application {
	return &Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		JobID:       kernel.NewJobID(uuid.NewString()),
		CandidateID: kernel.NewCandidateID(uuid.NewString()),
		Status:      StatusPending,
		AppliedAt:   time.Now().Add(-time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), "status %s should be valid", s)
	}

	assert.False(t, Status("").IsValid())
	assert.False(t, Status("approved").IsValid())
	assert.False(t, Status("PENDING").IsValid())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusHired.IsTerminal())
	assert.True(t, StatusWithdrawn.IsTerminal())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusUnderReview.IsTerminal())
	assert.False(t, StatusShortlisted.IsTerminal())
	assert.False(t, StatusInterviewScheduled.IsTerminal())
}

func TestChangeStatusReturnsOldStatus(t *testing.T) {
	app := newTestApplication()

	oldStatus, err := app.ChangeStatus(StatusUnderReview, "looks promising")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, oldStatus)
	assert.Equal(t, StatusUnderReview, app.Status)
	assert.Equal(t, "looks promising", app.EmployerNotes)
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	app := newTestApplication()

	_, err := app.ChangeStatus(Status("archived"), "")
	require.Error(t, err)
	assert.Equal(t, StatusPending, app.Status)
}

func TestChangeStatusStampsReviewedAtOnce(t *testing.T) {
	app := newTestApplication()
	require.Nil(t, app.ReviewedAt)

	_, err := app.ChangeStatus(StatusUnderReview, "")
	require.NoError(t, err)
	require.NotNil(t, app.ReviewedAt)

	firstReview := *app.ReviewedAt

	_, err = app.ChangeStatus(StatusShortlisted, "")
	require.NoError(t, err)
	assert.Equal(t, firstReview, *app.ReviewedAt, "reviewed_at must not move on later changes")
}

func TestChangeStatusSameStatusKeepsReviewedAtNil(t *testing.T) {
	app := newTestApplication()

	// Re-asserting pending is allowed but does not count as a review.
	oldStatus, err := app.ChangeStatus(StatusPending, "")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, oldStatus)
	assert.Nil(t, app.ReviewedAt)
}

func TestChangeStatusKeepsNotesWhenEmpty(t *testing.T) {
	app := newTestApplication()
	app.EmployerNotes = "screened by phone"

	_, err := app.ChangeStatus(StatusShortlisted, "")
	require.NoError(t, err)
	assert.Equal(t, "screened by phone", app.EmployerNotes)
}

func TestWithdraw(t *testing.T) {
	app := newTestApplication()
	_, err := app.ChangeStatus(StatusUnderReview, "")
	require.NoError(t, err)

	oldStatus, err := app.Withdraw()
	require.NoError(t, err)
	assert.Equal(t, StatusUnderReview, oldStatus)
	assert.Equal(t, StatusWithdrawn, app.Status)
}

func TestWithdrawFromPendingStampsReviewedAt(t *testing.T) {
	app := newTestApplication()
	require.Nil(t, app.ReviewedAt)

	oldStatus, err := app.Withdraw()
	require.NoError(t, err)
	assert.Equal(t, StatusPending, oldStatus)
	assert.Equal(t, StatusWithdrawn, app.Status)
	require.NotNil(t, app.ReviewedAt, "withdrawing is the first departure from pending")
}

func TestWithdrawKeepsExistingReviewedAt(t *testing.T) {
	app := newTestApplication()
	_, err := app.ChangeStatus(StatusUnderReview, "")
	require.NoError(t, err)
	firstReview := *app.ReviewedAt

	_, err = app.Withdraw()
	require.NoError(t, err)
	assert.Equal(t, firstReview, *app.ReviewedAt)
}

func TestChangeStatusStampsLateFirstReview(t *testing.T) {
	// An application that somehow left pending without a stamp still gets
	// reviewed_at on its next status change.
	app := newTestApplication()
	app.Status = StatusUnderReview
	require.Nil(t, app.ReviewedAt)

	_, err := app.ChangeStatus(StatusShortlisted, "")
	require.NoError(t, err)
	require.NotNil(t, app.ReviewedAt)
}

func TestWithdrawBlockedFromTerminalStates(t *testing.T) {
	for _, terminal := range []Status{StatusRejected, StatusHired, StatusWithdrawn} {
		app := newTestApplication()
		app.Status = terminal

		assert.False(t, app.CanWithdraw(), "withdraw should be blocked from %s", terminal)
		_, err := app.Withdraw()
		assert.Error(t, err)
		assert.Equal(t, terminal, app.Status)
	}
}

func TestNewStatusHistory(t *testing.T) {
	appID := kernel.NewApplicationID(uuid.NewString())
	actor := kernel.NewUserID(uuid.NewString())

	entry := NewStatusHistory(appID, StatusPending, StatusUnderReview, actor, "first pass")

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, appID, entry.ApplicationID)
	assert.Equal(t, StatusPending, entry.OldStatus)
	assert.Equal(t, StatusUnderReview, entry.NewStatus)
	require.NotNil(t, entry.ChangedBy)
	assert.Equal(t, actor, *entry.ChangedBy)
	assert.Equal(t, "first pass", entry.Notes)
	assert.False(t, entry.ChangedAt.IsZero())
}
