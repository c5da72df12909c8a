package notificationsrv

import (
	"context"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/account"
	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
	"github.com/google/uuid"
)

// NotificationService records in-app notifications and queues their
// email counterparts. It implements application.Notifier.
type NotificationService struct {
	notificationRepo notification.Repository
	emailQueue       notification.EmailQueue
	userRepo         account.UserRepository
	jobRepo          job.Repository
	employerRepo     employer.Repository
	candidateRepo    candidate.Repository
}

// NewNotificationService creates a new instance of the notification service
func NewNotificationService(
	notificationRepo notification.Repository,
	emailQueue notification.EmailQueue,
	userRepo account.UserRepository,
	jobRepo job.Repository,
	employerRepo employer.Repository,
	candidateRepo candidate.Repository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		emailQueue:       emailQueue,
		userRepo:         userRepo,
		jobRepo:          jobRepo,
		employerRepo:     employerRepo,
		candidateRepo:    candidateRepo,
	}
}

// ============================================================================
// application.Notifier
// ============================================================================

// Notify records a notification for the interested party of an application
// event and queues the matching email. Called after the triggering write
// has committed; failures here never undo that write.
func (s *NotificationService) Notify(ctx context.Context, app *application.Application, event application.Event) error {
	posting, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return errx.Wrap(err, "failed to load job for notification", errx.TypeInternal)
	}

	var recipient *account.User
	var notifType notification.Type
	var title, message, link string

	switch event {
	case application.EventNew:
		// New applications notify the employer behind the posting
		owner, err := s.employerRepo.GetByID(ctx, posting.EmployerID)
		if err != nil {
			return errx.Wrap(err, "failed to load employer for notification", errx.TypeInternal)
		}
		recipient, err = s.userRepo.GetByID(ctx, owner.UserID)
		if err != nil {
			return errx.Wrap(err, "failed to load recipient user", errx.TypeInternal)
		}

		applicantName := "A candidate"
		if applicant, err := s.candidateRepo.GetByID(ctx, app.CandidateID); err == nil {
			applicantName = applicant.FullName()
		}

		notifType = notification.TypeApplicationReceived
		title = "New application received"
		message = fmt.Sprintf("%s applied to %s", applicantName, posting.Title)
		link = fmt.Sprintf("/applications/%s", app.ID)

	case application.EventStatusUpdate:
		// Status changes notify the candidate who applied
		applicant, err := s.candidateRepo.GetByID(ctx, app.CandidateID)
		if err != nil {
			return errx.Wrap(err, "failed to load candidate for notification", errx.TypeInternal)
		}
		recipient, err = s.userRepo.GetByID(ctx, applicant.UserID)
		if err != nil {
			return errx.Wrap(err, "failed to load recipient user", errx.TypeInternal)
		}

		notifType = notification.TypeApplicationStatusChanged
		title = "Application status updated"
		message = fmt.Sprintf("Your application for %s is now %s", posting.Title, app.Status)
		link = fmt.Sprintf("/applications/%s", app.ID)

	default:
		return notification.ErrInvalidRequest().WithDetail("event", string(event))
	}

	entry := &notification.Notification{
		ID:          kernel.NewNotificationID(uuid.NewString()),
		RecipientID: recipient.ID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Link:        link,
		CreatedAt:   time.Now(),
	}

	if err := s.notificationRepo.Create(ctx, entry); err != nil {
		return errx.Wrap(err, "failed to record notification", errx.TypeInternal)
	}

	// Email is best-effort on top of the in-app record
	email := &notification.EmailMessage{
		To:      string(recipient.Email),
		Subject: title,
		Body:    message,
	}
	if err := s.emailQueue.Enqueue(ctx, email); err != nil {
		logx.Warnf("failed to queue email for %s: %v", recipient.Email, err)
	}

	return nil
}

// ============================================================================
// Inbox Operations
// ============================================================================

// ListMine retrieves the caller's notifications
func (s *NotificationService) ListMine(ctx context.Context, userID kernel.UserID, unreadOnly bool, pagination kernel.PaginationOptions) (*kernel.Paginated[notification.NotificationResponse], error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, userID, unreadOnly, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list notifications", errx.TypeInternal)
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications.Items))
	for i := range notifications.Items {
		responses = append(responses, notification.ToNotificationResponse(&notifications.Items[i]))
	}

	return &kernel.Paginated[notification.NotificationResponse]{
		Items: responses,
		Page:  notifications.Page,
		Empty: notifications.Empty,
	}, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, userID kernel.UserID, id kernel.NotificationID) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

// MarkAllRead marks all of the caller's notifications as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID kernel.UserID) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one of the caller's notifications
func (s *NotificationService) Delete(ctx context.Context, userID kernel.UserID, id kernel.NotificationID) error {
	return s.notificationRepo.Delete(ctx, id, userID)
}

// CountUnread counts the caller's unread notifications
func (s *NotificationService) CountUnread(ctx context.Context, userID kernel.UserID) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// CleanupOld purges read notifications older than the retention window.
// Wired to the nightly maintenance schedule.
func (s *NotificationService) CleanupOld(ctx context.Context, retention time.Duration) {
	cutoff := time.Now().Add(-retention)

	removed, err := s.notificationRepo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		logx.Errorf("notification cleanup failed: %v", err)
		return
	}

	if removed > 0 {
		logx.Infof("purged %d read notifications older than %s", removed, cutoff.Format(time.RFC3339))
	}
}
