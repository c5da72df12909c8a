package notificationsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/account"
	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/jobboard/notification"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// In-Memory Fakes
// ============================================================================

var errNotFound = errors.New("not found")

type fakeNotificationRepo struct {
	created []*notification.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) GetOwned(_ context.Context, id kernel.NotificationID, recipientID kernel.UserID) (*notification.Notification, error) {
	for _, n := range r.created {
		if n.ID == id && n.RecipientID == recipientID {
			return n, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID kernel.UserID, unreadOnly bool, pagination kernel.PaginationOptions) (*kernel.Paginated[notification.Notification], error) {
	var items []notification.Notification
	for _, n := range r.created {
		if n.RecipientID != recipientID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		items = append(items, *n)
	}
	return kernel.NewPaginated(items, pagination, len(items)), nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id kernel.NotificationID, recipientID kernel.UserID) error {
	for _, n := range r.created {
		if n.ID == id && n.RecipientID == recipientID {
			n.IsRead = true
			return nil
		}
	}
	return errNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, recipientID kernel.UserID) (int64, error) {
	var n int64
	for _, entry := range r.created {
		if entry.RecipientID == recipientID && !entry.IsRead {
			entry.IsRead = true
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id kernel.NotificationID, recipientID kernel.UserID) error {
	for i, n := range r.created {
		if n.ID == id && n.RecipientID == recipientID {
			r.created = append(r.created[:i], r.created[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, recipientID kernel.UserID) (int64, error) {
	var n int64
	for _, entry := range r.created {
		if entry.RecipientID == recipientID && !entry.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) DeleteReadOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	kept := r.created[:0]
	for _, n := range r.created {
		if n.IsRead && n.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	r.created = kept
	return removed, nil
}

type fakeEmailQueue struct {
	enqueued []*notification.EmailMessage
	err      error
}

func (q *fakeEmailQueue) Enqueue(_ context.Context, msg *notification.EmailMessage) error {
	if q.err != nil {
		return q.err
	}
	q.enqueued = append(q.enqueued, msg)
	return nil
}

func (q *fakeEmailQueue) Dequeue(_ context.Context, timeout time.Duration) (*notification.EmailMessage, error) {
	if len(q.enqueued) == 0 {
		return nil, nil
	}
	msg := q.enqueued[0]
	q.enqueued = q.enqueued[1:]
	return msg, nil
}

func (q *fakeEmailQueue) EnqueueDelayed(ctx context.Context, msg *notification.EmailMessage, delay time.Duration) error {
	return q.Enqueue(ctx, msg)
}

func (q *fakeEmailQueue) MoveDelayedToReady(_ context.Context) (int, error) { return 0, nil }

type fakeUserRepo struct {
	users map[kernel.UserID]*account.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *account.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*account.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*account.User, error) {
	return nil, errNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *account.User) error { return nil }
func (r *fakeUserRepo) UpdatePassword(_ context.Context, id kernel.UserID, hash string) error {
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email kernel.Email) (bool, error) {
	return false, nil
}

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func (r *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, errNotFound
	}
	return j, nil
}

func (r *fakeJobRepo) GetBySlug(_ context.Context, slug kernel.JobSlug) (*job.JobWithCompany, error) {
	return nil, errNotFound
}

func (r *fakeJobRepo) Update(_ context.Context, j *job.Job) error     { return nil }
func (r *fakeJobRepo) Delete(_ context.Context, id kernel.JobID) error { return nil }
func (r *fakeJobRepo) List(_ context.Context, filters job.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[job.JobWithCompany], error) {
	return kernel.NewPaginated[job.JobWithCompany](nil, pagination, 0), nil
}

func (r *fakeJobRepo) ListByEmployerID(_ context.Context, employerID kernel.EmployerID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return kernel.NewPaginated[job.Job](nil, pagination, 0), nil
}

func (r *fakeJobRepo) IncrementViews(_ context.Context, id kernel.JobID) error { return nil }
func (r *fakeJobRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) { return false, nil }
func (r *fakeJobRepo) CountByEmployerID(_ context.Context, employerID kernel.EmployerID, activeOnly bool) (int64, error) {
	return 0, nil
}

type fakeEmployerRepo struct {
	employers map[kernel.EmployerID]*employer.Employer
}

func (r *fakeEmployerRepo) Create(_ context.Context, e *employer.Employer) error {
	r.employers[e.ID] = e
	return nil
}

func (r *fakeEmployerRepo) GetByID(_ context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	e, ok := r.employers[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *fakeEmployerRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*employer.Employer, error) {
	return nil, errNotFound
}

func (r *fakeEmployerRepo) Update(_ context.Context, e *employer.Employer) error { return nil }
func (r *fakeEmployerRepo) List(_ context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[employer.Employer], error) {
	return kernel.NewPaginated[employer.Employer](nil, pagination, 0), nil
}

func (r *fakeEmployerRepo) Exists(_ context.Context, id kernel.EmployerID) (bool, error) {
	return false, nil
}

type fakeCandidateRepo struct {
	candidates map[kernel.CandidateID]*candidate.Candidate
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *candidate.Candidate) error {
	r.candidates[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*candidate.Candidate, error) {
	return nil, errNotFound
}

func (r *fakeCandidateRepo) Update(_ context.Context, c *candidate.Candidate) error { return nil }

func (r *fakeCandidateRepo) List(_ context.Context, opts kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	items := make([]candidate.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		items = append(items, *c)
	}
	return kernel.NewPaginated(items, opts, len(items)), nil
}
func (r *fakeCandidateRepo) Exists(_ context.Context, id kernel.CandidateID) (bool, error) {
	return false, nil
}

// ============================================================================
// Test Fixture
// ============================================================================

type fixture struct {
	service *NotificationService
	repo    *fakeNotificationRepo
	queue   *fakeEmailQueue

	candidateUser *account.User
	employerUser  *account.User
	candidate     *candidate.Candidate
	employer      *employer.Employer
	job           *job.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		repo:  &fakeNotificationRepo{},
		queue: &fakeEmailQueue{},
	}

	users := &fakeUserRepo{users: make(map[kernel.UserID]*account.User)}
	jobs := &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
	employers := &fakeEmployerRepo{employers: make(map[kernel.EmployerID]*employer.Employer)}
	candidates := &fakeCandidateRepo{candidates: make(map[kernel.CandidateID]*candidate.Candidate)}

	f.candidateUser = &account.User{
		ID:       kernel.NewUserID(uuid.NewString()),
		Email:    "ada@example.com",
		UserType: kernel.UserTypeCandidate,
	}
	require.NoError(t, users.Create(ctx, f.candidateUser))

	f.employerUser = &account.User{
		ID:       kernel.NewUserID(uuid.NewString()),
		Email:    "hr@initech.com",
		UserType: kernel.UserTypeEmployer,
	}
	require.NoError(t, users.Create(ctx, f.employerUser))

	f.candidate = &candidate.Candidate{
		ID:        kernel.NewCandidateID(uuid.NewString()),
		UserID:    f.candidateUser.ID,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	require.NoError(t, candidates.Create(ctx, f.candidate))

	f.employer = &employer.Employer{
		ID:          kernel.NewEmployerID(uuid.NewString()),
		UserID:      f.employerUser.ID,
		CompanyName: "Initech",
	}
	require.NoError(t, employers.Create(ctx, f.employer))

	f.job = &job.Job{
		ID:         kernel.NewJobID(uuid.NewString()),
		EmployerID: f.employer.ID,
		Title:      "Backend Engineer",
		IsActive:   true,
	}
	require.NoError(t, jobs.Create(ctx, f.job))

	f.service = NewNotificationService(f.repo, f.queue, users, jobs, employers, candidates)
	return f
}

func (f *fixture) application() *application.Application {
	return &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		JobID:       f.job.ID,
		CandidateID: f.candidate.ID,
		Status:      application.StatusPending,
	}
}

// ============================================================================
// Notify
// ============================================================================

func TestNotifyNewApplicationReachesEmployer(t *testing.T) {
	f := newFixture(t)

	err := f.service.Notify(context.Background(), f.application(), application.EventNew)
	require.NoError(t, err)

	require.Len(t, f.repo.created, 1)
	entry := f.repo.created[0]
	assert.Equal(t, f.employerUser.ID, entry.RecipientID)
	assert.Equal(t, notification.TypeApplicationReceived, entry.Type)
	assert.Equal(t, "New application received", entry.Title)
	assert.Contains(t, entry.Message, "Ada Lovelace")
	assert.Contains(t, entry.Message, "Backend Engineer")

	require.Len(t, f.queue.enqueued, 1)
	assert.Equal(t, "hr@initech.com", f.queue.enqueued[0].To)
}

func TestNotifyStatusUpdateReachesCandidate(t *testing.T) {
	f := newFixture(t)

	app := f.application()
	app.Status = application.StatusShortlisted

	err := f.service.Notify(context.Background(), app, application.EventStatusUpdate)
	require.NoError(t, err)

	require.Len(t, f.repo.created, 1)
	entry := f.repo.created[0]
	assert.Equal(t, f.candidateUser.ID, entry.RecipientID)
	assert.Equal(t, notification.TypeApplicationStatusChanged, entry.Type)
	assert.Contains(t, entry.Message, "shortlisted")

	require.Len(t, f.queue.enqueued, 1)
	assert.Equal(t, "ada@example.com", f.queue.enqueued[0].To)
}

func TestNotifyUnknownEventRejected(t *testing.T) {
	f := newFixture(t)

	err := f.service.Notify(context.Background(), f.application(), application.Event("deleted"))
	assert.Error(t, err)
	assert.Empty(t, f.repo.created)
}

func TestNotifyQueueFailureStillRecordsNotification(t *testing.T) {
	f := newFixture(t)
	f.queue.err = errors.New("redis down")

	err := f.service.Notify(context.Background(), f.application(), application.EventNew)
	require.NoError(t, err)
	assert.Len(t, f.repo.created, 1)
}

// ============================================================================
// Inbox
// ============================================================================

func TestInbox(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Notify(ctx, f.application(), application.EventNew))
	require.NoError(t, f.service.Notify(ctx, f.application(), application.EventNew))

	unread, err := f.service.CountUnread(ctx, f.employerUser.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	listed, err := f.service.ListMine(ctx, f.employerUser.ID, true, kernel.PaginationOptions{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Len(t, listed.Items, 2)

	require.NoError(t, f.service.MarkRead(ctx, f.employerUser.ID, listed.Items[0].ID))

	unread, err = f.service.CountUnread(ctx, f.employerUser.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	updated, err := f.service.MarkAllRead(ctx, f.employerUser.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)
}

func TestMarkReadForeignRecipient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Notify(ctx, f.application(), application.EventNew))
	id := f.repo.created[0].ID

	// The candidate cannot touch the employer's notification.
	err := f.service.MarkRead(ctx, f.candidateUser.ID, id)
	assert.Error(t, err)
}
