package applicationsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// In-Memory Fakes
// ============================================================================

var errNotFound = errors.New("not found")

type fakeApplicationRepo struct {
	applications map[kernel.ApplicationID]*application.Application
	history      []application.StatusHistory
	userEmails   map[kernel.UserID]string
	createErr    error
	updateErr    error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[kernel.ApplicationID]*application.Application),
		userEmails:   make(map[kernel.UserID]string),
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *application.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.applications {
		if existing.JobID == app.JobID && existing.CandidateID == app.CandidateID {
			return application.ErrAlreadyApplied()
		}
	}
	clone := *app
	r.applications[app.ID] = &clone
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, ok := r.applications[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *app
	return &clone, nil
}

func (r *fakeApplicationRepo) GetOwnedByCandidate(ctx context.Context, id kernel.ApplicationID, candidateID kernel.CandidateID) (*application.Application, error) {
	app, err := r.GetByID(ctx, id)
	if err != nil || app.CandidateID != candidateID {
		return nil, errNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) GetOwnedByEmployer(ctx context.Context, id kernel.ApplicationID, employerID kernel.EmployerID) (*application.Application, error) {
	// The SQL implementation scopes through the jobs table; the fake keys
	// ownership off the job ID prefix recorded by the test instead.
	app, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, errNotFound
	}
	if jobOwners[app.JobID] != employerID {
		return nil, errNotFound
	}
	return app, nil
}

func (r *fakeApplicationRepo) UpdateWithHistory(_ context.Context, app *application.Application, entry *application.StatusHistory) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.applications[app.ID]; !ok {
		return errNotFound
	}
	clone := *app
	r.applications[app.ID] = &clone
	r.history = append(r.history, *entry)
	return nil
}

func (r *fakeApplicationRepo) ListHistory(_ context.Context, applicationID kernel.ApplicationID) ([]application.StatusHistoryEntry, error) {
	// Newest first with emails resolved, matching the repository query
	var out []application.StatusHistoryEntry
	for i := len(r.history) - 1; i >= 0; i-- {
		h := r.history[i]
		if h.ApplicationID != applicationID {
			continue
		}
		entry := application.StatusHistoryEntry{
			ID:            h.ID,
			ApplicationID: h.ApplicationID,
			OldStatus:     h.OldStatus,
			NewStatus:     h.NewStatus,
			ChangedBy:     h.ChangedBy,
			Notes:         h.Notes,
			ChangedAt:     h.ChangedAt,
		}
		if h.ChangedBy != nil {
			entry.ChangedByEmail = r.userEmails[*h.ChangedBy]
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByCandidateID(_ context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationListItem], error) {
	var items []application.ApplicationListItem
	for _, app := range r.applications {
		if app.CandidateID == candidateID {
			items = append(items, application.ApplicationListItem{ID: app.ID, JobID: app.JobID, Status: app.Status})
		}
	}
	return kernel.NewPaginated(items, pagination, len(items)), nil
}

func (r *fakeApplicationRepo) ListByEmployerID(_ context.Context, employerID kernel.EmployerID, filters application.ReceivedFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationListItem], error) {
	var items []application.ApplicationListItem
	for _, app := range r.applications {
		if jobOwners[app.JobID] != employerID {
			continue
		}
		if filters.Status != "" && app.Status != filters.Status {
			continue
		}
		if filters.JobID != "" && app.JobID != filters.JobID {
			continue
		}
		items = append(items, application.ApplicationListItem{ID: app.ID, JobID: app.JobID, Status: app.Status})
	}
	return kernel.NewPaginated(items, pagination, len(items)), nil
}

func (r *fakeApplicationRepo) ListByJobID(_ context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationListItem], error) {
	var items []application.ApplicationListItem
	for _, app := range r.applications {
		if app.JobID == jobID {
			items = append(items, application.ApplicationListItem{ID: app.ID, JobID: app.JobID, Status: app.Status})
		}
	}
	return kernel.NewPaginated(items, pagination, len(items)), nil
}

func (r *fakeApplicationRepo) ExistsByJobAndCandidate(_ context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error) {
	for _, app := range r.applications {
		if app.JobID == jobID && app.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) CountByCandidateID(_ context.Context, candidateID kernel.CandidateID) (int64, error) {
	var n int64
	for _, app := range r.applications {
		if app.CandidateID == candidateID {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) StatusCountsByCandidate(_ context.Context, candidateID kernel.CandidateID) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func (r *fakeApplicationRepo) CountByEmployerID(_ context.Context, employerID kernel.EmployerID) (int64, error) {
	return 0, nil
}

func (r *fakeApplicationRepo) StatusCountsByEmployer(_ context.Context, employerID kernel.EmployerID) (map[string]int64, error) {
	return map[string]int64{}, nil
}

// jobOwners lets the fakes resolve job ownership without a join.
var jobOwners = map[kernel.JobID]kernel.EmployerID{}

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
}

func (r *fakeJobRepo) Create(_ context.Context, j *job.Job) error {
	r.jobs[j.ID] = j
	jobOwners[j.ID] = j.EmployerID
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

func (r *fakeJobRepo) Update(_ context.Context, j *job.Job) error { return nil }
func (r *fakeJobRepo) Delete(_ context.Context, id kernel.JobID) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(_ context.Context, filters job.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[job.JobWithCompany], error) {
	return kernel.NewPaginated[job.JobWithCompany](nil, pagination, 0), nil
}

func (r *fakeJobRepo) ListByEmployerID(_ context.Context, employerID kernel.EmployerID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return kernel.NewPaginated[job.Job](nil, pagination, 0), nil
}

func (r *fakeJobRepo) IncrementViews(_ context.Context, id kernel.JobID) error { return nil }
func (r *fakeJobRepo) Exists(_ context.Context, id kernel.JobID) (bool, error) {
	_, ok := r.jobs[id]
	return ok, nil
}

func (r *fakeJobRepo) CountByEmployerID(_ context.Context, employerID kernel.EmployerID, activeOnly bool) (int64, error) {
	return 0, nil
}

type fakeCandidateRepo struct {
	byUserID map[kernel.UserID]*candidate.Candidate
	byID     map[kernel.CandidateID]*candidate.Candidate
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{
		byUserID: make(map[kernel.UserID]*candidate.Candidate),
		byID:     make(map[kernel.CandidateID]*candidate.Candidate),
	}
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *candidate.Candidate) error {
	r.byUserID[c.UserID] = c
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*candidate.Candidate, error) {
	c, ok := r.byUserID[userID]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) Update(_ context.Context, c *candidate.Candidate) error { return nil }

func (r *fakeCandidateRepo) List(_ context.Context, opts kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	items := make([]candidate.Candidate, 0, len(r.byID))
	for _, c := range r.byID {
		items = append(items, *c)
	}
	return kernel.NewPaginated(items, opts, len(items)), nil
}
func (r *fakeCandidateRepo) Exists(_ context.Context, id kernel.CandidateID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

type fakeEmployerRepo struct {
	byUserID map[kernel.UserID]*employer.Employer
	byID     map[kernel.EmployerID]*employer.Employer
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{
		byUserID: make(map[kernel.UserID]*employer.Employer),
		byID:     make(map[kernel.EmployerID]*employer.Employer),
	}
}

func (r *fakeEmployerRepo) Create(_ context.Context, e *employer.Employer) error {
	r.byUserID[e.UserID] = e
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEmployerRepo) GetByID(_ context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *fakeEmployerRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*employer.Employer, error) {
	e, ok := r.byUserID[userID]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *fakeEmployerRepo) Update(_ context.Context, e *employer.Employer) error { return nil }
func (r *fakeEmployerRepo) List(_ context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[employer.Employer], error) {
	return kernel.NewPaginated[employer.Employer](nil, pagination, 0), nil
}

func (r *fakeEmployerRepo) Exists(_ context.Context, id kernel.EmployerID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

type fakeResumeRepo struct {
	resumes map[kernel.ResumeID]*candidate.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[kernel.ResumeID]*candidate.Resume)}
}

func (r *fakeResumeRepo) Create(_ context.Context, resume *candidate.Resume) error {
	r.resumes[resume.ID] = resume
	return nil
}

func (r *fakeResumeRepo) GetByID(_ context.Context, id kernel.ResumeID) (*candidate.Resume, error) {
	resume, ok := r.resumes[id]
	if !ok {
		return nil, errNotFound
	}
	return resume, nil
}

func (r *fakeResumeRepo) ListByCandidateID(_ context.Context, candidateID kernel.CandidateID) ([]candidate.Resume, error) {
	return nil, nil
}

func (r *fakeResumeRepo) Delete(_ context.Context, id kernel.ResumeID) error { return nil }
func (r *fakeResumeRepo) ClearPrimary(_ context.Context, candidateID kernel.CandidateID) error {
	return nil
}

func (r *fakeResumeRepo) CountByCandidateID(_ context.Context, candidateID kernel.CandidateID) (int64, error) {
	return 0, nil
}

type recordingNotifier struct {
	events []application.Event
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, _ *application.Application, event application.Event) error {
	n.events = append(n.events, event)
	return n.err
}

// ============================================================================
// Test Fixture
// ============================================================================

type fixture struct {
	service   *ApplicationService
	appRepo   *fakeApplicationRepo
	jobRepo   *fakeJobRepo
	candidates *fakeCandidateRepo
	employers *fakeEmployerRepo
	resumes   *fakeResumeRepo
	notifier  *recordingNotifier

	candidateUser kernel.UserID
	candidate     *candidate.Candidate
	employerUser  kernel.UserID
	employer      *employer.Employer
	job           *job.Job
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	jobOwners = map[kernel.JobID]kernel.EmployerID{}

	f := &fixture{
		appRepo:    newFakeApplicationRepo(),
		jobRepo:    newFakeJobRepo(),
		candidates: newFakeCandidateRepo(),
		employers:  newFakeEmployerRepo(),
		resumes:    newFakeResumeRepo(),
		notifier:   &recordingNotifier{},
	}

	ctx := context.Background()

	f.candidateUser = kernel.NewUserID(uuid.NewString())
	f.candidate = &candidate.Candidate{
		ID:        kernel.NewCandidateID(uuid.NewString()),
		UserID:    f.candidateUser,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	require.NoError(t, f.candidates.Create(ctx, f.candidate))

	f.employerUser = kernel.NewUserID(uuid.NewString())
	f.employer = &employer.Employer{
		ID:          kernel.NewEmployerID(uuid.NewString()),
		UserID:      f.employerUser,
		CompanyName: "Initech",
	}
	require.NoError(t, f.employers.Create(ctx, f.employer))

	f.appRepo.userEmails[f.candidateUser] = "ada@example.com"
	f.appRepo.userEmails[f.employerUser] = "hiring@initech.com"

	f.job = &job.Job{
		ID:         kernel.NewJobID(uuid.NewString()),
		EmployerID: f.employer.ID,
		Title:      "Backend Engineer",
		IsActive:   true,
	}
	require.NoError(t, f.jobRepo.Create(ctx, f.job))

	f.service = NewApplicationService(f.appRepo, f.jobRepo, f.candidates, f.employers, f.resumes, f.notifier)
	return f
}

func (f *fixture) apply(t *testing.T) *application.Application {
	t.Helper()
	app, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID: f.job.ID.String(),
	})
	require.NoError(t, err)
	return app
}

func assertErrCode(t *testing.T, err error, code errx.Code) {
	t.Helper()
	require.Error(t, err)
	var ex *errx.Error
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, code, ex.Code)
}

// ============================================================================
// Apply
// ============================================================================

func TestApply(t *testing.T) {
	f := newFixture(t)

	app := f.apply(t)

	assert.Equal(t, application.StatusPending, app.Status)
	assert.Equal(t, f.candidate.ID, app.CandidateID)
	assert.Equal(t, f.job.ID, app.JobID)
	assert.Equal(t, []application.Event{application.EventNew}, f.notifier.events)
}

func TestApplyRequiresCandidateProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Apply(context.Background(), f.employerUser, application.CreateApplicationRequest{
		JobID: f.job.ID.String(),
	})
	assertErrCode(t, err, candidate.CodeNotACandidate)
}

func TestApplyDuplicateRejected(t *testing.T) {
	f := newFixture(t)
	f.apply(t)

	_, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID: f.job.ID.String(),
	})
	assertErrCode(t, err, application.CodeAlreadyApplied)
}

func TestApplyDuplicateRaceSurfacesAlreadyApplied(t *testing.T) {
	// A concurrent submission can slip past the existence check and hit
	// the unique constraint at insert time instead.
	f := newFixture(t)
	f.appRepo.createErr = application.ErrAlreadyApplied()

	_, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID: f.job.ID.String(),
	})
	assertErrCode(t, err, application.CodeAlreadyApplied)
}

func TestApplyInactiveJobRejected(t *testing.T) {
	f := newFixture(t)
	f.job.IsActive = false

	_, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID: f.job.ID.String(),
	})
	assertErrCode(t, err, application.CodeJobNotActive)
}

func TestApplyExpiredJobRejected(t *testing.T) {
	f := newFixture(t)
	past := time.Now().Add(-24 * time.Hour)
	f.job.ApplicationDeadline = &past

	_, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID: f.job.ID.String(),
	})
	assertErrCode(t, err, application.CodeJobExpired)
}

func TestApplyForeignResumeRejected(t *testing.T) {
	f := newFixture(t)

	foreign := &candidate.Resume{
		ID:          kernel.NewResumeID(uuid.NewString()),
		CandidateID: kernel.NewCandidateID(uuid.NewString()),
	}
	require.NoError(t, f.resumes.Create(context.Background(), foreign))

	resumeID := foreign.ID.String()
	_, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID:    f.job.ID.String(),
		ResumeID: &resumeID,
	})
	assertErrCode(t, err, application.CodeInvalidResume)
}

func TestApplyOwnResumeAccepted(t *testing.T) {
	f := newFixture(t)

	own := &candidate.Resume{
		ID:          kernel.NewResumeID(uuid.NewString()),
		CandidateID: f.candidate.ID,
	}
	require.NoError(t, f.resumes.Create(context.Background(), own))

	resumeID := own.ID.String()
	app, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID:    f.job.ID.String(),
		ResumeID: &resumeID,
	})
	require.NoError(t, err)
	require.NotNil(t, app.ResumeID)
	assert.Equal(t, own.ID, *app.ResumeID)
}

func TestApplyNotifierFailureDoesNotFailApply(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("smtp down")

	app, err := f.service.Apply(context.Background(), f.candidateUser, application.CreateApplicationRequest{
		JobID: f.job.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, app.Status)
}

// ============================================================================
// UpdateStatus
// ============================================================================

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	updated, err := f.service.UpdateStatus(context.Background(), f.employerUser, app.ID, application.UpdateStatusRequest{
		Status:        string(application.StatusUnderReview),
		EmployerNotes: "strong profile",
	})
	require.NoError(t, err)

	assert.Equal(t, application.StatusUnderReview, updated.Status)
	assert.NotNil(t, updated.ReviewedAt)

	require.Len(t, f.appRepo.history, 1)
	entry := f.appRepo.history[0]
	assert.Equal(t, application.StatusPending, entry.OldStatus)
	assert.Equal(t, application.StatusUnderReview, entry.NewStatus)
	require.NotNil(t, entry.ChangedBy)
	assert.Equal(t, f.employerUser, *entry.ChangedBy)

	assert.Contains(t, f.notifier.events, application.EventStatusUpdate)
}

func TestUpdateStatusInvalidStatusRejected(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	_, err := f.service.UpdateStatus(context.Background(), f.employerUser, app.ID, application.UpdateStatusRequest{
		Status: "approved",
	})
	assertErrCode(t, err, application.CodeInvalidStatus)
	assert.Empty(t, f.appRepo.history)
}

func TestUpdateStatusSameStatusStillRecorded(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	updated, err := f.service.UpdateStatus(context.Background(), f.employerUser, app.ID, application.UpdateStatusRequest{
		Status: string(application.StatusPending),
	})
	require.NoError(t, err)

	assert.Equal(t, application.StatusPending, updated.Status)
	assert.Nil(t, updated.ReviewedAt)

	require.Len(t, f.appRepo.history, 1)
	assert.Equal(t, application.StatusPending, f.appRepo.history[0].OldStatus)
	assert.Equal(t, application.StatusPending, f.appRepo.history[0].NewStatus)
}

func TestUpdateStatusForeignEmployerSeesNotFound(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	otherUser := kernel.NewUserID(uuid.NewString())
	other := &employer.Employer{
		ID:          kernel.NewEmployerID(uuid.NewString()),
		UserID:      otherUser,
		CompanyName: "Globex",
	}
	require.NoError(t, f.employers.Create(context.Background(), other))

	_, err := f.service.UpdateStatus(context.Background(), otherUser, app.ID, application.UpdateStatusRequest{
		Status: string(application.StatusRejected),
	})
	assertErrCode(t, err, application.CodeNotFound)
}

// ============================================================================
// Withdraw
// ============================================================================

func TestWithdraw(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	withdrawn, err := f.service.Withdraw(context.Background(), f.candidateUser, app.ID)
	require.NoError(t, err)

	assert.Equal(t, application.StatusWithdrawn, withdrawn.Status)

	require.Len(t, f.appRepo.history, 1)
	entry := f.appRepo.history[0]
	assert.Equal(t, application.StatusPending, entry.OldStatus)
	assert.Equal(t, application.StatusWithdrawn, entry.NewStatus)
	require.NotNil(t, entry.ChangedBy)
	assert.Equal(t, f.candidateUser, *entry.ChangedBy)
}

func TestWithdrawAfterHiredRejected(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	_, err := f.service.UpdateStatus(context.Background(), f.employerUser, app.ID, application.UpdateStatusRequest{
		Status: string(application.StatusHired),
	})
	require.NoError(t, err)

	_, err = f.service.Withdraw(context.Background(), f.candidateUser, app.ID)
	assertErrCode(t, err, application.CodeCannotWithdraw)
}

func TestWithdrawForeignApplicationSeesNotFound(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	otherUser := kernel.NewUserID(uuid.NewString())
	other := &candidate.Candidate{
		ID:        kernel.NewCandidateID(uuid.NewString()),
		UserID:    otherUser,
		FirstName: "Grace",
		LastName:  "Hopper",
	}
	require.NoError(t, f.candidates.Create(context.Background(), other))

	_, err := f.service.Withdraw(context.Background(), otherUser, app.ID)
	assertErrCode(t, err, application.CodeNotFound)
}

// ============================================================================
// Retrieval
// ============================================================================

func TestGetApplicationAsCandidate(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	detail, err := f.service.GetApplication(context.Background(), f.candidateUser, kernel.UserTypeCandidate, app.ID)
	require.NoError(t, err)

	assert.Equal(t, app.ID, detail.ID)
	assert.Equal(t, kernel.JobTitle("Backend Engineer"), detail.JobTitle)
	assert.Equal(t, kernel.CompanyName("Initech"), detail.CompanyName)
	assert.Equal(t, "Ada Lovelace", detail.CandidateName)
}

func TestGetApplicationIncludesHistory(t *testing.T) {
	f := newFixture(t)
	app := f.apply(t)

	_, err := f.service.UpdateStatus(context.Background(), f.employerUser, app.ID, application.UpdateStatusRequest{
		Status: string(application.StatusUnderReview),
	})
	require.NoError(t, err)
	_, err = f.service.UpdateStatus(context.Background(), f.employerUser, app.ID, application.UpdateStatusRequest{
		Status: string(application.StatusShortlisted),
	})
	require.NoError(t, err)

	detail, err := f.service.GetApplication(context.Background(), f.employerUser, kernel.UserTypeEmployer, app.ID)
	require.NoError(t, err)

	// Newest change first, with the acting user's email resolved
	require.Len(t, detail.History, 2)
	assert.Equal(t, application.StatusUnderReview, detail.History[0].OldStatus)
	assert.Equal(t, "hiring@initech.com", detail.History[0].ChangedByEmail)
	assert.Equal(t, application.StatusPending, detail.History[1].OldStatus)
	assert.Equal(t, "hiring@initech.com", detail.History[1].ChangedByEmail)
}

func TestListReceivedInvalidStatusFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.ListReceived(context.Background(), f.employerUser, application.ReceivedFilters{
		Status: "archived",
	}, kernel.PaginationOptions{Page: 1, PageSize: 20})
	assertErrCode(t, err, application.CodeInvalidStatus)
}

func TestListByJobForeignOwnerSeesNotFound(t *testing.T) {
	f := newFixture(t)
	f.apply(t)

	otherUser := kernel.NewUserID(uuid.NewString())
	other := &employer.Employer{
		ID:          kernel.NewEmployerID(uuid.NewString()),
		UserID:      otherUser,
		CompanyName: "Globex",
	}
	require.NoError(t, f.employers.Create(context.Background(), other))

	_, err := f.service.ListByJob(context.Background(), otherUser, f.job.ID, kernel.PaginationOptions{Page: 1, PageSize: 20})
	assertErrCode(t, err, job.CodeNotFound)
}

func TestListMine(t *testing.T) {
	f := newFixture(t)
	f.apply(t)

	items, err := f.service.ListMine(context.Background(), f.candidateUser, kernel.PaginationOptions{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, items.Items, 1)
}
