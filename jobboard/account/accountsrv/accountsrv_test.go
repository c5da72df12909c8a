package accountsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/account"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/iam/auth"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// In-Memory Fakes
// ============================================================================

var errNotFound = errors.New("not found")

type fakeUserRepo struct {
	users map[kernel.UserID]*account.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[kernel.UserID]*account.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *account.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*account.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email kernel.Email) (*account.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *account.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id kernel.UserID, passwordHash string) error {
	user, ok := r.users[id]
	if !ok {
		return errNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

type fakeCandidateRepo struct {
	created []*candidate.Candidate
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *candidate.Candidate) error {
	r.created = append(r.created, c)
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	return nil, errNotFound
}

func (r *fakeCandidateRepo) GetByUserID(_ context.Context, userID kernel.UserID) (*candidate.Candidate, error) {
	return nil, errNotFound
}

func (r *fakeCandidateRepo) Update(_ context.Context, c *candidate.Candidate) error { return nil }

func (r *fakeCandidateRepo) List(_ context.Context, opts kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	items := make([]candidate.Candidate, 0, len(r.created))
	for _, c := range r.created {
		items = append(items, *c)
	}
	return kernel.NewPaginated(items, opts, len(items)), nil
}
func (r *fakeCandidateRepo) Exists(_ context.Context, id kernel.CandidateID) (bool, error) {
	return false, nil
}

type fakeEmployerRepo struct {
	created []*employer.Employer
}

func (r *fakeEmployerRepo) Create(_ context.Context, e *employer.Employer) error {
	r.created = append(r.created, e)
	return nil
}

func (r *fakeEmployerRepo) GetByID(_ context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	return nil, errNotFound
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

// plainHasher keeps passwords readable so tests can assert on them.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hash:" + password, nil }
func (plainHasher) Compare(hash, password string) bool   { return hash == "hash:"+password }

// ============================================================================
// Test Fixture
// ============================================================================

type fixture struct {
	service    *AccountService
	users      *fakeUserRepo
	candidates *fakeCandidateRepo
	employers  *fakeEmployerRepo
}

func newFixture() *fixture {
	f := &fixture{
		users:      newFakeUserRepo(),
		candidates: &fakeCandidateRepo{},
		employers:  &fakeEmployerRepo{},
	}
	tokens := auth.NewTokenService("test-secret", 15*time.Minute, time.Hour, "jobboard-test")
	f.service = NewAccountService(f.users, f.candidates, f.employers, plainHasher{}, tokens)
	return f
}

func candidateRegistration(email string) account.RegisterRequest {
	return account.RegisterRequest{
		Email:    email,
		Password: "s3cret-pass",
		UserType: string(kernel.UserTypeCandidate),
		Candidate: &account.CandidateProfilePayload{
			FirstName: "Ada",
			LastName:  "Lovelace",
		},
	}
}

func assertErrCode(t *testing.T, err error, code errx.Code) {
	t.Helper()
	require.Error(t, err)
	var ex *errx.Error
	require.ErrorAs(t, err, &ex)
	assert.Equal(t, code, ex.Code)
}

// ============================================================================
// Register
// ============================================================================

func TestRegisterCandidate(t *testing.T) {
	f := newFixture()

	resp, err := f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	require.NoError(t, err)

	assert.Equal(t, kernel.Email("ada@example.com"), resp.User.Email)
	assert.Equal(t, kernel.UserTypeCandidate, resp.User.UserType)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "Bearer", resp.Tokens.TokenType)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), resp.Tokens.ExpiresIn)

	require.Len(t, f.candidates.created, 1)
	assert.Equal(t, kernel.FirstName("Ada"), f.candidates.created[0].FirstName)
}

func TestRegisterEmployer(t *testing.T) {
	f := newFixture()

	resp, err := f.service.Register(context.Background(), account.RegisterRequest{
		Email:    "hr@initech.com",
		Password: "s3cret-pass",
		UserType: string(kernel.UserTypeEmployer),
		Employer: &account.EmployerProfilePayload{
			CompanyName: "Initech",
			Website:     "https://initech.example",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, kernel.UserTypeEmployer, resp.User.UserType)
	require.Len(t, f.employers.created, 1)
	assert.Equal(t, kernel.CompanyName("Initech"), f.employers.created[0].CompanyName)
	assert.Empty(t, f.candidates.created)
}

func TestRegisterAdminRejected(t *testing.T) {
	f := newFixture()

	req := candidateRegistration("root@example.com")
	req.UserType = string(kernel.UserTypeAdmin)

	_, err := f.service.Register(context.Background(), req)
	assertErrCode(t, err, account.CodeInvalidUserType)
}

func TestRegisterUnknownUserTypeRejected(t *testing.T) {
	f := newFixture()

	req := candidateRegistration("x@example.com")
	req.UserType = "recruiter"

	_, err := f.service.Register(context.Background(), req)
	assertErrCode(t, err, account.CodeInvalidUserType)
}

func TestRegisterMissingProfilePayloadRejected(t *testing.T) {
	f := newFixture()

	req := candidateRegistration("y@example.com")
	req.Candidate = nil

	_, err := f.service.Register(context.Background(), req)
	assertErrCode(t, err, account.CodeInvalidRequest)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	f := newFixture()

	_, err := f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	require.NoError(t, err)

	_, err = f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	assertErrCode(t, err, account.CodeEmailTaken)
}

// ============================================================================
// Login / Refresh
// ============================================================================

func TestLogin(t *testing.T) {
	f := newFixture()
	_, err := f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	require.NoError(t, err)

	resp, err := f.service.Login(context.Background(), account.LoginRequest{
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
}

func TestLoginConcealsUnknownEmail(t *testing.T) {
	f := newFixture()
	_, err := f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, unknownErr := f.service.Login(context.Background(), account.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	_, wrongErr := f.service.Login(context.Background(), account.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	assertErrCode(t, unknownErr, account.CodeInvalidCredentials)
	assertErrCode(t, wrongErr, account.CodeInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	f := newFixture()
	registered, err := f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	require.NoError(t, err)

	pair, err := f.service.Refresh(context.Background(), registered.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	f := newFixture()

	_, err := f.service.Refresh(context.Background(), "not-a-token")
	assert.Error(t, err)
}

// ============================================================================
// Password Management
// ============================================================================

func TestChangePassword(t *testing.T) {
	f := newFixture()
	registered, err := f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	require.NoError(t, err)

	err = f.service.ChangePassword(context.Background(), registered.User.ID, account.ChangePasswordRequest{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "even-m0re-secret",
	})
	require.NoError(t, err)

	_, err = f.service.Login(context.Background(), account.LoginRequest{
		Email:    "ada@example.com",
		Password: "even-m0re-secret",
	})
	assert.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	f := newFixture()
	registered, err := f.service.Register(context.Background(), candidateRegistration("ada@example.com"))
	require.NoError(t, err)

	err = f.service.ChangePassword(context.Background(), registered.User.ID, account.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "whatever",
	})
	assertErrCode(t, err, account.CodeWrongPassword)
}
