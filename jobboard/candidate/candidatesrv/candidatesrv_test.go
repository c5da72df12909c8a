package candidatesrv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"testing"

	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
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

type fakeCandidateRepo struct {
	byUserID map[kernel.UserID]*candidate.Candidate
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *candidate.Candidate) error {
	r.byUserID[c.UserID] = c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	for _, c := range r.byUserID {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errNotFound
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
	items := make([]candidate.Candidate, 0, len(r.byUserID))
	for _, c := range r.byUserID {
		items = append(items, *c)
	}
	return kernel.NewPaginated(items, opts, len(items)), nil
}
func (r *fakeCandidateRepo) Exists(_ context.Context, id kernel.CandidateID) (bool, error) {
	return false, nil
}

type fakeResumeRepo struct {
	resumes   map[kernel.ResumeID]*candidate.Resume
	createErr error
}

func (r *fakeResumeRepo) Create(_ context.Context, resume *candidate.Resume) error {
	if r.createErr != nil {
		return r.createErr
	}
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
	var out []candidate.Resume
	for _, resume := range r.resumes {
		if resume.CandidateID == candidateID {
			out = append(out, *resume)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) Delete(_ context.Context, id kernel.ResumeID) error {
	if _, ok := r.resumes[id]; !ok {
		return errNotFound
	}
	delete(r.resumes, id)
	return nil
}

func (r *fakeResumeRepo) ClearPrimary(_ context.Context, candidateID kernel.CandidateID) error {
	for _, resume := range r.resumes {
		if resume.CandidateID == candidateID {
			resume.IsPrimary = false
		}
	}
	return nil
}

func (r *fakeResumeRepo) CountByCandidateID(_ context.Context, candidateID kernel.CandidateID) (int64, error) {
	var n int64
	for _, resume := range r.resumes {
		if resume.CandidateID == candidateID {
			n++
		}
	}
	return n, nil
}

// fakeFileSystem records writes and deletes in memory.
type fakeFileSystem struct {
	files map[string][]byte
}

func newFakeFileSystem() *fakeFileSystem {
	return &fakeFileSystem{files: make(map[string][]byte)}
}

func (fs *fakeFileSystem) WriteFile(_ context.Context, filePath string, data []byte) error {
	fs.files[filePath] = data
	return nil
}

func (fs *fakeFileSystem) ReadFileStream(_ context.Context, filePath string) (io.ReadCloser, error) {
	data, ok := fs.files[filePath]
	if !ok {
		return nil, errNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (fs *fakeFileSystem) DeleteFile(_ context.Context, filePath string) error {
	delete(fs.files, filePath)
	return nil
}

func (fs *fakeFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

// ============================================================================
// Test Fixture
// ============================================================================

type fixture struct {
	service *CandidateService
	resumes *fakeResumeRepo
	fs      *fakeFileSystem

	userID  kernel.UserID
	profile *candidate.Candidate
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		resumes: &fakeResumeRepo{resumes: make(map[kernel.ResumeID]*candidate.Resume)},
		fs:      newFakeFileSystem(),
	}

	candidates := &fakeCandidateRepo{byUserID: make(map[kernel.UserID]*candidate.Candidate)}
	f.userID = kernel.NewUserID(uuid.NewString())
	f.profile = &candidate.Candidate{
		ID:        kernel.NewCandidateID(uuid.NewString()),
		UserID:    f.userID,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	require.NoError(t, candidates.Create(context.Background(), f.profile))

	f.service = NewCandidateService(candidates, f.resumes, nil, f.fs)
	return f
}

func uploadRequest() candidate.UploadResumeRequest {
	return candidate.UploadResumeRequest{
		Title:       "My Resume",
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		FileSize:    1024,
		FileData:    []byte("%PDF-1.4 fake"),
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
// UploadResume
// ============================================================================

func TestUploadResume(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service.UploadResume(context.Background(), f.userID, uploadRequest())
	require.NoError(t, err)

	assert.Equal(t, "My Resume", resp.Title)
	assert.Equal(t, "resume.pdf", resp.FileName)
	assert.True(t, resp.IsPrimary, "the first resume becomes primary")
	assert.Len(t, f.fs.files, 1)
}

func TestUploadResumeOversizedRejected(t *testing.T) {
	f := newFixture(t)

	req := uploadRequest()
	req.FileSize = candidate.MaxResumeSize + 1

	_, err := f.service.UploadResume(context.Background(), f.userID, req)
	assertErrCode(t, err, candidate.CodeFileSizeTooLarge)
	assert.Empty(t, f.fs.files)
}

func TestUploadResumeWrongTypeRejected(t *testing.T) {
	f := newFixture(t)

	req := uploadRequest()
	req.FileName = "resume.exe"
	req.ContentType = "application/octet-stream"

	_, err := f.service.UploadResume(context.Background(), f.userID, req)
	assertErrCode(t, err, candidate.CodeInvalidFileType)
	assert.Empty(t, f.fs.files)
}

func TestUploadResumeTitleDefaultsToFileName(t *testing.T) {
	f := newFixture(t)

	req := uploadRequest()
	req.Title = ""

	resp, err := f.service.UploadResume(context.Background(), f.userID, req)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", resp.Title)
}

func TestUploadResumePrimaryTakeover(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.service.UploadResume(ctx, f.userID, uploadRequest())
	require.NoError(t, err)
	require.True(t, first.IsPrimary)

	req := uploadRequest()
	req.FileName = "resume-v2.pdf"
	req.IsPrimary = true

	second, err := f.service.UploadResume(ctx, f.userID, req)
	require.NoError(t, err)
	assert.True(t, second.IsPrimary)

	// The first resume loses its primary flag.
	stored, err := f.resumes.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPrimary)
}

func TestUploadResumeSecondNotPrimaryByDefault(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.UploadResume(ctx, f.userID, uploadRequest())
	require.NoError(t, err)

	req := uploadRequest()
	req.FileName = "resume-v2.pdf"

	second, err := f.service.UploadResume(ctx, f.userID, req)
	require.NoError(t, err)
	assert.False(t, second.IsPrimary)
}

func TestUploadResumeCleansUpFileWhenRecordFails(t *testing.T) {
	f := newFixture(t)
	f.resumes.createErr = errors.New("db down")

	_, err := f.service.UploadResume(context.Background(), f.userID, uploadRequest())
	require.Error(t, err)
	assert.Empty(t, f.fs.files, "the stored file is removed when the record cannot be written")
}

func TestUploadResumeRequiresCandidateProfile(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.UploadResume(context.Background(), kernel.NewUserID(uuid.NewString()), uploadRequest())
	assertErrCode(t, err, candidate.CodeNotACandidate)
}

// ============================================================================
// Download / Delete
// ============================================================================

func TestDownloadResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	uploaded, err := f.service.UploadResume(ctx, f.userID, uploadRequest())
	require.NoError(t, err)

	stream, fileName, err := f.service.DownloadResume(ctx, f.userID, uploaded.ID)
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, "resume.pdf", fileName)
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestDownloadForeignResumeConcealed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	foreign := &candidate.Resume{
		ID:          kernel.NewResumeID(uuid.NewString()),
		CandidateID: kernel.NewCandidateID(uuid.NewString()),
		FileURL:     "resumes/foreign/file.pdf",
	}
	require.NoError(t, f.resumes.Create(ctx, foreign))

	_, _, err := f.service.DownloadResume(ctx, f.userID, foreign.ID)
	assertErrCode(t, err, candidate.CodeResumeNotFound)
}

func TestDeleteResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	uploaded, err := f.service.UploadResume(ctx, f.userID, uploadRequest())
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteResume(ctx, f.userID, uploaded.ID))

	_, err = f.resumes.GetByID(ctx, uploaded.ID)
	assert.Error(t, err)
	assert.Empty(t, f.fs.files)
}
