package candidatesrv

import (
	"context"
	"io"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/pkg/errx"
	"github.com/Makanak1/Job-Board-Platform/pkg/fsx"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/Makanak1/Job-Board-Platform/pkg/logx"
	"github.com/google/uuid"
)

// CandidateService provides business operations for candidate profiles
// and their resumes
type CandidateService struct {
	candidateRepo   candidate.Repository
	resumeRepo      candidate.ResumeRepository
	applicationRepo application.Repository
	fileSystem      fsx.FileSystem
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(
	candidateRepo candidate.Repository,
	resumeRepo candidate.ResumeRepository,
	applicationRepo application.Repository,
	fileSystem fsx.FileSystem,
) *CandidateService {
	return &CandidateService{
		candidateRepo:   candidateRepo,
		resumeRepo:      resumeRepo,
		applicationRepo: applicationRepo,
		fileSystem:      fileSystem,
	}
}

// GetMyProfile retrieves the candidate profile of the authenticated user
func (s *CandidateService) GetMyProfile(ctx context.Context, userID kernel.UserID) (*candidate.CandidateResponse, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, candidate.ErrNotFound().WithDetail("user_id", userID.String())
	}

	resp := candidate.ToCandidateResponse(profile)
	return &resp, nil
}

// GetCandidate retrieves a candidate profile by ID
func (s *CandidateService) GetCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateResponse, error) {
	profile, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := candidate.ToCandidateResponse(profile)
	return &resp, nil
}

// ListCandidates retrieves candidate profiles page by page
func (s *CandidateService) ListCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.CandidateResponse], error) {
	candidates, err := s.candidateRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates.Items))
	for i := range candidates.Items {
		responses = append(responses, candidate.ToCandidateResponse(&candidates.Items[i]))
	}

	return &kernel.Paginated[candidate.CandidateResponse]{
		Items: responses,
		Page:  candidates.Page,
		Empty: candidates.Empty,
	}, nil
}

// UpdateMyProfile updates the candidate profile of the authenticated user
func (s *CandidateService) UpdateMyProfile(ctx context.Context, userID kernel.UserID, req candidate.UpdateCandidateRequest) (*candidate.CandidateResponse, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, candidate.ErrNotFound().WithDetail("user_id", userID.String())
	}

	profile.ApplyUpdate(req)

	if err := s.candidateRepo.Update(ctx, profile); err != nil {
		return nil, errx.Wrap(err, "failed to update candidate profile", errx.TypeInternal)
	}

	resp := candidate.ToCandidateResponse(profile)
	return &resp, nil
}

// UploadResume validates and stores a resume file, then records it
func (s *CandidateService) UploadResume(ctx context.Context, userID kernel.UserID, req candidate.UploadResumeRequest) (*candidate.ResumeResponse, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, candidate.ErrNotACandidate()
	}

	if req.FileSize > candidate.MaxResumeSize {
		return nil, candidate.ErrFileSizeTooLarge().
			WithDetail("file_size", req.FileSize).
			WithDetail("max_size", candidate.MaxResumeSize)
	}

	if !candidate.AllowedResumeTypes[req.ContentType] {
		return nil, candidate.ErrInvalidFileType().
			WithDetail("content_type", req.ContentType).
			WithDetail("allowed_types", "pdf, doc, docx")
	}

	resumeID := kernel.NewResumeID(uuid.NewString())
	storagePath := s.fileSystem.Join("resumes", profile.ID.String(), resumeID.String(), req.FileName)

	if err := s.fileSystem.WriteFile(ctx, storagePath, req.FileData); err != nil {
		return nil, errx.Wrap(err, "failed to upload resume", errx.TypeExternal).
			WithDetail("path", storagePath)
	}

	// The first resume a candidate uploads becomes primary automatically
	count, err := s.resumeRepo.CountByCandidateID(ctx, profile.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count resumes", errx.TypeInternal)
	}
	isPrimary := req.IsPrimary || count == 0

	if isPrimary {
		if err := s.resumeRepo.ClearPrimary(ctx, profile.ID); err != nil {
			return nil, errx.Wrap(err, "failed to clear primary resume", errx.TypeInternal)
		}
	}

	title := req.Title
	if title == "" {
		title = req.FileName
	}

	resume := &candidate.Resume{
		ID:          resumeID,
		CandidateID: profile.ID,
		Title:       title,
		FileURL:     kernel.BucketURL(storagePath),
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		IsPrimary:   isPrimary,
		UploadedAt:  time.Now(),
	}

	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		// Clean up the uploaded file on failure
		s.fileSystem.DeleteFile(context.Background(), storagePath)
		return nil, errx.Wrap(err, "failed to record resume", errx.TypeInternal)
	}

	logx.Infof("candidate %s uploaded resume %s", profile.ID, resume.ID)

	resp := candidate.ToResumeResponse(resume)
	return &resp, nil
}

// ListMyResumes retrieves the authenticated candidate's resumes
func (s *CandidateService) ListMyResumes(ctx context.Context, userID kernel.UserID) ([]candidate.ResumeResponse, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, candidate.ErrNotACandidate()
	}

	resumes, err := s.resumeRepo.ListByCandidateID(ctx, profile.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list resumes", errx.TypeInternal)
	}

	responses := make([]candidate.ResumeResponse, 0, len(resumes))
	for i := range resumes {
		responses = append(responses, candidate.ToResumeResponse(&resumes[i]))
	}

	return responses, nil
}

// DownloadResume streams a resume file owned by the authenticated candidate
func (s *CandidateService) DownloadResume(ctx context.Context, userID kernel.UserID, resumeID kernel.ResumeID) (io.ReadCloser, string, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, "", candidate.ErrNotACandidate()
	}

	resume, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return nil, "", candidate.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	// Ownership miss reads as not found so foreign resumes stay concealed
	if !resume.BelongsTo(profile.ID) {
		return nil, "", candidate.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	stream, err := s.fileSystem.ReadFileStream(ctx, string(resume.FileURL))
	if err != nil {
		return nil, "", errx.Wrap(err, "failed to download resume", errx.TypeExternal)
	}

	return stream, resume.FileName, nil
}

// DeleteResume removes a resume record and its stored file
func (s *CandidateService) DeleteResume(ctx context.Context, userID kernel.UserID, resumeID kernel.ResumeID) error {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return candidate.ErrNotACandidate()
	}

	resume, err := s.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		return candidate.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	if !resume.BelongsTo(profile.ID) {
		return candidate.ErrResumeNotFound().WithDetail("resume_id", resumeID.String())
	}

	if err := s.resumeRepo.Delete(ctx, resumeID); err != nil {
		return errx.Wrap(err, "failed to delete resume", errx.TypeInternal)
	}

	if err := s.fileSystem.DeleteFile(ctx, string(resume.FileURL)); err != nil {
		// The record is gone; a dangling file is tolerable
		logx.Warnf("failed to delete resume file %s: %v", resume.FileURL, err)
	}

	return nil
}

// GetMyStats aggregates the authenticated candidate's application activity
func (s *CandidateService) GetMyStats(ctx context.Context, userID kernel.UserID) (*candidate.CandidateStatsResponse, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, candidate.ErrNotACandidate()
	}

	totalApplications, err := s.applicationRepo.CountByCandidateID(ctx, profile.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	statusCounts, err := s.applicationRepo.StatusCountsByCandidate(ctx, profile.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to group applications by status", errx.TypeInternal)
	}

	resumeCount, err := s.resumeRepo.CountByCandidateID(ctx, profile.ID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count resumes", errx.TypeInternal)
	}

	return &candidate.CandidateStatsResponse{
		CandidateID:          profile.ID,
		TotalApplications:    totalApplications,
		ApplicationsByStatus: statusCounts,
		ResumeCount:          resumeCount,
	}, nil
}
