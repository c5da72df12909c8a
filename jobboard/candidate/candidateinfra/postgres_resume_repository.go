package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresResumeRepository implements candidate.ResumeRepository using PostgreSQL
type PostgresResumeRepository struct {
	db *sqlx.DB
}

// NewPostgresResumeRepository creates a new PostgreSQL resume repository
func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type resumeModel struct {
	ID          string    `db:"id"`
	CandidateID string    `db:"candidate_id"`
	Title       string    `db:"title"`
	FileURL     string    `db:"file_url"`
	FileName    string    `db:"file_name"`
	FileSize    int64     `db:"file_size"`
	IsPrimary   bool      `db:"is_primary"`
	UploadedAt  time.Time `db:"uploaded_at"`
}

func (m *resumeModel) toEntity() *candidate.Resume {
	return &candidate.Resume{
		ID:          kernel.ResumeID(m.ID),
		CandidateID: kernel.CandidateID(m.CandidateID),
		Title:       m.Title,
		FileURL:     kernel.BucketURL(m.FileURL),
		FileName:    m.FileName,
		FileSize:    m.FileSize,
		IsPrimary:   m.IsPrimary,
		UploadedAt:  m.UploadedAt,
	}
}

func resumeFromEntity(r *candidate.Resume) *resumeModel {
	return &resumeModel{
		ID:          string(r.ID),
		CandidateID: string(r.CandidateID),
		Title:       r.Title,
		FileURL:     string(r.FileURL),
		FileName:    r.FileName,
		FileSize:    r.FileSize,
		IsPrimary:   r.IsPrimary,
		UploadedAt:  r.UploadedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new resume record
func (r *PostgresResumeRepository) Create(ctx context.Context, resume *candidate.Resume) error {
	model := resumeFromEntity(resume)

	query := `
		INSERT INTO resumes (
			id, candidate_id, title, file_url, file_name, file_size,
			is_primary, uploaded_at
		) VALUES (
			:id, :candidate_id, :title, :file_url, :file_name, :file_size,
			:is_primary, :uploaded_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// GetByID retrieves a resume by ID
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*candidate.Resume, error) {
	query := `
		SELECT
			id, candidate_id, title, file_url, file_name, file_size,
			is_primary, uploaded_at
		FROM resumes
		WHERE id = $1
	`

	var model resumeModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrResumeNotFound()
		}
		return nil, fmt.Errorf("failed to get resume by id: %w", err)
	}

	return model.toEntity(), nil
}

// ListByCandidateID retrieves all resumes owned by a candidate
func (r *PostgresResumeRepository) ListByCandidateID(ctx context.Context, candidateID kernel.CandidateID) ([]candidate.Resume, error) {
	query := `
		SELECT
			id, candidate_id, title, file_url, file_name, file_size,
			is_primary, uploaded_at
		FROM resumes
		WHERE candidate_id = $1
		ORDER BY is_primary DESC, uploaded_at DESC
	`

	var models []resumeModel
	err := r.db.SelectContext(ctx, &models, query, string(candidateID))
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	resumes := make([]candidate.Resume, 0, len(models))
	for _, model := range models {
		resumes = append(resumes, *model.toEntity())
	}

	return resumes, nil
}

// Delete deletes a resume by ID
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	query := `DELETE FROM resumes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrResumeNotFound()
	}

	return nil
}

// ClearPrimary unsets the primary flag on all of a candidate's resumes
func (r *PostgresResumeRepository) ClearPrimary(ctx context.Context, candidateID kernel.CandidateID) error {
	query := `UPDATE resumes SET is_primary = FALSE WHERE candidate_id = $1`

	_, err := r.db.ExecContext(ctx, query, string(candidateID))
	if err != nil {
		return fmt.Errorf("failed to clear primary resume: %w", err)
	}

	return nil
}

// CountByCandidateID counts resumes owned by a candidate
func (r *PostgresResumeRepository) CountByCandidateID(ctx context.Context, candidateID kernel.CandidateID) (int64, error) {
	query := `SELECT COUNT(*) FROM resumes WHERE candidate_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(candidateID))
	if err != nil {
		return 0, fmt.Errorf("failed to count resumes: %w", err)
	}

	return count, nil
}
