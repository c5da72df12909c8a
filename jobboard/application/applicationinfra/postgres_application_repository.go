package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/application"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID            string     `db:"id"`
	JobID         string     `db:"job_id"`
	CandidateID   string     `db:"candidate_id"`
	ResumeID      *string    `db:"resume_id"`
	CoverLetter   string     `db:"cover_letter"`
	Status        string     `db:"status"`
	EmployerNotes string     `db:"employer_notes"`
	AppliedAt     time.Time  `db:"applied_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	ReviewedAt    *time.Time `db:"reviewed_at"`
}

type historyModel struct {
	ID            string    `db:"id"`
	ApplicationID string    `db:"application_id"`
	OldStatus     string    `db:"old_status"`
	NewStatus     string    `db:"new_status"`
	ChangedBy     *string   `db:"changed_by"`
	Notes         string    `db:"notes"`
	ChangedAt     time.Time `db:"changed_at"`
}

func (m *applicationModel) toEntity() *application.Application {
	var resumeID *kernel.ResumeID
	if m.ResumeID != nil {
		rid := kernel.ResumeID(*m.ResumeID)
		resumeID = &rid
	}

	return &application.Application{
		ID:            kernel.ApplicationID(m.ID),
		JobID:         kernel.JobID(m.JobID),
		CandidateID:   kernel.CandidateID(m.CandidateID),
		ResumeID:      resumeID,
		CoverLetter:   m.CoverLetter,
		Status:        application.Status(m.Status),
		EmployerNotes: m.EmployerNotes,
		AppliedAt:     m.AppliedAt,
		UpdatedAt:     m.UpdatedAt,
		ReviewedAt:    m.ReviewedAt,
	}
}

func fromEntity(app *application.Application) *applicationModel {
	var resumeID *string
	if app.ResumeID != nil {
		rid := string(*app.ResumeID)
		resumeID = &rid
	}

	return &applicationModel{
		ID:            string(app.ID),
		JobID:         string(app.JobID),
		CandidateID:   string(app.CandidateID),
		ResumeID:      resumeID,
		CoverLetter:   app.CoverLetter,
		Status:        string(app.Status),
		EmployerNotes: app.EmployerNotes,
		AppliedAt:     app.AppliedAt,
		UpdatedAt:     app.UpdatedAt,
		ReviewedAt:    app.ReviewedAt,
	}
}

func historyFromEntity(h *application.StatusHistory) *historyModel {
	var changedBy *string
	if h.ChangedBy != nil {
		uid := string(*h.ChangedBy)
		changedBy = &uid
	}

	return &historyModel{
		ID:            h.ID,
		ApplicationID: string(h.ApplicationID),
		OldStatus:     string(h.OldStatus),
		NewStatus:     string(h.NewStatus),
		ChangedBy:     changedBy,
		Notes:         h.Notes,
		ChangedAt:     h.ChangedAt,
	}
}

const applicationColumns = `
	id, job_id, candidate_id, resume_id, cover_letter, status,
	employer_notes, applied_at, updated_at, reviewed_at
`

const listItemColumns = `
	a.id, a.job_id, j.title AS job_title, e.company_name,
	a.candidate_id, c.first_name || ' ' || c.last_name AS candidate_name,
	a.status, a.applied_at, a.updated_at
`

const listItemJoins = `
	FROM applications a
	INNER JOIN jobs j ON a.job_id = j.id
	INNER JOIN employers e ON j.employer_id = e.id
	INNER JOIN candidates c ON a.candidate_id = c.id
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application. The UNIQUE(job_id, candidate_id)
// constraint is the final arbiter against duplicate submissions racing
// past the service-level check.
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, job_id, candidate_id, resume_id, cover_letter, status,
			employer_notes, applied_at, updated_at, reviewed_at
		) VALUES (
			:id, :job_id, :candidate_id, :resume_id, :cover_letter, :status,
			:employer_notes, :applied_at, :updated_at, :reviewed_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return application.ErrAlreadyApplied()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid foreign key reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetOwnedByCandidate retrieves an application scoped to its owning candidate
func (r *PostgresApplicationRepository) GetOwnedByCandidate(ctx context.Context, id kernel.ApplicationID, candidateID kernel.CandidateID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1 AND candidate_id = $2`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(candidateID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get application for candidate: %w", err)
	}

	return model.toEntity(), nil
}

// GetOwnedByEmployer retrieves an application scoped to the employer
// owning its job
func (r *PostgresApplicationRepository) GetOwnedByEmployer(ctx context.Context, id kernel.ApplicationID, employerID kernel.EmployerID) (*application.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.resume_id, a.cover_letter,
			a.status, a.employer_notes, a.applied_at, a.updated_at, a.reviewed_at
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1 AND j.employer_id = $2
	`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(employerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get application for employer: %w", err)
	}

	return model.toEntity(), nil
}

// UpdateWithHistory persists a status change and its audit entry atomically.
// Either both rows land or neither does.
func (r *PostgresApplicationRepository) UpdateWithHistory(ctx context.Context, app *application.Application, entry *application.StatusHistory) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE applications SET
			status = :status,
			employer_notes = :employer_notes,
			updated_at = :updated_at,
			reviewed_at = :reviewed_at
		WHERE id = :id
	`

	result, err := tx.NamedExecContext(ctx, updateQuery, fromEntity(app))
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return application.ErrNotFound()
	}

	insertQuery := `
		INSERT INTO application_status_history (
			id, application_id, old_status, new_status, changed_by, notes, changed_at
		) VALUES (
			:id, :application_id, :old_status, :new_status, :changed_by, :notes, :changed_at
		)
	`

	if _, err := tx.NamedExecContext(ctx, insertQuery, historyFromEntity(entry)); err != nil {
		return fmt.Errorf("failed to insert status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}

	return nil
}

// ListHistory retrieves the audit trail of an application, newest first,
// with the acting user's email joined in for display
func (r *PostgresApplicationRepository) ListHistory(ctx context.Context, applicationID kernel.ApplicationID) ([]application.StatusHistoryEntry, error) {
	query := `
		SELECT h.id, h.application_id, h.old_status, h.new_status, h.changed_by,
		       COALESCE(u.email, '') AS changed_by_email, h.notes, h.changed_at
		FROM application_status_history h
		LEFT JOIN users u ON h.changed_by = u.id
		WHERE h.application_id = $1
		ORDER BY h.changed_at DESC
	`

	var entries []application.StatusHistoryEntry
	err := r.db.SelectContext(ctx, &entries, query, string(applicationID))
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	return entries, nil
}

// ListByCandidateID retrieves a candidate's applications with job details
func (r *PostgresApplicationRepository) ListByCandidateID(ctx context.Context, candidateID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationListItem], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(candidateID)); err != nil {
		return nil, fmt.Errorf("failed to count candidate applications: %w", err)
	}

	query := `SELECT ` + listItemColumns + listItemJoins + `
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3
	`

	offset := (pagination.Page - 1) * pagination.PageSize

	var items []application.ApplicationListItem
	err := r.db.SelectContext(ctx, &items, query, string(candidateID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by candidate: %w", err)
	}

	return paginatedItems(items, total, pagination), nil
}

// ListByEmployerID retrieves applications received across an employer's
// postings, optionally filtered by status and job
func (r *PostgresApplicationRepository) ListByEmployerID(ctx context.Context, employerID kernel.EmployerID, filters application.ReceivedFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationListItem], error) {
	conditions := []string{"j.employer_id = $1"}
	args := []any{string(employerID)}

	if filters.Status != "" {
		args = append(args, string(filters.Status))
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filters.JobID != "" {
		args = append(args, string(filters.JobID))
		conditions = append(conditions, fmt.Sprintf("a.job_id = $%d", len(args)))
	}

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*)` + listItemJoins + whereClause

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count employer applications: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s %s
		ORDER BY a.applied_at DESC
		LIMIT $%d OFFSET $%d
	`, listItemColumns, listItemJoins, whereClause, len(args)+1, len(args)+2)

	offset := (pagination.Page - 1) * pagination.PageSize
	args = append(args, pagination.PageSize, offset)

	var items []application.ApplicationListItem
	err := r.db.SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by employer: %w", err)
	}

	return paginatedItems(items, total, pagination), nil
}

// ListByJobID retrieves applications submitted to a specific posting
func (r *PostgresApplicationRepository) ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.ApplicationListItem], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(jobID)); err != nil {
		return nil, fmt.Errorf("failed to count job applications: %w", err)
	}

	query := `SELECT ` + listItemColumns + listItemJoins + `
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
		LIMIT $2 OFFSET $3
	`

	offset := (pagination.Page - 1) * pagination.PageSize

	var items []application.ApplicationListItem
	err := r.db.SelectContext(ctx, &items, query, string(jobID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}

	return paginatedItems(items, total, pagination), nil
}

// ExistsByJobAndCandidate checks if an application exists for a job and candidate
func (r *PostgresApplicationRepository) ExistsByJobAndCandidate(ctx context.Context, jobID kernel.JobID, candidateID kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(jobID), string(candidateID))
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// CountByCandidateID counts a candidate's applications
func (r *PostgresApplicationRepository) CountByCandidateID(ctx context.Context, candidateID kernel.CandidateID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE candidate_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(candidateID))
	if err != nil {
		return 0, fmt.Errorf("failed to count candidate applications: %w", err)
	}

	return count, nil
}

// StatusCountsByCandidate groups a candidate's applications by status
func (r *PostgresApplicationRepository) StatusCountsByCandidate(ctx context.Context, candidateID kernel.CandidateID) (map[string]int64, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM applications
		WHERE candidate_id = $1
		GROUP BY status
	`

	return r.statusCounts(ctx, query, string(candidateID))
}

// CountByEmployerID counts applications received across an employer's postings
func (r *PostgresApplicationRepository) CountByEmployerID(ctx context.Context, employerID kernel.EmployerID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		WHERE j.employer_id = $1
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(employerID))
	if err != nil {
		return 0, fmt.Errorf("failed to count employer applications: %w", err)
	}

	return count, nil
}

// StatusCountsByEmployer groups received applications by status
func (r *PostgresApplicationRepository) StatusCountsByEmployer(ctx context.Context, employerID kernel.EmployerID) (map[string]int64, error) {
	query := `
		SELECT a.status, COUNT(*) AS count
		FROM applications a
		INNER JOIN jobs j ON a.job_id = j.id
		WHERE j.employer_id = $1
		GROUP BY a.status
	`

	return r.statusCounts(ctx, query, string(employerID))
}

// ============================================================================
// Helper Methods
// ============================================================================

type statusCountRow struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

func (r *PostgresApplicationRepository) statusCounts(ctx context.Context, query string, arg string) (map[string]int64, error) {
	var rows []statusCountRow
	if err := r.db.SelectContext(ctx, &rows, query, arg); err != nil {
		return nil, fmt.Errorf("failed to group applications by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func paginatedItems(items []application.ApplicationListItem, total int, pagination kernel.PaginationOptions) *kernel.Paginated[application.ApplicationListItem] {
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	if items == nil {
		items = []application.ApplicationListItem{}
	}

	return &kernel.Paginated[application.ApplicationListItem]{
		Items: items,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(items) == 0,
	}
}
