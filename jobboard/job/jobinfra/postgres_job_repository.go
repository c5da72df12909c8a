package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/job"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type jobModel struct {
	ID                  string     `db:"id"`
	EmployerID          string     `db:"employer_id"`
	Title               string     `db:"title"`
	Slug                string     `db:"slug"`
	Description         string     `db:"description"`
	Requirements        string     `db:"requirements"`
	Responsibilities    string     `db:"responsibilities"`
	Category            string     `db:"category"`
	JobType             string     `db:"job_type"`
	ExperienceLevel     string     `db:"experience_level"`
	Location            string     `db:"location"`
	SalaryMin           *int64     `db:"salary_min"`
	SalaryMax           *int64     `db:"salary_max"`
	SalaryCurrency      string     `db:"salary_currency"`
	IsActive            bool       `db:"is_active"`
	PositionsAvailable  int        `db:"positions_available"`
	Views               int64      `db:"views"`
	ApplicationDeadline *time.Time `db:"application_deadline"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

type jobWithCompanyModel struct {
	jobModel
	CompanyName string `db:"company_name"`
}

func (m *jobModel) toEntity() *job.Job {
	return &job.Job{
		ID:                  kernel.JobID(m.ID),
		EmployerID:          kernel.EmployerID(m.EmployerID),
		Title:               kernel.JobTitle(m.Title),
		Slug:                kernel.JobSlug(m.Slug),
		Description:         kernel.JobDescription(m.Description),
		Requirements:        m.Requirements,
		Responsibilities:    m.Responsibilities,
		Category:            m.Category,
		JobType:             job.JobType(m.JobType),
		ExperienceLevel:     job.ExperienceLevel(m.ExperienceLevel),
		Location:            m.Location,
		SalaryMin:           m.SalaryMin,
		SalaryMax:           m.SalaryMax,
		SalaryCurrency:      m.SalaryCurrency,
		IsActive:            m.IsActive,
		PositionsAvailable:  m.PositionsAvailable,
		Views:               m.Views,
		ApplicationDeadline: m.ApplicationDeadline,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func (m *jobWithCompanyModel) toEntity() *job.JobWithCompany {
	return &job.JobWithCompany{
		Job:         *m.jobModel.toEntity(),
		CompanyName: kernel.CompanyName(m.CompanyName),
	}
}

func fromEntity(j *job.Job) *jobModel {
	return &jobModel{
		ID:                  string(j.ID),
		EmployerID:          string(j.EmployerID),
		Title:               string(j.Title),
		Slug:                string(j.Slug),
		Description:         string(j.Description),
		Requirements:        j.Requirements,
		Responsibilities:    j.Responsibilities,
		Category:            j.Category,
		JobType:             string(j.JobType),
		ExperienceLevel:     string(j.ExperienceLevel),
		Location:            j.Location,
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		SalaryCurrency:      j.SalaryCurrency,
		IsActive:            j.IsActive,
		PositionsAvailable:  j.PositionsAvailable,
		Views:               j.Views,
		ApplicationDeadline: j.ApplicationDeadline,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

const jobColumns = `
	j.id, j.employer_id, j.title, j.slug, j.description, j.requirements,
	j.responsibilities, j.category, j.job_type, j.experience_level, j.location,
	j.salary_min, j.salary_max, j.salary_currency, j.is_active,
	j.positions_available, j.views, j.application_deadline, j.created_at,
	j.updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job posting
func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	model := fromEntity(j)

	query := `
		INSERT INTO jobs (
			id, employer_id, title, slug, description, requirements,
			responsibilities, category, job_type, experience_level, location,
			salary_min, salary_max, salary_currency, is_active,
			positions_available, views, application_deadline, created_at,
			updated_at
		) VALUES (
			:id, :employer_id, :title, :slug, :description, :requirements,
			:responsibilities, :category, :job_type, :experience_level, :location,
			:salary_min, :salary_max, :salary_currency, :is_active,
			:positions_available, :views, :application_deadline, :created_at,
			:updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid foreign key reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetBySlug retrieves a job with its company name by slug
func (r *PostgresJobRepository) GetBySlug(ctx context.Context, slug kernel.JobSlug) (*job.JobWithCompany, error) {
	query := `
		SELECT ` + jobColumns + `, e.company_name
		FROM jobs j
		INNER JOIN employers e ON j.employer_id = e.id
		WHERE j.slug = $1
	`

	var model jobWithCompanyModel
	err := r.db.GetContext(ctx, &model, query, string(slug))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get job by slug: %w", err)
	}

	return model.toEntity(), nil
}

// Update updates an existing job posting
func (r *PostgresJobRepository) Update(ctx context.Context, j *job.Job) error {
	model := fromEntity(j)

	query := `
		UPDATE jobs SET
			title = :title,
			description = :description,
			requirements = :requirements,
			responsibilities = :responsibilities,
			category = :category,
			job_type = :job_type,
			experience_level = :experience_level,
			location = :location,
			salary_min = :salary_min,
			salary_max = :salary_max,
			salary_currency = :salary_currency,
			is_active = :is_active,
			positions_available = :positions_available,
			application_deadline = :application_deadline,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrNotFound()
	}

	return nil
}

// Delete deletes a job posting by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrNotFound()
	}

	return nil
}

// buildFilterClauses translates list filters into WHERE conditions.
func buildFilterClauses(filters job.ListFilters) ([]string, []any) {
	var conditions []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.ActiveOnly {
		conditions = append(conditions, "j.is_active = TRUE")
		conditions = append(conditions, "(j.application_deadline IS NULL OR j.application_deadline > NOW())")
	}
	if filters.Search != "" {
		p := arg("%" + filters.Search + "%")
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE %s OR j.description ILIKE %s)", p, p))
	}
	if filters.Category != "" {
		conditions = append(conditions, "j.category = "+arg(filters.Category))
	}
	if filters.JobType != "" {
		conditions = append(conditions, "j.job_type = "+arg(filters.JobType))
	}
	if filters.ExperienceLevel != "" {
		conditions = append(conditions, "j.experience_level = "+arg(filters.ExperienceLevel))
	}
	if filters.Location != "" {
		conditions = append(conditions, "j.location ILIKE "+arg("%"+filters.Location+"%"))
	}
	if filters.SalaryMin != nil {
		conditions = append(conditions, "j.salary_max >= "+arg(*filters.SalaryMin))
	}
	if filters.EmployerID != "" {
		conditions = append(conditions, "j.employer_id = "+arg(string(filters.EmployerID)))
	}

	return conditions, args
}

// List retrieves job postings matching the filters, with pagination
func (r *PostgresJobRepository) List(ctx context.Context, filters job.ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[job.JobWithCompany], error) {
	conditions, args := buildFilterClauses(filters)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM jobs j
		INNER JOIN employers e ON j.employer_id = e.id
		%s
	`, whereClause)

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s, e.company_name
		FROM jobs j
		INNER JOIN employers e ON j.employer_id = e.id
		%s
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d
	`, jobColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, pagination.PageSize, offset)

	var models []jobWithCompanyModel
	err := r.db.SelectContext(ctx, &models, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	entities := make([]job.JobWithCompany, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[job.JobWithCompany]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}

// ListByEmployerID retrieves all postings of an employer, active or not
func (r *PostgresJobRepository) ListByEmployerID(ctx context.Context, employerID kernel.EmployerID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(employerID)); err != nil {
		return nil, fmt.Errorf("failed to count employer jobs: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `SELECT ` + jobColumns + `
		FROM jobs j
		WHERE j.employer_id = $1
		ORDER BY j.created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, string(employerID), pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by employer: %w", err)
	}

	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[job.Job]{
		Items: entities,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(entities) == 0,
	}, nil
}

// IncrementViews bumps the view counter of a posting
func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id kernel.JobID) error {
	query := `UPDATE jobs SET views = views + 1 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to increment job views: %w", err)
	}

	return nil
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

// CountByEmployerID counts an employer's postings
func (r *PostgresJobRepository) CountByEmployerID(ctx context.Context, employerID kernel.EmployerID, activeOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(employerID))
	if err != nil {
		return 0, fmt.Errorf("failed to count employer jobs: %w", err)
	}

	return count, nil
}
