package employerinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/employer"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresEmployerRepository implements employer.Repository using PostgreSQL
type PostgresEmployerRepository struct {
	db *sqlx.DB
}

// NewPostgresEmployerRepository creates a new PostgreSQL employer repository
func NewPostgresEmployerRepository(db *sqlx.DB) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type employerModel struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	CompanyName string    `db:"company_name"`
	CompanyLogo string    `db:"company_logo"`
	Website     string    `db:"website"`
	Description string    `db:"description"`
	Industry    string    `db:"industry"`
	CompanySize string    `db:"company_size"`
	FoundedYear *int      `db:"founded_year"`
	Location    string    `db:"location"`
	IsVerified  bool      `db:"is_verified"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m *employerModel) toEntity() *employer.Employer {
	return &employer.Employer{
		ID:          kernel.EmployerID(m.ID),
		UserID:      kernel.UserID(m.UserID),
		CompanyName: kernel.CompanyName(m.CompanyName),
		CompanyLogo: kernel.BucketURL(m.CompanyLogo),
		Website:     m.Website,
		Description: m.Description,
		Industry:    m.Industry,
		CompanySize: m.CompanySize,
		FoundedYear: m.FoundedYear,
		Location:    m.Location,
		IsVerified:  m.IsVerified,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromEntity(e *employer.Employer) *employerModel {
	return &employerModel{
		ID:          string(e.ID),
		UserID:      string(e.UserID),
		CompanyName: string(e.CompanyName),
		CompanyLogo: string(e.CompanyLogo),
		Website:     e.Website,
		Description: e.Description,
		Industry:    e.Industry,
		CompanySize: e.CompanySize,
		FoundedYear: e.FoundedYear,
		Location:    e.Location,
		IsVerified:  e.IsVerified,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new employer profile
func (r *PostgresEmployerRepository) Create(ctx context.Context, e *employer.Employer) error {
	model := fromEntity(e)

	query := `
		INSERT INTO employers (
			id, user_id, company_name, company_logo, website, description,
			industry, company_size, founded_year, location, is_verified,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :company_name, :company_logo, :website, :description,
			:industry, :company_size, :founded_year, :location, :is_verified,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return employer.ErrAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid foreign key reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create employer: %w", err)
	}

	return nil
}

// GetByID retrieves an employer by ID
func (r *PostgresEmployerRepository) GetByID(ctx context.Context, id kernel.EmployerID) (*employer.Employer, error) {
	query := `
		SELECT
			id, user_id, company_name, company_logo, website, description,
			industry, company_size, founded_year, location, is_verified,
			created_at, updated_at
		FROM employers
		WHERE id = $1
	`

	var model employerModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, employer.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get employer by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetByUserID retrieves the employer profile owned by a user account
func (r *PostgresEmployerRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*employer.Employer, error) {
	query := `
		SELECT
			id, user_id, company_name, company_logo, website, description,
			industry, company_size, founded_year, location, is_verified,
			created_at, updated_at
		FROM employers
		WHERE user_id = $1
	`

	var model employerModel
	err := r.db.GetContext(ctx, &model, query, string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, employer.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get employer by user id: %w", err)
	}

	return model.toEntity(), nil
}

// Update updates an existing employer profile
func (r *PostgresEmployerRepository) Update(ctx context.Context, e *employer.Employer) error {
	model := fromEntity(e)

	query := `
		UPDATE employers SET
			company_name = :company_name,
			company_logo = :company_logo,
			website = :website,
			description = :description,
			industry = :industry,
			company_size = :company_size,
			founded_year = :founded_year,
			location = :location,
			is_verified = :is_verified,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update employer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return employer.ErrNotFound()
	}

	return nil
}

// List retrieves employer profiles with pagination
func (r *PostgresEmployerRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[employer.Employer], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM employers`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count employers: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT
			id, user_id, company_name, company_logo, website, description,
			industry, company_size, founded_year, location, is_verified,
			created_at, updated_at
		FROM employers
		ORDER BY company_name ASC
		LIMIT $1 OFFSET $2
	`

	var models []employerModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}

	entities := make([]employer.Employer, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[employer.Employer]{
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

// Exists checks if an employer exists by ID
func (r *PostgresEmployerRepository) Exists(ctx context.Context, id kernel.EmployerID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM employers WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check employer existence: %w", err)
	}

	return exists, nil
}
