package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/candidate"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresCandidateRepository implements candidate.Repository using PostgreSQL
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

// NewPostgresCandidateRepository creates a new PostgreSQL candidate repository
func NewPostgresCandidateRepository(db *sqlx.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type candidateModel struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Headline        string    `db:"headline"`
	Bio             string    `db:"bio"`
	Skills          string    `db:"skills"`
	ExperienceYears int       `db:"experience_years"`
	Location        string    `db:"location"`
	LinkedinURL     string    `db:"linkedin_url"`
	PortfolioURL    string    `db:"portfolio_url"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (m *candidateModel) toEntity() *candidate.Candidate {
	return &candidate.Candidate{
		ID:              kernel.CandidateID(m.ID),
		UserID:          kernel.UserID(m.UserID),
		FirstName:       kernel.FirstName(m.FirstName),
		LastName:        kernel.LastName(m.LastName),
		Headline:        m.Headline,
		Bio:             m.Bio,
		Skills:          m.Skills,
		ExperienceYears: m.ExperienceYears,
		Location:        m.Location,
		LinkedinURL:     m.LinkedinURL,
		PortfolioURL:    m.PortfolioURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromEntity(c *candidate.Candidate) *candidateModel {
	return &candidateModel{
		ID:              string(c.ID),
		UserID:          string(c.UserID),
		FirstName:       string(c.FirstName),
		LastName:        string(c.LastName),
		Headline:        c.Headline,
		Bio:             c.Bio,
		Skills:          c.Skills,
		ExperienceYears: c.ExperienceYears,
		Location:        c.Location,
		LinkedinURL:     c.LinkedinURL,
		PortfolioURL:    c.PortfolioURL,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new candidate profile
func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	model := fromEntity(c)

	query := `
		INSERT INTO candidates (
			id, user_id, first_name, last_name, headline, bio, skills,
			experience_years, location, linkedin_url, portfolio_url,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :first_name, :last_name, :headline, :bio, :skills,
			:experience_years, :location, :linkedin_url, :portfolio_url,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return candidate.ErrAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid foreign key reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `
		SELECT
			id, user_id, first_name, last_name, headline, bio, skills,
			experience_years, location, linkedin_url, portfolio_url,
			created_at, updated_at
		FROM candidates
		WHERE id = $1
	`

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetByUserID retrieves the candidate profile owned by a user account
func (r *PostgresCandidateRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*candidate.Candidate, error) {
	query := `
		SELECT
			id, user_id, first_name, last_name, headline, bio, skills,
			experience_years, location, linkedin_url, portfolio_url,
			created_at, updated_at
		FROM candidates
		WHERE user_id = $1
	`

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by user id: %w", err)
	}

	return model.toEntity(), nil
}

// Update updates an existing candidate profile
func (r *PostgresCandidateRepository) Update(ctx context.Context, c *candidate.Candidate) error {
	model := fromEntity(c)

	query := `
		UPDATE candidates SET
			first_name = :first_name,
			last_name = :last_name,
			headline = :headline,
			bio = :bio,
			skills = :skills,
			experience_years = :experience_years,
			location = :location,
			linkedin_url = :linkedin_url,
			portfolio_url = :portfolio_url,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrNotFound()
	}

	return nil
}

// List retrieves candidate profiles page by page
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM candidates`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := `
		SELECT
			id, user_id, first_name, last_name, headline, bio, skills,
			experience_years, location, linkedin_url, portfolio_url,
			created_at, updated_at
		FROM candidates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []candidateModel
	err := r.db.SelectContext(ctx, &models, query, pagination.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	entities := make([]candidate.Candidate, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[candidate.Candidate]{
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

// Exists checks if a candidate exists by ID
func (r *PostgresCandidateRepository) Exists(ctx context.Context, id kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check candidate existence: %w", err)
	}

	return exists, nil
}
