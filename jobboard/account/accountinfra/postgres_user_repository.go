package accountinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/jobboard/account"
	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresUserRepository implements account.UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type userModel struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	PasswordHash    string    `db:"password_hash"`
	UserType        string    `db:"user_type"`
	Phone           string    `db:"phone"`
	IsEmailVerified bool      `db:"is_email_verified"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *userModel) toEntity() *account.User {
	return &account.User{
		ID:              kernel.UserID(m.ID),
		Email:           kernel.Email(m.Email),
		PasswordHash:    m.PasswordHash,
		UserType:        kernel.UserType(m.UserType),
		Phone:           kernel.Phone(m.Phone),
		IsEmailVerified: m.IsEmailVerified,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(u *account.User) *userModel {
	return &userModel{
		ID:              string(u.ID),
		Email:           string(u.Email),
		PasswordHash:    u.PasswordHash,
		UserType:        string(u.UserType),
		Phone:           string(u.Phone),
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *account.User) error {
	model := fromEntity(user)

	query := `
		INSERT INTO users (
			id, email, password_hash, user_type, phone,
			is_email_verified, created_at, updated_at
		) VALUES (
			:id, :email, :password_hash, :user_type, :phone,
			:is_email_verified, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return account.ErrEmailTaken()
			}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*account.User, error) {
	query := `
		SELECT
			id, email, password_hash, user_type, phone,
			is_email_verified, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return model.toEntity(), nil
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*account.User, error) {
	query := `
		SELECT
			id, email, password_hash, user_type, phone,
			is_email_verified, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var model userModel
	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return model.toEntity(), nil
}

// Update updates an existing user
func (r *PostgresUserRepository) Update(ctx context.Context, user *account.User) error {
	model := fromEntity(user)

	query := `
		UPDATE users SET
			phone = :phone,
			is_email_verified = :is_email_verified,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return account.ErrNotFound()
	}

	return nil
}

// UpdatePassword updates the password hash for a user
func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id kernel.UserID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1,
		    updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return account.ErrNotFound()
	}

	return nil
}

// ExistsByEmail checks if a user with the given email exists
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(email))
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
