package account

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type User struct {
	ID              kernel.UserID   `db:"id" json:"id"`
	Email           kernel.Email    `db:"email" json:"email"`
	PasswordHash    string          `db:"password_hash" json:"-"`
	UserType        kernel.UserType `db:"user_type" json:"user_type"`
	Phone           kernel.Phone    `db:"phone" json:"phone,omitempty"`
	IsEmailVerified bool            `db:"is_email_verified" json:"is_email_verified"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsCandidate checks if the account belongs to a candidate.
func (u *User) IsCandidate() bool {
	return u.UserType == kernel.UserTypeCandidate
}

// IsEmployer checks if the account belongs to an employer.
func (u *User) IsEmployer() bool {
	return u.UserType == kernel.UserTypeEmployer
}

// IsAdmin checks if the account belongs to a platform administrator.
func (u *User) IsAdmin() bool {
	return u.UserType == kernel.UserTypeAdmin
}

// UpdateContactInfo updates the user's mutable contact fields.
func (u *User) UpdateContactInfo(phone kernel.Phone) {
	if phone != "" {
		u.Phone = phone
	}
	u.UpdatedAt = time.Now()
}
