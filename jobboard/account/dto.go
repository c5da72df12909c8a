package account

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	UserType string `json:"user_type" validate:"required,oneof=candidate employer"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`

	// Profile payload for the chosen user type. Exactly one must be set.
	Candidate *CandidateProfilePayload `json:"candidate,omitempty"`
	Employer  *EmployerProfilePayload  `json:"employer,omitempty"`
}

type CandidateProfilePayload struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

type EmployerProfilePayload struct {
	CompanyName string `json:"company_name" validate:"required,max=200"`
	Website     string `json:"website" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

type UserResponse struct {
	ID              kernel.UserID   `json:"id"`
	Email           kernel.Email    `json:"email"`
	UserType        kernel.UserType `json:"user_type"`
	Phone           kernel.Phone    `json:"phone,omitempty"`
	IsEmailVerified bool            `json:"is_email_verified"`
	CreatedAt       time.Time       `json:"created_at"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		UserType:        u.UserType,
		Phone:           u.Phone,
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}
