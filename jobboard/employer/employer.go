package employer

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type Employer struct {
	ID            kernel.EmployerID  `db:"id" json:"id"`
	UserID        kernel.UserID      `db:"user_id" json:"user_id"`
	CompanyName   kernel.CompanyName `db:"company_name" json:"company_name"`
	CompanyLogo   kernel.BucketURL   `db:"company_logo" json:"company_logo,omitempty"`
	Website       string             `db:"website" json:"website,omitempty"`
	Description   string             `db:"description" json:"description,omitempty"`
	Industry      string             `db:"industry" json:"industry,omitempty"`
	CompanySize   string             `db:"company_size" json:"company_size,omitempty"`
	FoundedYear   *int               `db:"founded_year" json:"founded_year,omitempty"`
	Location      string             `db:"location" json:"location,omitempty"`
	IsVerified    bool               `db:"is_verified" json:"is_verified"`
	CreatedAt     time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// ApplyUpdate applies the non-nil fields of the request to the profile.
func (e *Employer) ApplyUpdate(req UpdateEmployerRequest) {
	if req.CompanyName != nil {
		e.CompanyName = kernel.CompanyName(*req.CompanyName)
	}
	if req.Website != nil {
		e.Website = *req.Website
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Industry != nil {
		e.Industry = *req.Industry
	}
	if req.CompanySize != nil {
		e.CompanySize = *req.CompanySize
	}
	if req.FoundedYear != nil {
		e.FoundedYear = req.FoundedYear
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	e.UpdatedAt = time.Now()
}
