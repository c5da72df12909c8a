package candidate

import (
	"fmt"
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type Candidate struct {
	ID             kernel.CandidateID `db:"id" json:"id"`
	UserID         kernel.UserID      `db:"user_id" json:"user_id"`
	FirstName      kernel.FirstName   `db:"first_name" json:"first_name"`
	LastName       kernel.LastName    `db:"last_name" json:"last_name"`
	Headline       string             `db:"headline" json:"headline,omitempty"`
	Bio            string             `db:"bio" json:"bio,omitempty"`
	Skills         string             `db:"skills" json:"skills,omitempty"`
	ExperienceYears int               `db:"experience_years" json:"experience_years"`
	Location       string             `db:"location" json:"location,omitempty"`
	LinkedinURL    string             `db:"linkedin_url" json:"linkedin_url,omitempty"`
	PortfolioURL   string             `db:"portfolio_url" json:"portfolio_url,omitempty"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// FullName returns the candidate's display name.
func (c *Candidate) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// ApplyUpdate applies the non-nil fields of the request to the profile.
func (c *Candidate) ApplyUpdate(req UpdateCandidateRequest) {
	if req.FirstName != nil {
		c.FirstName = kernel.FirstName(*req.FirstName)
	}
	if req.LastName != nil {
		c.LastName = kernel.LastName(*req.LastName)
	}
	if req.Headline != nil {
		c.Headline = *req.Headline
	}
	if req.Bio != nil {
		c.Bio = *req.Bio
	}
	if req.Skills != nil {
		c.Skills = *req.Skills
	}
	if req.ExperienceYears != nil {
		c.ExperienceYears = *req.ExperienceYears
	}
	if req.Location != nil {
		c.Location = *req.Location
	}
	if req.LinkedinURL != nil {
		c.LinkedinURL = *req.LinkedinURL
	}
	if req.PortfolioURL != nil {
		c.PortfolioURL = *req.PortfolioURL
	}
	c.UpdatedAt = time.Now()
}
