package candidate

import (
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

// MaxResumeSize is the upload limit for resume files.
const MaxResumeSize = 5 * 1024 * 1024

// AllowedResumeTypes are the content types accepted for resume uploads.
var AllowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type Resume struct {
	ID          kernel.ResumeID    `db:"id" json:"id"`
	CandidateID kernel.CandidateID `db:"candidate_id" json:"candidate_id"`
	Title       string             `db:"title" json:"title"`
	FileURL     kernel.BucketURL   `db:"file_url" json:"file_url"`
	FileName    string             `db:"file_name" json:"file_name"`
	FileSize    int64              `db:"file_size" json:"file_size"`
	IsPrimary   bool               `db:"is_primary" json:"is_primary"`
	UploadedAt  time.Time          `db:"uploaded_at" json:"uploaded_at"`
}

// BelongsTo reports whether the resume is owned by the given candidate.
func (r *Resume) BelongsTo(candidateID kernel.CandidateID) bool {
	return r.CandidateID == candidateID
}
