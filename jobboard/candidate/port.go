package candidate

import (
	"context"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Candidate, error)
	Update(ctx context.Context, candidate *Candidate) error
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Candidate], error)
	Exists(ctx context.Context, id kernel.CandidateID) (bool, error)
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id kernel.ResumeID) (*Resume, error)
	ListByCandidateID(ctx context.Context, candidateID kernel.CandidateID) ([]Resume, error)
	Delete(ctx context.Context, id kernel.ResumeID) error
	ClearPrimary(ctx context.Context, candidateID kernel.CandidateID) error
	CountByCandidateID(ctx context.Context, candidateID kernel.CandidateID) (int64, error)
}
