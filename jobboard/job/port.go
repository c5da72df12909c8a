package job

import (
	"context"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)
	GetBySlug(ctx context.Context, slug kernel.JobSlug) (*JobWithCompany, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id kernel.JobID) error
	List(ctx context.Context, filters ListFilters, pagination kernel.PaginationOptions) (*kernel.Paginated[JobWithCompany], error)
	ListByEmployerID(ctx context.Context, employerID kernel.EmployerID, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)
	IncrementViews(ctx context.Context, id kernel.JobID) error
	Exists(ctx context.Context, id kernel.JobID) (bool, error)
	CountByEmployerID(ctx context.Context, employerID kernel.EmployerID, activeOnly bool) (int64, error)
}
