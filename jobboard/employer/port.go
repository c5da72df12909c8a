package employer

import (
	"context"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type Repository interface {
	Create(ctx context.Context, employer *Employer) error
	GetByID(ctx context.Context, id kernel.EmployerID) (*Employer, error)
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Employer, error)
	Update(ctx context.Context, employer *Employer) error
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Employer], error)
	Exists(ctx context.Context, id kernel.EmployerID) (bool, error)
}
