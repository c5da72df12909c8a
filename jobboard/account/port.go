package account

import (
	"context"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id kernel.UserID, passwordHash string) error
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}
