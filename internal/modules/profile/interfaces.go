package profile

import (
	"context"

	"equipshare/internal/domain"
)

// UserRepository is the slice of user storage the profile module needs.
type UserRepository interface {
	GetByPID(ctx context.Context, pid int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
}
