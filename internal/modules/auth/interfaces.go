package auth

import (
	"context"

	"equipshare/internal/domain"
)

// AccountRepository covers only the lookup the login path needs.
type AccountRepository interface {
	GetByPID(ctx context.Context, pid int64) (*domain.Account, error)
}

type jwtService interface {
	GenerateToken(pid int64, role string) (string, error)
}
