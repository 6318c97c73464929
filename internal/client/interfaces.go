package client

import (
	"context"

	"equipshare/internal/domain"
)

// ProfileSource supplies the caller's identity to the workflow.
type ProfileSource interface {
	Current() *domain.Profile
	Persist(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}

// Directory lists equipment for the workflow's cached view.
type Directory interface {
	List(ctx context.Context) ([]domain.Equipment, error)
}

// Ledger records and removes reservations.
type Ledger interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	Create(ctx context.Context, reservationType string, user domain.User, equipment domain.Equipment, notes string) (*domain.Reservation, error)
	Remove(ctx context.Context, id int64) error
}
