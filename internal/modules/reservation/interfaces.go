package reservation

import (
	"context"

	"equipshare/internal/domain"
)

// ReservationRepository defines the storage operations this module uses.
type ReservationRepository interface {
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByType(ctx context.Context, reservationType string) ([]domain.Reservation, error)
	ListByUserPID(ctx context.Context, pid int64) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Create(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
}

// PermissionEnforcer gates the type-filtered listing, which exposes other
// users' reservations.
type PermissionEnforcer interface {
	Enforce(ctx context.Context, role domain.Role, action, scope string) error
}

// EquipmentDirectory is the slice of the equipment module this module needs:
// existence checks plus the availability flips that accompany a
// reservation's lifecycle.
type EquipmentDirectory interface {
	Get(ctx context.Context, id int64) (*domain.Equipment, error)
	Checkout(ctx context.Context, id int64) error
	Checkin(ctx context.Context, id int64) error
}
