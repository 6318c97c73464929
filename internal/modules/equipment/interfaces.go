package equipment

import (
	"context"

	"equipshare/internal/domain"
)

// EquipmentRepository defines the storage operations this module uses.
type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	ListByStatus(ctx context.Context, status int) ([]domain.Equipment, error)
	ListByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, e *domain.Equipment) error
	Update(ctx context.Context, e *domain.Equipment) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status int) error
	Delete(ctx context.Context, id int64) error
}

// PermissionEnforcer gates every mutation before it reaches storage.
type PermissionEnforcer interface {
	Enforce(ctx context.Context, role domain.Role, action, scope string) error
}

// EventPublisher receives availability events for connected watchers. May be
// nil when nobody is watching.
type EventPublisher interface {
	Publish(event Event)
}
