package equipment

import (
	"context"
	"fmt"

	"equipshare/internal/domain"
)

type Service struct {
	equipment EquipmentRepository
	perms     PermissionEnforcer
	events    EventPublisher
}

func NewService(equipment EquipmentRepository, perms PermissionEnforcer, events EventPublisher) *Service {
	return &Service{
		equipment: equipment,
		perms:     perms,
		events:    events,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Equipment, error) {
	return s.equipment.List(ctx)
}

func (s *Service) ListByStatus(ctx context.Context, status int) ([]domain.Equipment, error) {
	return s.equipment.ListByStatus(ctx, status)
}

func (s *Service) ListByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error) {
	return s.equipment.ListByType(ctx, equipmentType)
}

// Get returns (nil, nil) for an unknown id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

// Add creates an equipment item. New items are always Available regardless
// of the status in the request.
func (s *Service) Add(ctx context.Context, role domain.Role, e domain.Equipment) (*domain.Equipment, error) {
	if err := s.perms.Enforce(ctx, role, "equipment.add", "equipment/*"); err != nil {
		return nil, err
	}
	if e.Name == "" || e.Type == "" {
		return nil, ErrValidation
	}

	e.ID = 0
	e.Status = domain.StatusAvailable
	if err := s.equipment.Create(ctx, &e); err != nil {
		return nil, err
	}

	s.publish(Event{Event: "created", Equipment: e})
	return &e, nil
}

// Update replaces the mutable fields. Status is forced back to Available on
// every update; callers relying on status must re-list afterwards. Returns
// (nil, nil) when the item does not exist.
func (s *Service) Update(ctx context.Context, role domain.Role, e domain.Equipment) (*domain.Equipment, error) {
	if err := s.perms.Enforce(ctx, role, "equipment.update", fmt.Sprintf("equipment/%d", e.ID)); err != nil {
		return nil, err
	}
	if e.Name == "" || e.Type == "" {
		return nil, ErrValidation
	}

	e.Status = domain.StatusAvailable
	found, err := s.equipment.Update(ctx, &e)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	s.publish(Event{Event: "updated", Equipment: e})
	return &e, nil
}

// Remove deletes by id. Removing an item that is already gone is success
// from the caller's perspective.
func (s *Service) Remove(ctx context.Context, role domain.Role, id int64) error {
	if err := s.perms.Enforce(ctx, role, "equipment.delete", fmt.Sprintf("equipment/%d", id)); err != nil {
		return err
	}

	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return nil
	}

	if err := s.equipment.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(Event{Event: "deleted", Equipment: *e})
	return nil
}

// Checkout marks an item Unavailable when a reservation attaches to it.
// Called by the reservation workflow, never from a handler.
func (s *Service) Checkout(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, domain.StatusUnavailable, "checkout")
}

// Checkin marks an item Available again when its reservation is released.
func (s *Service) Checkin(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, domain.StatusAvailable, "checkin")
}

func (s *Service) setStatus(ctx context.Context, id int64, status int, event string) error {
	if err := s.equipment.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	if s.events != nil {
		e, err := s.equipment.GetByID(ctx, id)
		if err == nil && e != nil {
			s.publish(Event{Event: event, Equipment: *e})
		}
	}
	return nil
}

func (s *Service) publish(evt Event) {
	if s.events != nil {
		s.events.Publish(evt)
	}
}
