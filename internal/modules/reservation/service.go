package reservation

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"equipshare/internal/domain"
)

type Service struct {
	reservations ReservationRepository
	equipment    EquipmentDirectory
	perms        PermissionEnforcer
}

func NewService(reservations ReservationRepository, equipment EquipmentDirectory, perms PermissionEnforcer) *Service {
	return &Service{
		reservations: reservations,
		equipment:    equipment,
		perms:        perms,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

// ListByType reveals who holds equipment of a given type, so unlike the
// other listings it is permission-gated.
func (s *Service) ListByType(ctx context.Context, role domain.Role, reservationType string) ([]domain.Reservation, error) {
	if err := s.perms.Enforce(ctx, role, "reservation.filter_type", "reservation/"+reservationType); err != nil {
		return nil, err
	}
	return s.reservations.ListByType(ctx, reservationType)
}

func (s *Service) ListByUser(ctx context.Context, pid int64) ([]domain.Reservation, error) {
	return s.reservations.ListByUserPID(ctx, pid)
}

// Get returns (nil, nil) for an unknown id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// Create binds equipment to a user and checks the equipment out. The user
// snapshot must carry a persisted identity; an unpersisted profile cannot
// hold a reservation. The insert happens before the status flip so a lost
// race leaves the item's status untouched.
func (s *Service) Create(ctx context.Context, res domain.Reservation) (*domain.Reservation, error) {
	if res.User.ID == nil {
		return nil, ErrInvalidUser
	}

	e, err := s.equipment.Get(ctx, res.Equipment.ID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEquipmentNotFound
	}

	if err := s.reservations.Create(ctx, &res); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyReserved
		}
		return nil, err
	}

	if err := s.equipment.Checkout(ctx, res.Equipment.ID); err != nil {
		return nil, err
	}

	res.Equipment = *e
	res.Equipment.Status = domain.StatusUnavailable
	return &res, nil
}

// Remove releases a reservation and checks the equipment back in. Removing
// an id that is already gone is success.
func (s *Service) Remove(ctx context.Context, id int64) error {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}

	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}

	return s.equipment.Checkin(ctx, res.Equipment.ID)
}

// isUniqueViolation recognizes the one-active-reservation-per-equipment
// index firing on either backend: SQLSTATE 23505 from postgres, the
// constraint message from sqlite.
func isUniqueViolation(err error) bool {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
