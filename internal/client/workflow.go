package client

import (
	"context"
	"errors"
	"sync"

	"equipshare/internal/domain"
)

// ErrInvalidProfile is returned by Reserve when no profile is available for
// the caller.
var ErrInvalidProfile = errors.New("no profile available for reservation")

// Workflow drives the reservation use cases and keeps cached listings for
// display. Listings are replaced wholesale on refresh, never patched.
type Workflow struct {
	profiles     ProfileSource
	equipment    Directory
	reservations Ledger

	mu           sync.RWMutex
	equipmentCache []domain.Equipment
	reservationCache []domain.Reservation
}

func NewWorkflow(profiles ProfileSource, equipment Directory, reservations Ledger) *Workflow {
	return &Workflow{
		profiles:     profiles,
		equipment:    equipment,
		reservations: reservations,
	}
}

// Reserve creates a reservation for the given equipment on behalf of the
// current profile. An unpersisted profile is persisted first; the stored
// identity, never the unpersisted one, goes into the reservation. On success
// the equipment listing is refreshed; the reservation stands even if that
// refresh fails, and the refresh error is reported alongside it.
func (w *Workflow) Reserve(ctx context.Context, equipment domain.Equipment) (*domain.Reservation, error) {
	profile := w.profiles.Current()
	if profile == nil {
		return nil, ErrInvalidProfile
	}

	if profile.ID == nil {
		persisted, err := w.profiles.Persist(ctx, *profile)
		if err != nil {
			return nil, err
		}
		profile = persisted
	}

	user := domain.User{
		ID:        profile.ID,
		PID:       profile.PID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}

	created, err := w.reservations.Create(ctx, equipment.Type, user, equipment, equipment.Notes)
	if err != nil {
		return nil, err
	}

	if err := w.RefreshEquipment(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Release removes a reservation and refreshes the reservation listing. The
// listing is left untouched when the removal fails.
func (w *Workflow) Release(ctx context.Context, reservationID int64) error {
	if err := w.reservations.Remove(ctx, reservationID); err != nil {
		return err
	}
	return w.RefreshReservations(ctx)
}

// RefreshEquipment replaces the cached equipment listing with the server's.
func (w *Workflow) RefreshEquipment(ctx context.Context) error {
	list, err := w.equipment.List(ctx)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.equipmentCache = list
	w.mu.Unlock()
	return nil
}

// RefreshReservations replaces the cached reservation listing.
func (w *Workflow) RefreshReservations(ctx context.Context) error {
	list, err := w.reservations.List(ctx)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.reservationCache = list
	w.mu.Unlock()
	return nil
}

// EquipmentList returns a snapshot of the cached equipment listing.
func (w *Workflow) EquipmentList() []domain.Equipment {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]domain.Equipment, len(w.equipmentCache))
	copy(out, w.equipmentCache)
	return out
}

// ReservationList returns a snapshot of the cached reservation listing.
func (w *Workflow) ReservationList() []domain.Reservation {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]domain.Reservation, len(w.reservationCache))
	copy(out, w.reservationCache)
	return out
}
