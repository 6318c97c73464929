package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"equipshare/internal/domain"
)

// ReservationService is the remote reservation ledger.
type ReservationService struct {
	c *Client
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := s.c.do(ctx, http.MethodGet, "/api/reservation", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByType is refused by the server unless the caller's role may browse
// other users' reservations.
func (s *ReservationService) ListByType(ctx context.Context, reservationType string) ([]domain.Reservation, error) {
	q := url.Values{"type": {reservationType}}
	var out []domain.Reservation
	if err := s.c.do(ctx, http.MethodGet, "/api/reservation/type/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReservationService) ListByUser(ctx context.Context, pid int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	if err := s.c.do(ctx, http.MethodGet, "/api/reservation/user/"+strconv.FormatInt(pid, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create submits a reservation composed from a persisted user identity and
// the chosen equipment. The server assigns the reservation ID.
func (s *ReservationService) Create(ctx context.Context, reservationType string, user domain.User, equipment domain.Equipment, notes string) (*domain.Reservation, error) {
	body := domain.Reservation{
		Type:      reservationType,
		User:      user,
		Equipment: equipment,
		Notes:     notes,
	}
	var out domain.Reservation
	if err := s.c.do(ctx, http.MethodPost, "/api/reservation", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ReservationService) Remove(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/api/reservation/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (s *ReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := s.c.do(ctx, http.MethodGet, "/api/reservation/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
