package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"equipshare/internal/domain"
)

// EquipmentService is the remote equipment directory. Listing variants map to
// dedicated endpoints; the client never filters or derives listings locally.
type EquipmentService struct {
	c *Client
}

func (s *EquipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	var out []domain.Equipment
	if err := s.c.do(ctx, http.MethodGet, "/api/equipment", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStatus asks the server for equipment in the given status. The server
// owns the filter; the result is returned exactly as received.
func (s *EquipmentService) ListByStatus(ctx context.Context, status int) ([]domain.Equipment, error) {
	q := url.Values{"status": {strconv.Itoa(status)}}
	var out []domain.Equipment
	if err := s.c.do(ctx, http.MethodGet, "/api/equipment/status/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EquipmentService) ListByType(ctx context.Context, equipmentType string) ([]domain.Equipment, error) {
	q := url.Values{"type": {equipmentType}}
	var out []domain.Equipment
	if err := s.c.do(ctx, http.MethodGet, "/api/equipment/type/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *EquipmentService) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	var out domain.Equipment
	if err := s.c.do(ctx, http.MethodGet, "/api/equipment/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EquipmentService) Add(ctx context.Context, name, equipmentType, notes string) (*domain.Equipment, error) {
	body := domain.Equipment{
		Name:   name,
		Type:   equipmentType,
		Status: domain.StatusAvailable,
		Notes:  notes,
	}
	var out domain.Equipment
	if err := s.c.do(ctx, http.MethodPost, "/api/equipment", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update submits the full record. Status is always sent as Available; the
// server applies the same rule regardless, so the field is not editable here.
func (s *EquipmentService) Update(ctx context.Context, id int64, name, equipmentType, notes string) (*domain.Equipment, error) {
	body := domain.Equipment{
		ID:     id,
		Name:   name,
		Type:   equipmentType,
		Status: domain.StatusAvailable,
		Notes:  notes,
	}
	var out domain.Equipment
	if err := s.c.do(ctx, http.MethodPut, "/api/equipment", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *EquipmentService) Remove(ctx context.Context, id int64) error {
	q := url.Values{"equipment_id": {strconv.FormatInt(id, 10)}}
	return s.c.do(ctx, http.MethodDelete, "/api/equipment", q, nil, nil)
}
