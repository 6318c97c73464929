package profile

import (
	"context"

	"equipshare/internal/domain"
)

// Service resolves the authenticated principal's profile. Authentication and
// persistence are deliberately decoupled: a principal can hold a valid token
// while their profile row does not exist yet. Get surfaces that state as a
// profile with a nil id; Put materializes the row on first write.
type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// Get returns the stored profile, or an unpersisted skeleton (nil id) when
// the principal has never been saved.
func (s *Service) Get(ctx context.Context, pid int64) (*domain.Profile, error) {
	u, err := s.users.GetByPID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return &domain.Profile{ID: nil, PID: pid}, nil
	}
	return u, nil
}

// Put creates the profile row on first write, updates it afterwards, and
// returns the fully-identified record either way. The pid always comes from
// the authenticated principal, never from the request body.
func (s *Service) Put(ctx context.Context, pid int64, p domain.Profile) (*domain.Profile, error) {
	p.PID = pid

	existing, err := s.users.GetByPID(ctx, pid)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		p.ID = nil
		if err := s.users.Create(ctx, &p); err != nil {
			return nil, err
		}
		return &p, nil
	}

	p.ID = existing.ID
	if err := s.users.Update(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
