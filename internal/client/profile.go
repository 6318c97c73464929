package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"equipshare/internal/domain"
)

// ProfileStore holds the caller's profile as an observable value. Consumers
// subscribe independently; each sees the current value on subscription and
// every replacement after it.
//
// A profile with a nil ID has not been persisted yet. Persist writes it to
// the server and publishes the server's response, which carries the assigned
// ID. Concurrent Persist calls for the same profile are coalesced into a
// single request so a double-submit cannot create duplicate writes.
type ProfileStore struct {
	c *Client

	mu      sync.Mutex
	current *domain.Profile
	loaded  bool
	subs    map[int]chan *domain.Profile
	nextSub int

	persist singleflight.Group
}

func NewProfileStore(c *Client) *ProfileStore {
	return &ProfileStore{
		c:    c,
		subs: make(map[int]chan *domain.Profile),
	}
}

// Current returns the last published profile, or nil if none has been
// loaded or set.
func (s *ProfileStore) Current() *domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set publishes a new profile value to all subscribers.
func (s *ProfileStore) Set(p *domain.Profile) {
	s.mu.Lock()
	s.current = p
	s.loaded = true
	for _, ch := range s.subs {
		// Drop the stale value if the subscriber has not drained it yet.
		select {
		case <-ch:
		default:
		}
		ch <- p
	}
	s.mu.Unlock()
}

// Subscribe returns a channel carrying profile updates and a cancel func.
// If a value has already been published the channel is primed with it.
func (s *ProfileStore) Subscribe() (<-chan *domain.Profile, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan *domain.Profile, 1)
	if s.loaded {
		ch <- s.current
	}
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
	return ch, cancel
}

// Load fetches the caller's profile from the server and publishes it. An
// account that has never saved a profile gets a skeleton with a nil ID.
func (s *ProfileStore) Load(ctx context.Context) (*domain.Profile, error) {
	var out domain.Profile
	if err := s.c.do(ctx, http.MethodGet, "/api/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	s.Set(&out)
	return &out, nil
}

// Persist writes the profile to the server and publishes the stored copy.
// Calls racing on the same principal share one round trip and one result.
func (s *ProfileStore) Persist(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	key := strconv.FormatInt(p.PID, 10)
	v, err, _ := s.persist.Do(key, func() (any, error) {
		var out domain.Profile
		if err := s.c.do(ctx, http.MethodPut, "/api/profile", nil, p, &out); err != nil {
			return nil, err
		}
		s.Set(&out)
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Profile), nil
}
