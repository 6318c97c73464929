package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equipshare/internal/domain"
)

func TestProfileLoadUnsavedAccount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":null,"pid":1001,"first_name":"","last_name":""}`))
	})

	c := newTestClient(t, mux)

	p, err := c.Profile.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p.ID)
	assert.Equal(t, int64(1001), p.PID)
	assert.Same(t, p, c.Profile.Current())
}

func TestProfileSubscribeSeesCurrentAndUpdates(t *testing.T) {
	c, err := New("http://localhost")
	require.NoError(t, err)

	first := &domain.Profile{PID: 1001, FirstName: "A"}
	c.Profile.Set(first)

	ch, cancel := c.Profile.Subscribe()
	defer cancel()

	assert.Same(t, first, <-ch)

	second := &domain.Profile{PID: 1001, FirstName: "A", LastName: "B"}
	c.Profile.Set(second)
	assert.Same(t, second, <-ch)
}

func TestProfileSubscribersAreIndependent(t *testing.T) {
	c, err := New("http://localhost")
	require.NoError(t, err)

	chA, cancelA := c.Profile.Subscribe()
	defer cancelA()
	chB, cancelB := c.Profile.Subscribe()

	p := &domain.Profile{PID: 1001}
	c.Profile.Set(p)
	assert.Same(t, p, <-chA)
	assert.Same(t, p, <-chB)

	cancelB()
	c.Profile.Set(&domain.Profile{PID: 1002})
	assert.Equal(t, int64(1002), (<-chA).PID)
}

func TestProfilePersistCoalescesConcurrentWrites(t *testing.T) {
	var hits atomic.Int64
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/profile", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		var in domain.Profile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		id := int64(42)
		in.ID = &id
		_ = json.NewEncoder(w).Encode(in)
	})

	c := newTestClient(t, mux)
	profile := domain.Profile{PID: 1001, FirstName: "A", LastName: "B"}

	var wg sync.WaitGroup
	results := make([]*domain.Profile, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := c.Profile.Persist(context.Background(), profile)
			assert.NoError(t, err)
			results[i] = p
		}(i)
	}

	// Let both goroutines reach the in-flight request before it completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), hits.Load())
	for _, p := range results {
		require.NotNil(t, p)
		require.NotNil(t, p.ID)
		assert.Equal(t, int64(42), *p.ID)
	}
	current := c.Profile.Current()
	require.NotNil(t, current)
	require.NotNil(t, current.ID)
	assert.Equal(t, int64(42), *current.ID)
}
