package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrSessionNotFound = errors.New("form session not found")

// SessionRepository keeps form state in memory. Entries idle longer than the
// TTL are removed by Sweep.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.FormState
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]model.FormState),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save inserts or replaces a form state and stamps UpdatedAt.
func (r *SessionRepository) Save(ctx context.Context, state *model.FormState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state.UpdatedAt = r.now().UTC()
	r.sessions[state.ID] = *state
	return nil
}

// GetByID retrieves a form state by its ID.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*model.FormState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &state, nil
}

// Delete removes a form state.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many were removed.
func (r *SessionRepository) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().UTC().Add(-r.ttl)
	var removed int
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (r *SessionRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				slog.Info("expired form sessions removed", "count", n)
			}
		}
	}
}
