// Package session provides the concrete CartStore implementations backing
// the per-session checkout state.
package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

type memoryEntry struct {
	session   *entity.CheckoutSession
	expiresAt time.Time
}

// memoryStore keeps sessions in process memory. Meant for local development
// and tests; state is lost on restart and not shared between instances.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
}

// NewMemoryStore creates an in-process CartStore with the given TTL.
func NewMemoryStore(ttl time.Duration) service.CartStore {
	return &memoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}
}

// Load returns the stored session, or nil when absent or expired. Expired
// entries are reaped lazily here; there is no background janitor.
func (s *memoryStore) Load(_ context.Context, sessionID string) (*entity.CheckoutSession, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.reapExpired(sessionID)

		return nil, nil
	}

	return cloneSession(entry.session), nil
}

// reapExpired deletes the entry only when it is still expired under the
// write lock. A Save may have refreshed it after the read lock was released.
func (s *memoryStore) reapExpired(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.entries[sessionID]; ok && time.Now().After(current.expiresAt) {
		delete(s.entries, sessionID)
	}
}

// Save stores a copy of the session and refreshes its expiry.
func (s *memoryStore) Save(_ context.Context, sessionID string, session *entity.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = &memoryEntry{
		session:   cloneSession(session),
		expiresAt: time.Now().Add(s.ttl),
	}

	return nil
}

// Delete drops the session.
func (s *memoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)

	return nil
}

// Close implements service.CartStore. Nothing to release.
func (s *memoryStore) Close() error {
	return nil
}

// cloneSession deep-copies the session so callers never share line slices
// with the stored state.
func cloneSession(src *entity.CheckoutSession) *entity.CheckoutSession {
	if src == nil {
		return nil
	}

	dst := &entity.CheckoutSession{
		Lines:     make([]*entity.CartLine, 0, len(src.Lines)),
		Discount:  src.Discount,
		CSRFToken: src.CSRFToken,
	}
	for _, line := range src.Lines {
		copied := *line
		dst.Lines = append(dst.Lines, &copied)
	}

	return dst
}
