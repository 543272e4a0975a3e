// pkg/memcache/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out token ids until they would have
// expired anyway.
type RevokedTokenStore interface {
	Revoke(tokenID string, until time.Time)

	// IsRevoked reports whether the token id was revoked and has not yet expired.
	IsRevoked(tokenID string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[tokenID] = until
	s.pruneLocked()
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	until, ok := s.data[tokenID]
	return ok && s.now().Before(until)
}

// pruneLocked drops entries whose token has expired; caller holds mu.
func (s *RevokedTokens) pruneLocked() {
	now := s.now()
	for id, until := range s.data {
		if !now.Before(until) {
			delete(s.data, id)
		}
	}
}
