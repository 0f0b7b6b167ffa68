package store

import (
	"context"
	"sync"

	"github.com/instalink/backend/internal/apperr"
	"github.com/instalink/backend/internal/models"
)

// MemoryStore keeps accounts in a map, for tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]models.InstagramAccount
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]models.InstagramAccount)}
}

func (s *MemoryStore) Upsert(_ context.Context, account models.InstagramAccount) (models.InstagramAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.UserID] = account
	return account, nil
}

func (s *MemoryStore) Get(_ context.Context, userID string) (models.InstagramAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[userID]
	if !ok {
		return models.InstagramAccount{}, &apperr.NotFoundError{Detail: "Instagram account not found for this user"}
	}
	return account, nil
}

// Len reports the number of stored rows.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
