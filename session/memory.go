package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for tests and single-instance
// development runs without Redis. Expiry is checked lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(ctx context.Context, prefix string, ttl time.Duration, v any) (string, error) {
	token := uuid.NewString()
	if err := s.Save(ctx, prefix, token, ttl, v); err != nil {
		return "", err
	}
	return token, nil
}

func (s *MemoryStore) Save(_ context.Context, prefix, token string, ttl time.Duration, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[prefix+token] = memoryEntry{raw: raw, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) lookup(key string, remove bool) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, false
	}
	if remove {
		delete(s.entries, key)
	}
	return entry.raw, true
}

func (s *MemoryStore) Get(_ context.Context, prefix, token string, v any) error {
	raw, ok := s.lookup(prefix+token, false)
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (s *MemoryStore) Take(_ context.Context, prefix, token string, v any) error {
	raw, ok := s.lookup(prefix+token, true)
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, v)
}

func (s *MemoryStore) Delete(_ context.Context, prefix, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, prefix+token)
	return nil
}

func (s *MemoryStore) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if ok && time.Now().Before(entry.expiresAt) {
		return false, nil
	}
	s.entries[key] = memoryEntry{raw: []byte("1"), expiresAt: time.Now().Add(ttl)}
	return true, nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
