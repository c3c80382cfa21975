package store

import "sync"

// rwlockStore is the thread-safe engine: a map guarded by an RWMutex.
// Reads proceed concurrently; writes are exclusive.
type rwlockStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func newRWLockStore() *rwlockStore {
	return &rwlockStore{data: make(map[string]string)}
}

func (s *rwlockStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *rwlockStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (s *rwlockStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	delete(s.data, key)
	return ok
}

func (s *rwlockStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *rwlockStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
