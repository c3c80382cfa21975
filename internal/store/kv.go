package store

// kvStore is the plain map engine. It is not safe for concurrent use and
// exists for single-owner setups and benchmarks against the rwlock engine.
type kvStore struct {
	data map[string]string
}

func newKVStore() *kvStore {
	return &kvStore{data: make(map[string]string)}
}

func (s *kvStore) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *kvStore) Set(key, value string) {
	s.data[key] = value
}

func (s *kvStore) Delete(key string) bool {
	_, ok := s.data[key]
	delete(s.data, key)
	return ok
}

func (s *kvStore) Len() int {
	return len(s.data)
}

func (s *kvStore) Snapshot() map[string]string {
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
