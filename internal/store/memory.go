package store

// MemoryStore keeps both state classes in plain maps. It backs tests and
// the instance-scoped class in production. Callers serialize access; the
// ledgers hold their own mutex around every call.
type MemoryStore struct {
	classes [2]map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		classes: [2]map[string][]byte{
			Instance:   make(map[string][]byte),
			Persistent: make(map[string][]byte),
		},
	}
}

func (s *MemoryStore) Get(c Class, key string) ([]byte, bool) {
	v, ok := s.classes[c][key]
	return v, ok
}

func (s *MemoryStore) Has(c Class, key string) bool {
	_, ok := s.classes[c][key]
	return ok
}

func (s *MemoryStore) Apply(writes []Write) error {
	for _, w := range writes {
		s.classes[w.Class][w.Key] = w.Value
	}
	return nil
}
