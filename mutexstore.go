package datefmt

import "sync"

var (
	_ Store  = &RWMutexStore{}
	_ Walker = &RWMutexStore{}
)

// RWMutexStore is an in-memory formatter store guarded by a read-write mutex.
type RWMutexStore struct {
	mu   sync.RWMutex
	data map[string]*Formatter
}

// NewRWMutexStore creates an instance of in-memory formatter store.
func NewRWMutexStore() *RWMutexStore {
	return &RWMutexStore{
		data: map[string]*Formatter{},
	}
}

// Load returns a stored formatter.
func (s *RWMutexStore) Load(pattern string) (*Formatter, bool) {
	s.mu.RLock()
	f, ok := s.data[pattern]
	s.mu.RUnlock()

	return f, ok
}

// Store saves a formatter under a pattern.
func (s *RWMutexStore) Store(pattern string, f *Formatter) {
	s.mu.Lock()
	s.data[pattern] = f
	s.mu.Unlock()
}

// Len returns number of stored formatters.
func (s *RWMutexStore) Len() int {
	s.mu.RLock()
	cnt := len(s.data)
	s.mu.RUnlock()

	return cnt
}

// Walk walks stored formatters.
func (s *RWMutexStore) Walk(walkFn func(pattern string, f *Formatter) error) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0

	for p, f := range s.data {
		s.mu.RUnlock()

		err := walkFn(p, f)

		s.mu.RLock()

		if err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}
