package datefmt

import "sync"

var (
	_ Store  = &SyncMapStore{}
	_ Walker = &SyncMapStore{}
)

// SyncMapStore is an in-memory formatter store based on a standard sync.Map.
//
// It fits the append-only access profile of the cache, entries are written
// once and read many times.
type SyncMapStore struct {
	data sync.Map
}

// NewSyncMapStore creates an instance of in-memory formatter store.
func NewSyncMapStore() *SyncMapStore {
	return &SyncMapStore{}
}

// Load returns a stored formatter.
func (s *SyncMapStore) Load(pattern string) (*Formatter, bool) {
	v, ok := s.data.Load(pattern)
	if !ok {
		return nil, false
	}

	return v.(*Formatter), true
}

// Store saves a formatter under a pattern.
func (s *SyncMapStore) Store(pattern string, f *Formatter) {
	s.data.Store(pattern, f)
}

// Len returns number of stored formatters.
func (s *SyncMapStore) Len() int {
	cnt := 0

	s.data.Range(func(_, _ interface{}) bool {
		cnt++

		return true
	})

	return cnt
}

// Walk walks stored formatters.
func (s *SyncMapStore) Walk(walkFn func(pattern string, f *Formatter) error) (int, error) {
	n := 0

	var resultErr error

	s.data.Range(func(key, value interface{}) bool {
		err := walkFn(key.(string), value.(*Formatter))
		if err != nil {
			resultErr = err

			return false
		}

		n++

		return true
	})

	return n, resultErr
}
