package datefmt

import "github.com/puzpuzpuz/xsync"

var (
	_ Store  = &XsyncStore{}
	_ Walker = &XsyncStore{}
)

// XsyncStore is an in-memory formatter store based on a concurrent map
// from github.com/puzpuzpuz/xsync.
//
// Compared to SyncMapStore it avoids interface conversion overhead of
// sync.Map read path under high contention.
type XsyncStore struct {
	data *xsync.Map
}

// NewXsyncStore creates an instance of in-memory formatter store.
func NewXsyncStore() *XsyncStore {
	return &XsyncStore{
		data: xsync.NewMap(),
	}
}

// Load returns a stored formatter.
func (s *XsyncStore) Load(pattern string) (*Formatter, bool) {
	v, ok := s.data.Load(pattern)
	if !ok {
		return nil, false
	}

	return v.(*Formatter), true
}

// Store saves a formatter under a pattern.
func (s *XsyncStore) Store(pattern string, f *Formatter) {
	s.data.Store(pattern, f)
}

// Len returns number of stored formatters.
func (s *XsyncStore) Len() int {
	cnt := 0

	s.data.Range(func(_ string, _ interface{}) bool {
		cnt++

		return true
	})

	return cnt
}

// Walk walks stored formatters.
func (s *XsyncStore) Walk(walkFn func(pattern string, f *Formatter) error) (int, error) {
	n := 0

	var resultErr error

	s.data.Range(func(key string, value interface{}) bool {
		err := walkFn(key, value.(*Formatter))
		if err != nil {
			resultErr = err

			return false
		}

		n++

		return true
	})

	return n, resultErr
}
