package datefmt

import "context"

// Getter resolves a pattern to a ready to use Formatter.
type Getter interface {
	// Get returns a Formatter for a pattern.
	Get(ctx context.Context, pattern string) (*Formatter, error)
}

// Store keeps compiled formatters.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns a stored formatter.
	Load(pattern string) (*Formatter, bool)

	// Store saves a formatter under a pattern.
	Store(pattern string, f *Formatter)

	// Len returns number of stored formatters.
	Len() int
}

// Walker calls function for every stored formatter and fails on first error
// returned by that function.
//
// Count of processed entries is returned.
type Walker interface {
	Walk(func(pattern string, f *Formatter) error) (int, error)
}
