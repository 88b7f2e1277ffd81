package datefmt

import "context"

// Uncached is a Getter that compiles a pattern on every call.
//
// It serves as a baseline to measure construction cost avoided by Cache.
type Uncached struct {
	// Locale provides names for textual pattern fields, English by default.
	Locale Locale
}

var _ Getter = Uncached{}

// Get compiles a formatter without caching.
func (u Uncached) Get(ctx context.Context, pattern string) (*Formatter, error) {
	return Compile(pattern, u.Locale)
}
