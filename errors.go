package datefmt

// SentinelError is an error.
type SentinelError string

const (
	// ErrInvalidPattern indicates a pattern that cannot be compiled.
	ErrInvalidPattern = SentinelError("invalid date pattern")

	// ErrEmptyPattern indicates an empty pattern string.
	ErrEmptyPattern = SentinelError("empty date pattern")

	// ErrUnsupportedStore indicates a store that does not implement Walker.
	ErrUnsupportedStore = SentinelError("store does not support walking")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}
