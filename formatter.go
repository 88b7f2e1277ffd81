package datefmt

import "time"

// Formatter renders time values according to a bound pattern.
//
// It is read-only after construction and safe for concurrent use.
// Please use Compile to create an instance.
type Formatter struct {
	pattern string
	steps   []step
}

// Compile builds a Formatter for a pattern with optional locale (only first argument is used).
//
// Compilation is the expensive step, the resulting Formatter is meant to be reused.
func Compile(pattern string, locale ...Locale) (*Formatter, error) {
	l := Locale{}

	if len(locale) >= 1 {
		l = locale[0]
	}

	l.applyDefaults()

	steps, err := compilePattern(pattern, l)
	if err != nil {
		return nil, err
	}

	return &Formatter{
		pattern: pattern,
		steps:   steps,
	}, nil
}

// Format renders t as a string.
//
// Result is a pure function of the bound pattern and t.
func (f *Formatter) Format(t time.Time) string {
	return string(f.AppendFormat(make([]byte, 0, 32), t))
}

// AppendFormat renders t into buf to avoid allocation on hot paths.
func (f *Formatter) AppendFormat(buf []byte, t time.Time) []byte {
	for _, st := range f.steps {
		buf = st(buf, t)
	}

	return buf
}

// Pattern returns the bound pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// String implements fmt.Stringer.
func (f *Formatter) String() string {
	return f.pattern
}
