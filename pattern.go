package datefmt

import (
	"fmt"
	"strconv"
	"time"
)

// step renders a single pattern field or literal.
type step func(buf []byte, t time.Time) []byte

// compilePattern parses a CLDR-style pattern into a sequence of render steps.
//
// Pattern letters: y Y M d D E H h m s S a.
// Text in single quotes is literal, '' stands for a single quote.
// Non-letter bytes are literals.
func compilePattern(pattern string, l Locale) ([]step, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	var (
		steps []step
		lit   []byte
	)

	flush := func() {
		if len(lit) == 0 {
			return
		}

		s := string(lit)
		steps = append(steps, func(buf []byte, _ time.Time) []byte {
			return append(buf, s...)
		})

		lit = lit[:0]
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]

		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit = append(lit, '\'')
				i += 2

				continue
			}

			j := i + 1
			closed := false

			for j < len(pattern) {
				if pattern[j] != '\'' {
					lit = append(lit, pattern[j])
					j++

					continue
				}

				// Escaped quote inside quoted text.
				if j+1 < len(pattern) && pattern[j+1] == '\'' {
					lit = append(lit, '\'')
					j += 2

					continue
				}

				closed = true

				break
			}

			if !closed {
				return nil, fmt.Errorf("%w: unterminated quote at position %d", ErrInvalidPattern, i)
			}

			i = j + 1
		case isPatternLetter(c):
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c {
				n++
			}

			st, ok := fieldStep(c, n, l)
			if !ok {
				return nil, fmt.Errorf("%w: unsupported pattern letter %q at position %d", ErrInvalidPattern, rune(c), i)
			}

			flush()

			steps = append(steps, st)
			i += n
		default:
			lit = append(lit, c)
			i++
		}
	}

	flush()

	return steps, nil
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// fieldStep maps a pattern letter run to its render step.
func fieldStep(c byte, n int, l Locale) (step, bool) {
	switch c {
	case 'y':
		if n == 2 {
			return func(buf []byte, t time.Time) []byte {
				y := t.Year() % 100
				if y < 0 {
					y = -y
				}

				return appendPadded(buf, y, 2)
			}, true
		}

		return func(buf []byte, t time.Time) []byte {
			return appendPadded(buf, t.Year(), n)
		}, true
	case 'Y':
		if n == 2 {
			return func(buf []byte, t time.Time) []byte {
				y, _ := t.ISOWeek()
				if y < 0 {
					y = -y
				}

				return appendPadded(buf, y%100, 2)
			}, true
		}

		return func(buf []byte, t time.Time) []byte {
			y, _ := t.ISOWeek()

			return appendPadded(buf, y, n)
		}, true
	case 'M':
		switch {
		case n <= 2:
			return func(buf []byte, t time.Time) []byte {
				return appendPadded(buf, int(t.Month()), n)
			}, true
		case n == 3:
			return func(buf []byte, t time.Time) []byte {
				return append(buf, l.MonthsAbbrev[t.Month()-1]...)
			}, true
		default:
			return func(buf []byte, t time.Time) []byte {
				return append(buf, l.Months[t.Month()-1]...)
			}, true
		}
	case 'd':
		return func(buf []byte, t time.Time) []byte {
			return appendPadded(buf, t.Day(), n)
		}, true
	case 'D':
		return func(buf []byte, t time.Time) []byte {
			return appendPadded(buf, t.YearDay(), n)
		}, true
	case 'E':
		if n <= 3 {
			return func(buf []byte, t time.Time) []byte {
				return append(buf, l.WeekdaysAbbrev[t.Weekday()]...)
			}, true
		}

		return func(buf []byte, t time.Time) []byte {
			return append(buf, l.Weekdays[t.Weekday()]...)
		}, true
	case 'H':
		return func(buf []byte, t time.Time) []byte {
			return appendPadded(buf, t.Hour(), n)
		}, true
	case 'h':
		return func(buf []byte, t time.Time) []byte {
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}

			return appendPadded(buf, h, n)
		}, true
	case 'm':
		return func(buf []byte, t time.Time) []byte {
			return appendPadded(buf, t.Minute(), n)
		}, true
	case 's':
		return func(buf []byte, t time.Time) []byte {
			return appendPadded(buf, t.Second(), n)
		}, true
	case 'S':
		return fractionStep(n), true
	case 'a':
		return func(buf []byte, t time.Time) []byte {
			if t.Hour() < 12 {
				return append(buf, l.AM...)
			}

			return append(buf, l.PM...)
		}, true
	}

	return nil, false
}

func fractionStep(n int) step {
	digits := n
	if digits > 9 {
		digits = 9
	}

	div := 1
	for i := 0; i < 9-digits; i++ {
		div *= 10
	}

	return func(buf []byte, t time.Time) []byte {
		buf = appendPadded(buf, t.Nanosecond()/div, digits)

		// Pattern asks for more precision than nanoseconds have.
		for i := digits; i < n; i++ {
			buf = append(buf, '0')
		}

		return buf
	}
}

// appendPadded appends v to buf zero-padded to width.
func appendPadded(buf []byte, v, width int) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}

	digits := 1
	for p := 10; p <= v; p *= 10 {
		digits++
	}

	for i := digits; i < width; i++ {
		buf = append(buf, '0')
	}

	return strconv.AppendInt(buf, int64(v), 10)
}
