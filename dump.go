package datefmt

import (
	"context"
	"encoding/gob"
	"errors"
	"io"
)

// Dump saves cached patterns and returns a number of processed entries.
//
// Only pattern strings cross the boundary, formatters are recompiled on Restore.
// Fails with ErrUnsupportedStore if the store does not implement Walker.
func (c *Cache) Dump(w io.Writer) (int, error) {
	walker, ok := c.store.(Walker)
	if !ok {
		return 0, ErrUnsupportedStore
	}

	encoder := gob.NewEncoder(w)

	return walker.Walk(func(pattern string, _ *Formatter) error {
		return encoder.Encode(pattern)
	})
}

// Restore compiles dumped patterns and returns number of processed entries.
func (c *Cache) Restore(ctx context.Context, r io.Reader) (int, error) {
	decoder := gob.NewDecoder(r)
	n := 0

	for {
		var pattern string

		err := decoder.Decode(&pattern)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return n, err
		}

		if _, err := c.Get(ctx, pattern); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}
