package datefmt_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/datefmt"
)

func TestCache_Get(t *testing.T) {
	ctx := context.Background()
	st := &stats.TrackerMock{}
	c := datefmt.NewCache(datefmt.Config{
		Name:   "test",
		Logger: ctxd.NoOpLogger{},
		Stats:  st,
	})

	f1, err := c.Get(ctx, "d MMM 'of' yyyy")
	require.NoError(t, err)

	f2, err := c.Get(ctx, "d MMM 'of' yyyy")
	require.NoError(t, err)

	// Same handle is served for the process lifetime.
	assert.Same(t, f1, f2)

	instant := time.Date(1992, time.June, 23, 17, 6, 0, 0, time.UTC)
	assert.Equal(t, "23 Jun of 1992", f1.Format(instant))
	assert.Equal(t, f1.Format(instant), f2.Format(instant))

	assert.Equal(t, 1, st.Int(datefmt.MetricCompile))
	assert.Equal(t, 1, st.Int(datefmt.MetricMiss))
	assert.Equal(t, 1, st.Int(datefmt.MetricHit))
	assert.Equal(t, 1, c.Len())
}

func TestCache_Get_independentEntries(t *testing.T) {
	ctx := context.Background()
	c := datefmt.NewCache()

	instant := time.Date(1992, time.June, 23, 4, 56, 0, 0, time.UTC)

	f1, err := c.Get(ctx, "yyyy/MM/dd @ HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "1992/06/23 @ 04:56", f1.Format(instant))

	f2, err := c.Get(ctx, "HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "04:56", f2.Format(instant))

	// Inserting a second pattern does not disturb the first entry.
	again, err := c.Get(ctx, "yyyy/MM/dd @ HH:mm")
	require.NoError(t, err)
	assert.Same(t, f1, again)
	assert.Equal(t, "1992/06/23 @ 04:56", again.Format(instant))

	assert.Equal(t, 2, c.Len())
}

func TestCache_Get_empty(t *testing.T) {
	c := datefmt.NewCache()

	f, err := c.Get(context.Background(), "")
	assert.Nil(t, f)
	assert.EqualError(t, err, datefmt.ErrEmptyPattern.Error())
	assert.Equal(t, 0, c.Len())
}

func TestCache_Get_invalidPattern(t *testing.T) {
	ctx := context.Background()
	st := &stats.TrackerMock{}
	c := datefmt.NewCache(datefmt.Config{
		Name:  "test",
		Stats: st,
	})

	f, err := c.Get(ctx, "yyyy-QQ")
	assert.Nil(t, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, datefmt.ErrInvalidPattern))
	assert.Contains(t, err.Error(), "pattern")

	// Failure is deterministic, it is memoized instead of recompiled.
	f, err2 := c.Get(ctx, "yyyy-QQ")
	assert.Nil(t, f)
	require.Error(t, err2)
	assert.True(t, errors.Is(err2, datefmt.ErrInvalidPattern))

	assert.Equal(t, 1, st.Int(datefmt.MetricFailed))
	assert.Equal(t, 0, st.Int(datefmt.MetricCompile))
	assert.Equal(t, 0, c.Len())

	// A bad pattern does not poison good ones.
	good, err := c.Get(ctx, "yyyy")
	require.NoError(t, err)
	assert.NotNil(t, good)
}

func TestCache_Get_concurrency(t *testing.T) {
	ctx := context.Background()
	st := &stats.TrackerMock{}
	c := datefmt.NewCache(datefmt.Config{
		Name:  "test",
		Stats: st,
		Store: datefmt.NewXsyncStore(),
	})

	pipeline := make(chan struct{}, 50)
	n := 1000

	var (
		mu   sync.Mutex
		seen = map[*datefmt.Formatter]bool{}
	)

	for i := 0; i < n; i++ {
		pipeline <- struct{}{}

		go func() {
			defer func() {
				<-pipeline
			}()

			f, err := c.Get(ctx, "yyyy/MM/dd @ HH:mm")
			assert.NoError(t, err)

			mu.Lock()
			seen[f] = true
			mu.Unlock()
		}()
	}

	// Waiting for goroutines to finish.
	for i := 0; i < cap(pipeline); i++ {
		pipeline <- struct{}{}
	}

	// Concurrent first use produces a single compiled handle.
	assert.Len(t, seen, 1)
	assert.Equal(t, 1, st.Int(datefmt.MetricCompile))
	assert.Equal(t, 1, c.Len())
}

func TestCache_Get_concurrencyDistinct(t *testing.T) {
	ctx := context.Background()
	st := &stats.TrackerMock{}
	c := datefmt.NewCache(datefmt.Config{Stats: st})

	pipeline := make(chan struct{}, 50)
	n := 100

	for i := 0; i < n; i++ {
		pipeline <- struct{}{}

		pattern := "yyyy '" + strconv.Itoa(i) + "'"

		go func() {
			defer func() {
				<-pipeline
			}()

			for j := 0; j < 10; j++ {
				f, err := c.Get(ctx, pattern)
				assert.NoError(t, err)
				assert.Equal(t, pattern, f.Pattern())
			}
		}()
	}

	for i := 0; i < cap(pipeline); i++ {
		pipeline <- struct{}{}
	}

	// Every distinct pattern has a single compilation.
	assert.Equal(t, n, st.Int(datefmt.MetricCompile))
	assert.Equal(t, n, c.Len())
}

func TestCache_Preload(t *testing.T) {
	ctx := context.Background()
	st := &stats.TrackerMock{}
	c := datefmt.NewCache(datefmt.Config{Stats: st})

	err := c.Preload(ctx, "yyyy-MM-dd", "HH:mm:ss", "d MMM 'of' yyyy")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, st.Int(datefmt.MetricCompile))

	// Preloaded handles are served from cache.
	f, err := c.Get(ctx, "yyyy-MM-dd")
	require.NoError(t, err)
	assert.NotNil(t, f)
	assert.Equal(t, 3, st.Int(datefmt.MetricCompile))

	err = c.Preload(ctx, "HH:mm", "bogus-Q")
	require.Error(t, err)
	assert.True(t, errors.Is(err, datefmt.ErrInvalidPattern))
	assert.Equal(t, 4, c.Len())
}

func TestCache_Get_stores(t *testing.T) {
	ctx := context.Background()
	instant := time.Date(1992, time.June, 23, 17, 6, 0, 0, time.UTC)

	for _, tc := range []struct {
		name  string
		store datefmt.Store
	}{
		{"rwmutex", datefmt.NewRWMutexStore()},
		{"syncmap", datefmt.NewSyncMapStore()},
		{"xsync", datefmt.NewXsyncStore()},
	} {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			c := datefmt.NewCache(datefmt.Config{Store: tc.store})

			f1, err := c.Get(ctx, "d MMM 'of' yyyy")
			require.NoError(t, err)

			f2, err := c.Get(ctx, "d MMM 'of' yyyy")
			require.NoError(t, err)

			assert.Same(t, f1, f2)
			assert.Equal(t, "23 Jun of 1992", f1.Format(instant))
			assert.Equal(t, 1, tc.store.Len())
		})
	}
}

func TestUncached_Get(t *testing.T) {
	ctx := context.Background()
	u := datefmt.Uncached{}

	f1, err := u.Get(ctx, "yyyy-MM-dd")
	require.NoError(t, err)

	f2, err := u.Get(ctx, "yyyy-MM-dd")
	require.NoError(t, err)

	// A fresh handle is built on every call, outputs still agree.
	assert.NotSame(t, f1, f2)

	instant := time.Date(1992, time.June, 23, 17, 6, 0, 0, time.UTC)
	assert.Equal(t, f1.Format(instant), f2.Format(instant))

	_, err = u.Get(ctx, "Q")
	assert.True(t, errors.Is(err, datefmt.ErrInvalidPattern))
}

func TestCache_Get_logs(t *testing.T) {
	ctx := context.Background()
	log := &ctxd.LoggerMock{}
	c := datefmt.NewCache(datefmt.Config{
		Name:   "logged",
		Logger: log,
	})

	_, err := c.Get(ctx, "yyyy")
	require.NoError(t, err)

	assert.Contains(t, log.String(), "compiling date pattern")
	assert.Contains(t, log.String(), "yyyy")
}
