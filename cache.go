package datefmt

import (
	"context"
	"sync"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// Config is optional configuration for NewCache.
type Config struct {
	// Name is added to logs and stats.
	Name string

	// Locale provides names for textual pattern fields, English by default.
	Locale Locale

	// Store keeps compiled formatters, RWMutexStore is created by default.
	Store Store

	// Logger collects messages with context.
	Logger ctxd.Logger

	// Stats tracks stats.
	Stats stats.Tracker
}

// Cache resolves patterns to formatters, compiling each distinct pattern at
// most once per process.
//
// Stored formatters are never replaced or evicted, so repeated Get calls
// with equal patterns return the same instance.
//
// Please use NewCache to create instance.
type Cache struct {
	store  Store
	locale Locale
	config Config
	log    ctxd.Logger
	stat   stats.Tracker

	lock     sync.Mutex               // Securing keyLocks and failed.
	keyLocks map[string]chan struct{} // Preventing compile concurrency per pattern.
	failed   map[string]error         // Deterministic compile failures, kept for process lifetime.
}

var _ Getter = &Cache{}

// NewCache creates a Cache instance.
//
// Compilation is locked per pattern to avoid concurrent duplicate builds.
// Optional configuration can be provided with Config (only first argument is used).
func NewCache(cfg ...Config) *Cache {
	config := Config{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	c := &Cache{}
	c.config = config

	c.log = config.Logger
	if c.log == nil {
		c.log = ctxd.NoOpLogger{}
	}

	c.stat = config.Stats
	if c.stat == nil {
		c.stat = stats.NoOp{}
	}

	c.store = config.Store
	if c.store == nil {
		c.store = NewRWMutexStore()
	}

	c.locale = config.Locale
	c.locale.applyDefaults()

	c.keyLocks = make(map[string]chan struct{})
	c.failed = make(map[string]error)

	return c
}

// Get returns a formatter from cache or compiles it on first use.
func (c *Cache) Get(ctx context.Context, pattern string) (*Formatter, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	// Performing initial check before critical section.
	if f, ok := c.store.Load(pattern); ok {
		c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)

		return f, nil
	}

	c.stat.Add(ctx, MetricMiss, 1, "name", c.config.Name)

	// Locking pattern for compilation or finding active lock.
	c.lock.Lock()

	if err, ok := c.failed[pattern]; ok {
		c.lock.Unlock()

		return nil, err
	}

	keyLock, alreadyLocked := c.keyLocks[pattern]
	if !alreadyLocked {
		keyLock = make(chan struct{})
		c.keyLocks[pattern] = keyLock
	}
	c.lock.Unlock()

	// If already locked waiting for completion before checking store again.
	if alreadyLocked {
		c.log.Debug(ctx, "waiting for pattern compilation", "name", c.config.Name, "pattern", pattern)

		<-keyLock

		return c.compiled(pattern)
	}

	// Releasing the lock.
	defer func() {
		c.lock.Lock()
		delete(c.keyLocks, pattern)
		close(keyLock)
		c.lock.Unlock()
	}()

	// Performing check again, compilation may have finished between the
	// initial check and lock acquisition.
	if f, ok := c.store.Load(pattern); ok {
		return f, nil
	}

	return c.doCompile(ctx, pattern)
}

// compiled returns the outcome of a compilation finished by another caller.
func (c *Cache) compiled(pattern string) (*Formatter, error) {
	if f, ok := c.store.Load(pattern); ok {
		return f, nil
	}

	c.lock.Lock()
	err := c.failed[pattern]
	c.lock.Unlock()

	return nil, err
}

func (c *Cache) doCompile(ctx context.Context, pattern string) (*Formatter, error) {
	c.log.Debug(ctx, "compiling date pattern", "name", c.config.Name, "pattern", pattern)

	f, err := Compile(pattern, c.locale)
	if err != nil {
		c.stat.Add(ctx, MetricFailed, 1, "name", c.config.Name)

		err = ctxd.WrapError(ctx, err, "failed to compile date pattern",
			"name", c.config.Name,
			"pattern", pattern)

		// Compilation is deterministic, failure is kept to avoid recompiling.
		c.lock.Lock()
		c.failed[pattern] = err
		c.lock.Unlock()

		return nil, err
	}

	c.store.Store(pattern, f)

	c.stat.Add(ctx, MetricCompile, 1, "name", c.config.Name)
	c.stat.Set(ctx, MetricItems, float64(c.store.Len()), "name", c.config.Name)

	return f, nil
}

// Preload compiles patterns eagerly to warm up the cache, first failure aborts.
func (c *Cache) Preload(ctx context.Context, patterns ...string) error {
	for _, p := range patterns {
		if _, err := c.Get(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

// Len returns number of cached formatters.
func (c *Cache) Len() int {
	return c.store.Len()
}
