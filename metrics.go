package datefmt

// Metric names for stats tracker.
const (
	// MetricHit is a name of a metric to count formatter cache hits.
	MetricHit = "formatter_cache_hit"

	// MetricMiss is a name of a metric to count formatter cache misses.
	MetricMiss = "formatter_cache_miss"

	// MetricCompile is a name of a metric to count pattern compilations.
	MetricCompile = "formatter_compile"

	// MetricFailed is a name of a metric to count failed pattern compilations.
	MetricFailed = "formatter_compile_failed"

	// MetricItems is a name of a metric to count cached formatters.
	MetricItems = "formatter_cache_items"
)
