// Package datefmt provides immutable date/time formatters bound to CLDR-style
// patterns and a cache that compiles each distinct pattern at most once.
//
// Features:
//
//   - Pattern is compiled once, rendering reuses the compiled steps.
//   - Formatters are read-only after construction, safe for concurrent use.
//   - Compilation is locked per pattern to eliminate duplicate builds.
//   - Compile failures are attributed to the offending position and memoized.
//   - Swappable storage backends with a common contract.
//   - Allows logging, stats collection.
//   - Allows dump and restore of the cached pattern set.
package datefmt
