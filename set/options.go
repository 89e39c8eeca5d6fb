package set

import "github.com/senderista/rotated-array-set/internal/options"

// config carries construction settings applied through Option values.
type config struct {
	capacity  int
	selfCheck bool
}

// Option configures a set during construction.
type Option = options.Option[*config]

// WithCapacity pre-allocates backing storage for at least n elements, so a
// set grown to n elements never reallocates. Non-positive values are
// ignored.
//
// Example:
//
//	s := set.New[int64](set.WithCapacity(100_000))
func WithCapacity(n int) Option {
	return options.New(func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	})
}

// WithSelfCheck re-validates every structural invariant after each mutation
// and panics with a diagnostic on the first violation. Validation walks the
// whole set, making each mutation O(n); intended for tests and debugging,
// not production use.
func WithSelfCheck(enabled bool) Option {
	return options.New(func(c *config) {
		c.selfCheck = enabled
	})
}
