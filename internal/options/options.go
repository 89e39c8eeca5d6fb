// Package options implements the functional-option plumbing shared by the
// public constructors. Container configuration knobs normalize bad input
// instead of failing, so options here apply unconditionally.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T)
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T)
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) {
	f.applyFunc(target)
}

// New creates an Option from a function.
func New[T any](fn func(T)) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply applies opts to target in order.
func Apply[T any](target T, opts ...Option[T]) {
	for _, opt := range opts {
		opt.apply(target)
	}
}
