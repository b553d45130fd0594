package sparray

import (
	"fmt"
	"math/rand/v2"

	"github.com/hasbyte1/go-sparray/arr"
)

// SampleOptions configures [Sparray.SampleWith].
type SampleOptions struct {
	// WithReplacement lets the same element be drawn more than once.
	// Without replacement every drawn element leaves the candidate pool.
	WithReplacement bool

	// Rand is the source of randomness. nil uses the math/rand/v2 global
	// source. Pass a seeded *rand.Rand for reproducible samples.
	Rand *rand.Rand
}

// DefaultSampleOptions returns draws without replacement from the global
// source.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{}
}

func (o SampleOptions) intn() func(int) int {
	if o.Rand != nil {
		return o.Rand.IntN
	}
	return rand.IntN
}

// Sample returns one uniformly random element.
// Returns the zero value and false if the sequence is empty.
func (s *Sparray[T]) Sample() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[rand.IntN(len(s.items))], true
}

// SampleN draws n elements uniformly at random, optionally with replacement.
// See [Sparray.SampleWith].
func (s *Sparray[T]) SampleN(n int, withReplacement bool) (*Sparray[T], error) {
	opts := DefaultSampleOptions()
	opts.WithReplacement = withReplacement
	return s.SampleWith(n, opts)
}

// SampleWith draws n elements uniformly at random according to opts. n ≤ 0
// yields an empty sequence.
//
// Without replacement n may not exceed Len(); with replacement the sequence
// must not be empty. Both cases fail with [ErrSampleSizeExceeded].
func (s *Sparray[T]) SampleWith(n int, opts SampleOptions) (*Sparray[T], error) {
	if n <= 0 {
		return Empty[T](), nil
	}
	if !opts.WithReplacement && n > len(s.items) {
		return nil, fmt.Errorf("%w: n=%d, len=%d", ErrSampleSizeExceeded, n, len(s.items))
	}
	if opts.WithReplacement && len(s.items) == 0 {
		return nil, fmt.Errorf("%w: cannot draw %d from an empty sparray", ErrSampleSizeExceeded, n)
	}
	return wrap(arr.Sample(s.items, n, opts.WithReplacement, opts.intn())), nil
}
