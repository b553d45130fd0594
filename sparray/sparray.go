package sparray

import (
	"io"
	"iter"
	"slices"

	"github.com/hasbyte1/go-sparray/arr"
	"github.com/hasbyte1/go-sparray/internal/logging"
)

// Sparray is a generic, immutable, ordered sequence of T.
//
// The backing slice is private: every constructor copies its input,
// [Sparray.ToArray] hands out a copy, and every transformation returns a
// *new* Sparray. A Sparray may therefore be shared between goroutines for
// reading. The elements themselves are not cloned, so mutable elements
// (pointers, maps) are shared between a sequence and everything derived from
// it.
//
// # Creating a sparray
//
//	s := sparray.Of(1, 2, 3)
//	s := sparray.FromSlice([]string{"a", "b"})
//	s := sparray.From(1, "two", 3.0)        // *Sparray[any]
//	s, err := sparray.Range(0, 10, 2)
//
// # Callbacks
//
// Element callbacks receive (element, index, source sequence):
//
//	s.Filter(func(n, i int, _ *sparray.Sparray[int]) bool { return n > i })
type Sparray[T any] struct {
	items []T
}

// wrap adopts items as the backing slice without copying. Only for slices
// freshly built inside this package.
func wrap[T any](items []T) *Sparray[T] {
	if items == nil {
		items = []T{}
	}
	return &Sparray[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns a copy of the underlying slice.
func (s *Sparray[T]) ToArray() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Sparray[T]) anyItems() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.items))
	for i, item := range s.items {
		out[i] = item
	}
	return out
}

// Len returns the number of elements.
func (s *Sparray[T]) Len() int { return len(s.items) }

// Size is an alias for [Sparray.Len].
func (s *Sparray[T]) Size() int { return s.Len() }

// IsEmpty reports whether the sequence has no elements.
func (s *Sparray[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one element.
func (s *Sparray[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// Get returns the element at index together with a presence flag.
// Negative indices count backwards from the end (-1 is the last element).
// Returns the zero value and false when index is out of range on either side.
func (s *Sparray[T]) Get(index int) (T, bool) {
	return arr.At(s.items, index)
}

// First returns the first element, or false when the sequence is empty.
func (s *Sparray[T]) First() (T, bool) { return s.Get(0) }

// Last returns the last element, or false when the sequence is empty.
func (s *Sparray[T]) Last() (T, bool) { return s.Get(-1) }

// FirstN returns the first n elements (fewer if the sequence is shorter).
func (s *Sparray[T]) FirstN(n int) *Sparray[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return s.Slice(0, n)
}

// LastN returns the last n elements (fewer if the sequence is shorter).
func (s *Sparray[T]) LastN(n int) *Sparray[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return s.Slice(-n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns an iterator over the indices 0 … Len()-1.
// Each call returns an independent iterator.
func (s *Sparray[T]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range s.items {
			if !yield(i) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order. It is the way to
// range over a sequence:
//
//	for v := range s.Values() { ... }
func (s *Sparray[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

// Entries returns an iterator over (index, element) pairs in order.
func (s *Sparray[T]) Entries() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// ForEach calls fn(element, index, s) for every element and returns s
// unchanged for further chaining.
func (s *Sparray[T]) ForEach(fn func(T, int, *Sparray[T])) *Sparray[T] {
	for i, item := range s.items {
		fn(item, i, s)
	}
	return s
}

// Tap calls fn(s) for side-effects and returns s unchanged.
func (s *Sparray[T]) Tap(fn func(*Sparray[T])) *Sparray[T] {
	fn(s)
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Debugging
// ─────────────────────────────────────────────────────────────────────────────

// SetDebugOutput sends [Sparray.Dump] output to w. Pass nil to silence it
// again (the default).
func SetDebugOutput(w io.Writer) {
	logging.InitLogger(w)
}

// Dump writes the sequence to the debug log and returns s for chaining.
// Nothing is written unless [SetDebugOutput] was called.
func (s *Sparray[T]) Dump() *Sparray[T] {
	logging.Debug().
		Int("len", len(s.items)).
		Str("items", s.String()).
		Msg("sparray dump")
	return s
}
