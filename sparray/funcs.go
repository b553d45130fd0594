package sparray

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sparray/arr"
)

// Package-level generic functions for operations whose result element type
// differs from T. Go methods cannot declare their own type parameters, so
// these live here rather than on Sparray.

// ─────────────────────────────────────────────────────────────────────────────
// Typed transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(element, index, s) to every element and returns a new
// Sparray of the results, in index order.
//
//	lengths := sparray.Map(words, func(w string, _ int, _ *sparray.Sparray[string]) int {
//	    return len(w)
//	})
func Map[T, U any](s *Sparray[T], fn func(T, int, *Sparray[T]) U) *Sparray[U] {
	return wrap(arr.Map(s.items, func(item T, i int) U { return fn(item, i, s) }))
}

// FlatMap applies fn to every element and concatenates the resulting slices.
func FlatMap[T, U any](s *Sparray[T], fn func(T, int, *Sparray[T]) []U) *Sparray[U] {
	return wrap(arr.FlatMap(s.items, func(item T, i int) []U { return fn(item, i, s) }))
}

// Reduce folds s left to right into a value of type U, starting from initial.
func Reduce[T, U any](s *Sparray[T], fn func(acc U, item T, index int, s *Sparray[T]) U, initial U) U {
	return arr.Reduce(s.items, func(acc U, item T, i int) U { return fn(acc, item, i, s) }, initial)
}

// ReduceRight folds s right to left into a value of type U, starting from
// initial.
func ReduceRight[T, U any](s *Sparray[T], fn func(acc U, item T, index int, s *Sparray[T]) U, initial U) U {
	return arr.ReduceRight(s.items, func(acc U, item T, i int) U { return fn(acc, item, i, s) }, initial)
}

// Flatten concatenates a sequence of sequences into one sequence. Nil inner
// sequences are skipped.
func Flatten[T any](s *Sparray[*Sparray[T]]) *Sparray[T] {
	return wrap(arr.FlatMap(s.items, func(inner *Sparray[T], _ int) []T {
		if inner == nil {
			return nil
		}
		return inner.items
	}))
}

// Collapse concatenates a sequence of slices into one sequence.
func Collapse[T any](s *Sparray[[]T]) *Sparray[T] {
	return wrap(arr.Collapse(s.items))
}

// Sliding splits s into windows of at most size elements, each starting step
// positions after the previous one (step defaults to size). Windows overlap
// when step < size; the last window may be shorter.
//
//	w, _ := sparray.Sliding(sparray.Of(1, 2, 3, 4, 5), 2, 1)
//	// → [ [ 1, 2 ], [ 2, 3 ], [ 3, 4 ], [ 4, 5 ] ]
//
// size < 1 fails with [ErrInvalidSize] and step < 1 with [ErrInvalidStep].
func Sliding[T any](s *Sparray[T], size int, step ...int) (*Sparray[*Sparray[T]], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	st := size
	if len(step) > 0 {
		st = step[0]
	}
	if st < 1 {
		return nil, fmt.Errorf("%w: sliding step must be a positive integer, got %d", ErrInvalidStep, st)
	}
	windows := arr.Windows(s.items, size, st)
	return wrap(arr.Map(windows, func(w []T, _ int) *Sparray[T] { return wrap(w) })), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed aggregation
// ─────────────────────────────────────────────────────────────────────────────

// SumOf adds the elements of a numeric sequence in their own type.
// The sum of an empty sequence is 0.
func SumOf[N Number](s *Sparray[N]) N {
	var total N
	for _, n := range s.items {
		total += n
	}
	return total
}

// MinOf returns the smallest element of an ordered sequence.
// Returns the zero value and false if s is empty.
func MinOf[T constraints.Ordered](s *Sparray[T]) (T, bool) {
	return arr.MinFunc(s.items, cmpOrdered[T])
}

// MaxOf returns the largest element of an ordered sequence.
// Returns the zero value and false if s is empty.
func MaxOf[T constraints.Ordered](s *Sparray[T]) (T, bool) {
	return arr.MaxFunc(s.items, cmpOrdered[T])
}

func cmpOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
