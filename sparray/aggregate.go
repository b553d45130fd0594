package sparray

import (
	"math"

	"github.com/hasbyte1/go-sparray/arr"
)

var nanValue = math.NaN()

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the sequence left to right with fn(acc, element, index, s).
// With an initial value the fold starts from it; without one it starts from
// the first element and fails with [ErrEmptyReduce] on an empty sequence.
//
// For a fold into another type use the package-level [Reduce].
func (s *Sparray[T]) Reduce(fn func(acc, item T, index int, s *Sparray[T]) T, initial ...T) (T, error) {
	step := func(acc T, item T, i int) T { return fn(acc, item, i, s) }
	if len(initial) > 0 {
		return arr.Reduce(s.items, step, initial[0]), nil
	}
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyReduce
	}
	return arr.Reduce(s.items[1:], func(acc T, item T, i int) T {
		return step(acc, item, i+1)
	}, s.items[0]), nil
}

// ReduceRight is [Sparray.Reduce] folding right to left; without an initial
// value it starts from the last element.
func (s *Sparray[T]) ReduceRight(fn func(acc, item T, index int, s *Sparray[T]) T, initial ...T) (T, error) {
	step := func(acc T, item T, i int) T { return fn(acc, item, i, s) }
	if len(initial) > 0 {
		return arr.ReduceRight(s.items, step, initial[0]), nil
	}
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, ErrEmptyReduce
	}
	return arr.ReduceRight(s.items[:n-1], step, s.items[n-1]), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Counting & quantifiers
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements, or, given fns[0], the number of
// elements for which it returns true.
func (s *Sparray[T]) Count(fns ...func(T, int, *Sparray[T]) bool) int {
	if len(fns) == 0 || fns[0] == nil {
		return len(s.items)
	}
	c := 0
	for i, item := range s.items {
		if fns[0](item, i, s) {
			c++
		}
	}
	return c
}

// Some reports whether fn returns true for at least one element. It stops at
// the first match.
func (s *Sparray[T]) Some(fn func(T, int, *Sparray[T]) bool) bool {
	return s.FindIndex(fn) >= 0
}

// Every reports whether fn returns true for all elements. It stops at the
// first mismatch; an empty sequence satisfies any fn.
func (s *Sparray[T]) Every(fn func(T, int, *Sparray[T]) bool) bool {
	return s.FindIndex(func(item T, i int, src *Sparray[T]) bool { return !fn(item, i, src) }) < 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element for which fn returns true.
// Returns the zero value and false when none matches.
func (s *Sparray[T]) Find(fn func(T, int, *Sparray[T]) bool) (T, bool) {
	i := s.FindIndex(fn)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// FindIndex returns the index of the first element for which fn returns
// true, or -1.
func (s *Sparray[T]) FindIndex(fn func(T, int, *Sparray[T]) bool) int {
	return arr.IndexFunc(s.items, func(item T, i int) bool { return fn(item, i, s) })
}

// IndexOf returns the index of the first element equal to v, or -1.
// Numbers compare by value, other comparable values with ==, and slices,
// maps and funcs by identity.
func (s *Sparray[T]) IndexOf(v T) int {
	return arr.IndexFunc(s.items, func(item T, _ int) bool { return same(any(item), any(v)) })
}

// LastIndexOf returns the index of the last element equal to v, or -1.
func (s *Sparray[T]) LastIndexOf(v T) int {
	return arr.LastIndexFunc(s.items, func(item T, _ int) bool { return same(any(item), any(v)) })
}

// Includes reports whether some element equals v.
func (s *Sparray[T]) Includes(v T) bool {
	return s.IndexOf(v) >= 0
}

// IncludesAll reports whether every one of values is an element. values may
// be a collection of T (*Sparray[T], []T, iter.Seq[T]) or a single T. A value
// of any other type is never included.
func (s *Sparray[T]) IncludesAll(values any) bool {
	wanted, ok := spread[T](values)
	if !ok {
		v, ok := coerce[T](values)
		if !ok {
			return false
		}
		wanted = []T{v}
	}
	for _, v := range wanted {
		if !s.Includes(v) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds all elements as float64. A single non-numeric element makes the
// result NaN. The sum of an empty sequence is 0.
//
// For a sum in the element's own numeric type use [SumOf].
func (s *Sparray[T]) Sum() float64 {
	var total float64
	for _, item := range s.items {
		f, ok := toFloat(any(item))
		if !ok {
			return nanValue
		}
		total += f
	}
	return total
}

// Avg returns the arithmetic mean of the elements. It is NaN for an empty
// sequence or when any element is non-numeric.
func (s *Sparray[T]) Avg() float64 {
	if len(s.items) == 0 {
		return nanValue
	}
	return s.Sum() / float64(len(s.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Extrema
// ─────────────────────────────────────────────────────────────────────────────

func naturalOf[T any](a, b T) int { return compareNatural(any(a), any(b)) }

// Min returns the smallest element in natural order.
// Returns the zero value and false if the sequence is empty.
func (s *Sparray[T]) Min() (T, bool) {
	return arr.MinFunc(s.items, naturalOf[T])
}

// Max returns the largest element in natural order.
// Returns the zero value and false if the sequence is empty.
func (s *Sparray[T]) Max() (T, bool) {
	return arr.MaxFunc(s.items, naturalOf[T])
}

// MinBy returns every element whose fn value is the smallest, in their
// original order. Ties are all kept; an empty sequence yields an empty
// result.
func (s *Sparray[T]) MinBy(fn func(T) any) *Sparray[T] {
	return s.extremeBy(fn, -1)
}

// MaxBy returns every element whose fn value is the largest, in their
// original order.
func (s *Sparray[T]) MaxBy(fn func(T) any) *Sparray[T] {
	return s.extremeBy(fn, 1)
}

// extremeBy keeps the elements whose key is extremal in direction sign
// (-1 for minimum, 1 for maximum). The extremum is chosen in natural order;
// ties are keys equal to it under the same rule as IndexOf.
func (s *Sparray[T]) extremeBy(fn func(T) any, sign int) *Sparray[T] {
	if len(s.items) == 0 {
		return Empty[T]()
	}
	keys := arr.Map(s.items, func(item T, _ int) any { return fn(item) })
	best := keys[0]
	for _, k := range keys[1:] {
		if compareNatural(k, best)*sign > 0 {
			best = k
		}
	}
	return wrap(arr.Filter(s.items, func(_ T, i int) bool { return same(keys[i], best) }))
}
