package arr

import (
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Indexing & slicing
// ─────────────────────────────────────────────────────────────────────────────

// ResolveIndex maps a possibly negative index onto [0, length).
// Negative indices count backwards from the end (-1 is the last position).
// The result is not clamped: callers must bounds-check it.
func ResolveIndex(length, index int) int {
	if index < 0 {
		return length + index
	}
	return index
}

// At returns the element at index, counting from the end when index is
// negative. Returns the zero value and false when index is out of range on
// either side.
func At[T any](items []T, index int) (T, bool) {
	var zero T
	i := ResolveIndex(len(items), index)
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

// clamp resolves index and pins it to [0, length].
func clamp(length, index int) int {
	i := ResolveIndex(length, index)
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

// Slice returns a copy of items[start:end] where both bounds may be negative.
// Bounds past either end are clamped; an empty slice is returned when the
// resolved end does not come after the resolved start.
func Slice[T any](items []T, start, end int) []T {
	s, e := clamp(len(items), start), clamp(len(items), end)
	if e <= s {
		return []T{}
	}
	return slices.Clone(items[s:e])
}

// SliceFrom returns a copy of items from start (possibly negative) to the end.
func SliceFrom[T any](items []T, start int) []T {
	return Slice(items, start, len(items))
}

// Windows splits items into windows of at most size elements, each starting
// step positions after the previous one. Windows overlap when step < size
// and skip elements when step > size. The last window may be shorter.
//
// size and step must both be at least 1; Windows returns nil otherwise.
//
//	Windows([]int{1, 2, 3, 4, 5}, 2, 1) // → [[1 2] [2 3] [3 4] [4 5]]
//	Windows([]int{1, 2, 3, 4, 5}, 2, 2) // → [[1 2] [3 4] [5]]
func Windows[T any](items []T, size, step int) [][]T {
	if size < 1 || step < 1 {
		return nil
	}
	n := len(items)
	out := make([][]T, 0, n/step+1)
	for i := 0; i < n && i-step+size < n; i += step {
		out = append(out, Slice(items, i, i+size))
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Fill returns a slice holding n copies of value. n <= 0 yields an empty slice.
func Fill[T any](n int, value T) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexFunc returns the index of the first element satisfying fn, or -1.
func IndexFunc[T any](items []T, fn func(T, int) bool) int {
	for i, item := range items {
		if fn(item, i) {
			return i
		}
	}
	return -1
}

// LastIndexFunc returns the index of the last element satisfying fn, or -1.
func LastIndexFunc[T any](items []T, fn func(T, int) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if fn(items[i], i) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reduce folds items left to right into a value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ReduceRight folds items right to left into a value of type U.
func ReduceRight[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i := len(items) - 1; i >= 0; i-- {
		result = fn(result, items[i], i)
	}
	return result
}

// FlatMap applies fn to each element (producing a []U) and flattens the results.
func FlatMap[T, U any](items []T, fn func(T, int) []U) []U {
	out := make([]U, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i)...)
	}
	return out
}

// Collapse flattens a slice of slices into a single flat slice.
func Collapse[T any](items [][]T) []T {
	total := 0
	for _, chunk := range items {
		total += len(chunk)
	}
	out := make([]T, 0, total)
	for _, chunk := range items {
		out = append(out, chunk...)
	}
	return out
}

// Cross returns fn(x, y) for every x in a and y in b, with a as the outer
// loop. The result is empty when either input is empty.
func Cross[A, B, R any](a []A, b []B, fn func(A, B) R) []R {
	out := make([]R, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, fn(x, y))
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns a new slice with duplicates removed, preserving the first
// occurrence (requires comparable T).
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueFunc removes duplicates from items of any type, preserving the first
// occurrence.
//
// key returns a hashable stand-in for an element and true, or false when the
// element has no hashable form. Elements without one are compared against
// the already kept unhashable elements with eq.
func UniqueFunc[T any](items []T, key func(T) (any, bool), eq func(a, b T) bool) []T {
	seen := make(map[any]struct{}, len(items))
	var loose []T
	out := make([]T, 0, len(items))
	for _, item := range items {
		if k, ok := key(item); ok {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, item)
			continue
		}
		if slices.ContainsFunc(loose, func(other T) bool { return eq(other, item) }) {
			continue
		}
		loose = append(loose, item)
		out = append(out, item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & extrema
// ─────────────────────────────────────────────────────────────────────────────

// SortFunc returns a stably sorted copy of items. cmp returns a negative
// number when a sorts before b.
func SortFunc[T any](items []T, cmp func(a, b T) int) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// MinFunc returns the first smallest element according to cmp.
// Returns the zero value and false if items is empty.
func MinFunc[T any](items []T, cmp func(a, b T) int) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if cmp(item, best) < 0 {
			best = item
		}
	}
	return best, true
}

// MaxFunc returns the first largest element according to cmp.
// Returns the zero value and false if items is empty.
func MaxFunc[T any](items []T, cmp func(a, b T) int) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	for _, item := range items[1:] {
		if cmp(item, best) > 0 {
			best = item
		}
	}
	return best, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sample draws n elements from items using intn, which must return a uniform
// integer in [0, n).
//
// Without replacement each drawn element leaves the candidate pool, so at most
// len(items) elements are returned. With replacement every draw is independent
// and an empty items yields an empty result.
func Sample[T any](items []T, n int, withReplacement bool, intn func(int) int) []T {
	if n <= 0 || len(items) == 0 {
		return []T{}
	}
	out := make([]T, 0, n)
	if withReplacement {
		for range n {
			out = append(out, items[intn(len(items))])
		}
		return out
	}
	pool := slices.Clone(items)
	for i := 0; i < n && len(pool) > 0; i++ {
		j := intn(len(pool))
		out = append(out, pool[j])
		pool = slices.Delete(pool, j, j+1)
	}
	return out
}
