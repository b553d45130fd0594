package sparray

import "github.com/hasbyte1/go-sparray/arr"

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// Zip combines s with others position by position. Row i holds the i-th
// element of s followed by the i-th element of every other source.
//
// The result is as long as the longest of s and the collection arguments
// (sequences, slices, arrays); exhausted sources contribute nil. A
// non-collection argument is repeated on every row.
//
//	sparray.Of(1, 2, 3).Zip([]string{"a", "b"}, true)
//	// → [ [ 1, a, true ], [ 2, b, true ], [ 3, <nil>, true ] ]
//
// For two statically typed sequences use the package-level [Zip].
func (s *Sparray[T]) Zip(others ...any) *Sparray[*Sparray[any]] {
	type source struct {
		items  []any
		scalar bool
		value  any
	}
	size := len(s.items)
	sources := make([]source, len(others))
	for i, o := range others {
		if items, ok := collectionItems(o); ok {
			sources[i] = source{items: items}
			size = max(size, len(items))
			continue
		}
		sources[i] = source{scalar: true, value: o}
	}

	self := s.anyItems()
	rows := make([]*Sparray[any], size)
	for i := range rows {
		row := make([]any, 0, len(sources)+1)
		v, _ := arr.At(self, i)
		row = append(row, v)
		for _, src := range sources {
			if src.scalar {
				row = append(row, src.value)
				continue
			}
			v, _ := arr.At(src.items, i)
			row = append(row, v)
		}
		rows[i] = wrap(row)
	}
	return wrap(rows)
}

// Zip pairs the elements of a and b by position. The result is as long as
// the longer input; on the shorter side the row holds the zero value and its
// Ok flag is false.
func Zip[A, B any](a *Sparray[A], b *Sparray[B]) *Sparray[Zipped[A, B]] {
	n := max(len(a.items), len(b.items))
	out := make([]Zipped[A, B], n)
	for i := range out {
		out[i].First, out[i].OkFirst = arr.At(a.items, i)
		out[i].Second, out[i].OkSecond = arr.At(b.items, i)
	}
	return wrap(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Products
// ─────────────────────────────────────────────────────────────────────────────

// Cross returns the cartesian product of a and b as pairs, row-major: for
// each element of a (outer loop) every element of b (inner loop). The result
// is empty when either input is.
func Cross[A, B any](a *Sparray[A], b *Sparray[B]) *Sparray[Pair[A, B]] {
	return CrossWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// CrossWith is [Cross] with a custom combiner.
//
//	sparray.CrossWith(sparray.Of(1, 2), sparray.Of(10, 20), func(x, y int) int { return x * y })
//	// → [ 10, 20, 20, 40 ]
func CrossWith[A, B, R any](a *Sparray[A], b *Sparray[B], fn func(A, B) R) *Sparray[R] {
	return wrap(arr.Cross(a.items, b.items, fn))
}

// Enumerate tags every element with its index.
func Enumerate[T any](s *Sparray[T]) *Sparray[Indexed[T]] {
	return wrap(arr.Map(s.items, func(item T, i int) Indexed[T] { return Indexed[T]{Index: i, Value: item} }))
}
