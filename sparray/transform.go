package sparray

import (
	"github.com/hasbyte1/go-sparray/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new sequence with fn(element, index, s) applied to every
// element, in index order. The result has the same length as s.
//
// For a transformation to another element type use the package-level [Map].
func (s *Sparray[T]) Map(fn func(T, int, *Sparray[T]) T) *Sparray[T] {
	return Map(s, fn)
}

// Filter returns a new sequence with only the elements for which
// fn(element, index, s) returns true, in their original order.
func (s *Sparray[T]) Filter(fn func(T, int, *Sparray[T]) bool) *Sparray[T] {
	return wrap(arr.Filter(s.items, func(item T, i int) bool { return fn(item, i, s) }))
}

// Reject returns a new sequence with the elements for which fn returns true
// removed. It is the complement of [Sparray.Filter].
func (s *Sparray[T]) Reject(fn func(T, int, *Sparray[T]) bool) *Sparray[T] {
	return s.Filter(func(item T, i int, src *Sparray[T]) bool { return !fn(item, i, src) })
}

// FlatMap maps every element with fn and splices the results into a new
// sequence: a result that is a collection of T (*Sparray[T], []T,
// iter.Seq[T]) is spread one level, a single T is appended, and nil results
// are skipped. For Sparray[any] every slice or sequence result is spread.
//
// FlatMap panics with an error wrapping [ErrInvalidInput] when fn returns a
// value that is neither. For a typed flat-map use the package-level [FlatMap].
func (s *Sparray[T]) FlatMap(fn func(T, int, *Sparray[T]) any) *Sparray[T] {
	out := make([]T, 0, len(s.items))
	for i, item := range s.items {
		mapped := fn(item, i, s)
		if mapped == nil {
			continue
		}
		out = append(out, elementsOf[T]("FlatMap", mapped)...)
	}
	return wrap(out)
}

// Flatten splices nested collections (sequences, slices, arrays) into the
// top level, repeating depth times. Flatten() and a negative depth flatten one
// level; Flatten(0) returns the elements unchanged.
//
// The element type of nested values is not known statically, so the result
// is a Sparray[any]. For a typed one-level flatten see the package-level
// [Flatten] and [Collapse].
func (s *Sparray[T]) Flatten(depth ...int) *Sparray[any] {
	d := 1
	if len(depth) > 0 && depth[0] >= 0 {
		d = depth[0]
	}
	items := s.anyItems()
	for ; d > 0; d-- {
		flat := make([]any, 0, len(items))
		nested := false
		for _, item := range items {
			if elems, ok := collectionItems(item); ok {
				flat = append(flat, elems...)
				nested = true
				continue
			}
			flat = append(flat, item)
		}
		items = flat
		if !nested {
			break
		}
	}
	return wrap(items)
}

// Distinct returns a new sequence without duplicate elements, keeping the
// first occurrence of each. Numbers compare by value, other comparable values
// with ==, and slices, maps and funcs by identity.
func (s *Sparray[T]) Distinct() *Sparray[T] {
	return wrap(arr.UniqueFunc(s.items,
		func(item T) (any, bool) { return hashKey(any(item)) },
		func(a, b T) bool { return same(any(a), any(b)) },
	))
}

// Concat returns a new sequence with every item appended in argument order.
// Collections of T (*Sparray[T], []T, iter.Seq[T]) are spread element-wise;
// single T values are appended as-is.
//
//	sparray.Of(1).Concat(2, []int{3, 4}, sparray.Of(5)) // → [ 1, 2, 3, 4, 5 ]
//
// Concat panics with an error wrapping [ErrInvalidInput] for an item that is
// neither a T nor a collection of T.
func (s *Sparray[T]) Concat(items ...any) *Sparray[T] {
	out := s.ToArray()
	for _, item := range items {
		out = append(out, elementsOf[T]("Concat", item)...)
	}
	return wrap(out)
}

// Push returns a new sequence with items appended.
func (s *Sparray[T]) Push(items ...T) *Sparray[T] {
	out := make([]T, len(s.items)+len(items))
	copy(out, s.items)
	copy(out[len(s.items):], items)
	return wrap(out)
}

// Reverse returns a new sequence with the elements in reversed order.
func (s *Sparray[T]) Reverse() *Sparray[T] {
	return wrap(arr.Reverse(s.items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a new, stably sorted sequence. Without a comparator the
// natural order is used (numbers numerically, strings lexicographically).
// With one, cmp(a, b) < 0 places a before b.
func (s *Sparray[T]) Sort(cmp ...func(a, b T) int) *Sparray[T] {
	if len(cmp) > 0 && cmp[0] != nil {
		return wrap(arr.SortFunc(s.items, cmp[0]))
	}
	return wrap(arr.SortFunc(s.items, func(a, b T) int { return compareNatural(any(a), any(b)) }))
}

// SortBy returns a new sequence sorted in ascending order by the key(s)
// extracted by keyFn. keyFn may return a single key or several (a slice or a
// sequence); keys are compared one by one in natural order and the first
// difference decides. When one key list is a prefix of the other the
// elements tie and keep their relative order.
//
//	people.SortBy(func(p Person) any { return []any{p.Last, p.First} })
func (s *Sparray[T]) SortBy(keyFn func(T) any) *Sparray[T] {
	return s.sortByKeys(keyFn, false)
}

// SortByDesc is [Sparray.SortBy] in descending order.
func (s *Sparray[T]) SortByDesc(keyFn func(T) any) *Sparray[T] {
	return s.sortByKeys(keyFn, true)
}

func (s *Sparray[T]) sortByKeys(keyFn func(T) any, reverse bool) *Sparray[T] {
	type keyed struct {
		keys []any
		item T
	}
	decorated := arr.Map(s.items, func(item T, _ int) keyed {
		return keyed{keys: keyList(keyFn(item)), item: item}
	})
	sorted := arr.SortFunc(decorated, func(a, b keyed) int {
		c := compareKeys(a.keys, b.keys)
		if reverse {
			return -c
		}
		return c
	})
	return wrap(arr.Map(sorted, func(k keyed, _ int) T { return k.item }))
}

// keyList turns a sort key into its list form: collections are spread,
// anything else is a one-key list.
func keyList(k any) []any {
	if _, isString := k.(string); !isString {
		if keys, ok := collectionItems(k); ok {
			return keys
		}
	}
	return []any{k}
}

func compareKeys(a, b []any) int {
	for i := range min(len(a), len(b)) {
		if c := compareNatural(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the elements from start (inclusive) to end (exclusive).
// Negative positions count from the end, as in [Sparray.Get]; omitting end
// slices to the end. Out-of-range positions are clamped.
func (s *Sparray[T]) Slice(start int, end ...int) *Sparray[T] {
	if len(end) == 0 {
		return wrap(arr.SliceFrom(s.items, start))
	}
	return wrap(arr.Slice(s.items, start, end[0]))
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric view
// ─────────────────────────────────────────────────────────────────────────────

// ToNumeric returns the elements as float64, with NaN in place of every
// non-numeric element.
func (s *Sparray[T]) ToNumeric() *Sparray[float64] {
	return wrap(arr.Map(s.items, func(item T, _ int) float64 {
		f, ok := toFloat(any(item))
		if !ok {
			return nanValue
		}
		return f
	}))
}
