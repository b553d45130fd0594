package sparray

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/tidwall/gjson"
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-sparray/arr"
)

// Number is the set of element types accepted by [Range], [FillOf] and
// [SumOf].
type Number interface {
	constraints.Integer | constraints.Float
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of creates a Sparray holding exactly the given elements, in call order.
func Of[T any](items ...T) *Sparray[T] {
	return FromSlice(items)
}

// OfSingle creates a one-element Sparray. Unlike [From], a slice passed here
// becomes a single element rather than being copied element-wise.
func OfSingle[T any](item T) *Sparray[T] {
	return &Sparray[T]{items: []T{item}}
}

// FromSlice creates a Sparray from a slice (the slice is copied).
func FromSlice[T any](items []T) *Sparray[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sparray[T]{items: dst}
}

// FromSeq creates a Sparray from the values yielded by seq, in iteration
// order. Use it for set-like sources that iterate in insertion order.
func FromSeq[T any](seq iter.Seq[T]) *Sparray[T] {
	return wrap(slices.Collect(seq))
}

// CopyOf creates a Sparray holding a shallow copy of src's elements.
func CopyOf[T any](src Enumerable[T]) *Sparray[T] {
	return wrap(src.ToArray())
}

// Empty creates an empty Sparray of type T.
func Empty[T any]() *Sparray[T] {
	return &Sparray[T]{items: []T{}}
}

// IsSparray reports whether v is a *Sparray of any element type.
func IsSparray(v any) bool {
	_, ok := v.(anyEnumerable)
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Dynamic constructors
// ─────────────────────────────────────────────────────────────────────────────

// From builds a Sparray[any] from its arguments the way a dynamically typed
// caller expects:
//
//   - no arguments: an empty sequence;
//   - one collection (slice, array, *Sparray of any element type, or
//     iter.Seq[any]): a shallow copy of its elements, in order;
//   - one other value: a single-element sequence;
//   - several arguments: exactly those arguments, in call order.
//
// For statically typed sequences use [Of], [FromSlice] or [OfSingle].
func From(items ...any) *Sparray[any] {
	switch len(items) {
	case 0:
		return Empty[any]()
	case 1:
		if elems, ok := collectionItems(items[0]); ok {
			return wrap(elems)
		}
		return OfSingle(items[0])
	}
	return FromSlice(items)
}

// FromAny copies the elements of a collection value (slice, array, or
// *Sparray of any element type) into a Sparray[any]. Any other value fails
// with [ErrInvalidInput].
func FromAny(v any) (*Sparray[any], error) {
	elems, ok := collectionItems(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a collection", ErrInvalidInput, v)
	}
	return wrap(elems), nil
}

// FromJSON builds a Sparray[any] from a JSON document, optionally narrowed
// with a gjson path (e.g. "users.#.name"). An array result is spread
// element-wise, any other value becomes a single element, and a path that
// matches nothing yields an empty sequence. Numbers decode as float64,
// objects as map[string]any.
//
// Malformed JSON fails with [ErrInvalidInput].
func FromJSON(data []byte, path ...string) (*Sparray[any], error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidInput)
	}
	res := gjson.ParseBytes(data)
	if len(path) > 0 {
		res = res.Get(path[0])
	}
	if !res.Exists() {
		return Empty[any](), nil
	}
	if !res.IsArray() {
		return OfSingle(res.Value()), nil
	}
	elems := res.Array()
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = e.Value()
	}
	return wrap(out), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Generators
// ─────────────────────────────────────────────────────────────────────────────

// Range builds an arithmetic progression, end exclusive:
//
//	Range(n)               // 0, 1, …, n-1   (0, -1, …, n+1 when n < 0)
//	Range(start, end)      // start … end-1, stepping by -1 when end < start
//	Range(start, end, step)
//
// An explicit step must point from start towards end; otherwise Range fails
// with [ErrInvalidStep]. When start == end the result is empty whatever the
// step. Called without bounds it fails with [ErrMissingArgument].
func Range[N Number](bounds ...N) (*Sparray[N], error) {
	var start, end, step N
	switch len(bounds) {
	case 0:
		return nil, ErrMissingArgument
	case 1:
		end = bounds[0]
	case 2, 3:
		start, end = bounds[0], bounds[1]
	default:
		return nil, fmt.Errorf("%w: got %d, want at most 3", ErrTooManyArguments, len(bounds))
	}

	descending := end < start
	explicit := len(bounds) == 3
	if explicit {
		step = bounds[2]
		if (descending && step >= 0) || (start < end && step <= 0) {
			return nil, fmt.Errorf("%w %v", ErrInvalidStep, step)
		}
	}

	out := make([]N, 0)
	if descending {
		// Counting down by the step's magnitude keeps unsigned N usable.
		dec := N(1)
		if explicit {
			dec = -step
		}
		for i := start; i > end; {
			out = append(out, i)
			next := i - dec
			if next >= i {
				break
			}
			i = next
		}
		return wrap(out), nil
	}

	if !explicit {
		step = 1
	}
	for i := start; i < end; {
		out = append(out, i)
		next := i + step
		if next <= i {
			break
		}
		i = next
	}
	return wrap(out), nil
}

// FillOf builds a Sparray of n elements that all hold value (the same value,
// not clones). n ≤ 0 yields an empty sequence; a fractional, NaN or infinite n,
// or one too large for an int, fails with [ErrInvalidCount].
func FillOf[N Number, T any](n N, value T) (*Sparray[T], error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f >= math.MaxInt {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCount, n)
	}
	return wrap(arr.Fill(int(n), value)), nil
}
