package sparray

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Enumerable is the read-only interface satisfied by [Sparray][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// ordered, indexable source without depending on the concrete *Sparray type.
// [CopyOf], [Sparray.Concat] and [Sparray.IncludesAll] recognise it.
type Enumerable[T any] interface {
	// ToArray returns a copy of every element as a plain Go slice.
	ToArray() []T

	// Len returns the number of elements.
	Len() int

	// Get returns the element at index; negative indices count from the end.
	Get(index int) (T, bool)

	// Values returns a fresh iterator over the elements in order.
	Values() iter.Seq[T]

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool
}

// anyEnumerable exposes a sequence's elements to code that does not know its
// element type, e.g. Sparray[any].Concat receiving a *Sparray[int].
type anyEnumerable interface {
	anyItems() []any
}

// collectionItems returns the elements of v when v is a collection: a
// sequence of any element type, a slice or array, or an iter.Seq[any].
// Strings and maps are not collections.
func collectionItems(v any) ([]any, bool) {
	switch c := v.(type) {
	case nil:
		return nil, false
	case anyEnumerable:
		return c.anyItems(), true
	case []any:
		return slices.Clone(c), true
	case iter.Seq[any]:
		return slices.Collect(c), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// isAnyType reports whether T is the empty interface, in which case every
// value is a valid element.
func isAnyType[T any]() bool {
	var zero T
	_, ok := any(&zero).(*any)
	return ok
}

// spread returns the elements of item when it is a collection of T.
func spread[T any](item any) ([]T, bool) {
	switch c := item.(type) {
	case Enumerable[T]:
		return c.ToArray(), true
	case []T:
		return slices.Clone(c), true
	case iter.Seq[T]:
		return slices.Collect(c), true
	}
	if !isAnyType[T]() {
		return nil, false
	}
	items, ok := collectionItems(item)
	if !ok {
		return nil, false
	}
	out := make([]T, len(items))
	for i, v := range items {
		out[i], _ = v.(T)
	}
	return out, true
}

// coerce returns item as a T. An untyped nil converts to the zero value of
// any nilable T.
func coerce[T any](item any) (T, bool) {
	if item == nil {
		var zero T
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return zero, true
		}
		return zero, false
	}
	v, ok := item.(T)
	return v, ok
}

// elementsOf spreads collections of T and wraps single T values. Anything
// else panics with an error wrapping [ErrInvalidInput].
func elementsOf[T any](op string, item any) []T {
	if items, ok := spread[T](item); ok {
		return items
	}
	if v, ok := coerce[T](item); ok {
		return []T{v}
	}
	panic(fmt.Errorf("%w: %s cannot accept %T as %v", ErrInvalidInput, op, item, reflect.TypeFor[T]()))
}
