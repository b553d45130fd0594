package sparray

import "github.com/hasbyte1/go-sparray/arr"

// Field returns a key function that reads the dot-notation path from a
// decoded JSON value (map[string]any / []any), for use with [Sparray.SortBy],
// [Sparray.MinBy], [GroupBy], [IndexBy] and friends. A missing path yields nil.
//
//	users, _ := sparray.FromJSON(data, "users")
//	byCity := sparray.GroupBy(users, sparray.Field("address.city"))
func Field(path string) func(any) any {
	return func(v any) any {
		found, _ := arr.Lookup(v, path)
		return found
	}
}

// Pluck returns the value at path for every element, nil where it is missing.
func Pluck(s *Sparray[any], path string) *Sparray[any] {
	return wrap(arr.Map(s.items, func(item any, _ int) any {
		v, _ := arr.Lookup(item, path)
		return v
	}))
}
