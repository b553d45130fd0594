// Package sparray provides Sparray, a generic immutable sequence with a
// fluent, chainable functional API.
//
// # Overview
//
// The central type is [Sparray][T], a private slice of T behind methods that
// never modify it:
//
//	s := sparray.Of(5, 3, 8, 1).
//	    Filter(func(n, _ int, _ *sparray.Sparray[int]) bool { return n > 2 }).
//	    Sort()
//	fmt.Println(s) // → [ 3, 5, 8 ]
//
// # Immutability
//
// Factories copy their input, [Sparray.ToArray] returns a copy, and every
// transformation returns a *new* Sparray. Only the backing slice is copied;
// elements that are pointers or maps are shared.
//
// # Dynamic input
//
// [From] accepts anything a dynamically typed caller would pass (several
// values, or one slice, array, sequence or scalar) and returns a
// Sparray[any]. Operations such as [Sparray.Concat], [Sparray.FlatMap],
// [Sparray.Flatten] and [Sparray.Zip] spread collections they receive and
// keep scalars as single elements. [FromJSON] reads a JSON array.
//
// # Type-transforming operations
//
// Methods cannot introduce new type parameters, so operations that produce a
// different element type are package-level functions:
//
//	words := sparray.Of("go", "is", "fun")
//
//	// Method-based (returns Sparray[string]):
//	words.Map(func(w string, _ int, _ *sparray.Sparray[string]) string { return w + "!" })
//
//	// Package-level (returns Sparray[int]):
//	sparray.Map(words, func(w string, _ int, _ *sparray.Sparray[string]) int { return len(w) })
//
// Package-level functions: [Map], [FlatMap], [Reduce], [ReduceRight],
// [Flatten], [Collapse], [Sliding], [Enumerate], [Zip], [Cross], [CrossWith],
// [GroupBy], [GroupByWith], [IndexBy], [IndexByWith], [SumOf], [MinOf],
// [MaxOf].
//
// # Ordering and equality
//
// Without a comparator, [Sparray.Sort], [Sparray.Min], [Sparray.Max] and
// friends use a natural order: numbers numerically across numeric types,
// strings lexicographically, false before true, and nil first. Membership
// tests ([Sparray.Includes], [Sparray.IndexOf], [Sparray.Distinct]) compare
// numbers by value and slices, maps and funcs by identity.
//
// # Errors
//
// Failures are reported with sentinel errors such as [ErrInvalidStep] and
// [ErrEmptyReduce], wrapped with context; test for them with [errors.Is].
package sparray
