// Package arr provides standalone generic helpers over plain Go slices. They
// are the slice-level building blocks behind the sparray package, and each
// one returns a fresh slice without touching its input.
//
// # Indexing
//
// Positions may be negative, counting backwards from the end:
//
//	arr.At([]int{1, 2, 3}, -1)            // → 3, true
//	arr.Slice([]int{1, 2, 3, 4}, 1, -1)   // → [2 3]
//
// # Windows
//
//	arr.Windows([]int{1, 2, 3, 4, 5}, 2, 1) // → [[1 2] [2 3] [3 4] [4 5]]
//
// # Equality
//
// [Unique] works on comparable element types. [UniqueFunc] accepts a key
// extractor and an equality fallback for element types (or dynamic values)
// that cannot be used as map keys.
//
// # Paths
//
// [Lookup] reads nested map[string]any / []any data with a dot path:
//
//	arr.Lookup(doc, "users.0.name")
package arr
