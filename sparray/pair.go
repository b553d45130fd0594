package sparray

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by [Cross].
type Pair[A, B any] struct {
	First  A
	Second B
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Indexed is an element tagged with its position, produced by [Enumerate].
type Indexed[T any] struct {
	Index int `json:"index" yaml:"index"`
	Value T   `json:"value" yaml:"value"`
}

// Zipped is one row of [Zip]. OkFirst / OkSecond report whether the source
// still had an element at that position; a missing side holds its zero value.
type Zipped[A, B any] struct {
	First    A
	OkFirst  bool
	Second   B
	OkSecond bool
}

// Entry is one key/value record of a [Mapping].
type Entry[V any] struct {
	Key   string `json:"key" yaml:"key"`
	Value V      `json:"value" yaml:"value"`
}
