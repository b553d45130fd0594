package sparray

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"maps"

	"gopkg.in/yaml.v3"
)

// Mapping is an ordered string-keyed map, produced by [GroupBy] and
// [IndexBy]. Keys iterate in the order they were first seen.
type Mapping[V any] struct {
	keys   []string
	values map[string]V
}

func newMapping[V any]() *Mapping[V] {
	return &Mapping[V]{values: make(map[string]V)}
}

// set stores v under key. A new key is appended; an existing key keeps its
// position and gets the new value.
func (m *Mapping[V]) set(key string, v V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Mapping[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping[V]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *Mapping[V]) Len() int { return len(m.keys) }

// Keys returns a copy of the keys in first-seen order.
func (m *Mapping[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key order.
func (m *Mapping[V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}
	return out
}

// All returns an iterator over key/value pairs in key order.
func (m *Mapping[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToMap returns the entries as a plain Go map. Key order is lost.
func (m *Mapping[V]) ToMap() map[string]V {
	return maps.Clone(m.values)
}

// Entries returns the mapping as a sequence of key/value records, in key
// order.
func (m *Mapping[V]) Entries() *Sparray[Entry[V]] {
	out := make([]Entry[V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry[V]{Key: k, Value: m.values[k]}
	}
	return wrap(out)
}

// MarshalJSON encodes the mapping as a JSON object with keys in first-seen
// order.
func (m *Mapping[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("sparray: marshal key %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the mapping as a YAML mapping with keys in first-seen
// order.
func (m *Mapping[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var val yaml.Node
		if err := val.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("sparray: marshal key %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// keyString turns the value returned by a key function into a mapping key.
func keyString(k any) string {
	switch v := k.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(k)
}

// GroupBy groups the elements of s under the key returned by keyFn. Keys are
// rendered as strings (a key of 1 and "1" land in the same group) and appear
// in the order of their first element. Each group keeps its elements in
// source order.
//
//	groups := sparray.GroupBy(sparray.Of(1, 2, 3, 4, 5, 6), func(n int) any { return n % 3 })
//	// "1" → [ 1, 4 ], "2" → [ 2, 5 ], "0" → [ 3, 6 ]
func GroupBy[T any](s *Sparray[T], keyFn func(T) any) *Mapping[*Sparray[T]] {
	return GroupByWith(s, keyFn, func(group *Sparray[T], _ string) *Sparray[T] { return group })
}

// GroupByWith is [GroupBy] with every group passed through valuesFn, which
// receives the group and its key.
//
//	counts := sparray.GroupByWith(words, firstLetter,
//	    func(g *sparray.Sparray[string], _ string) int { return g.Len() })
func GroupByWith[T, V any](s *Sparray[T], keyFn func(T) any, valuesFn func(*Sparray[T], string) V) *Mapping[V] {
	var order []string
	groups := make(map[string][]T)
	for _, item := range s.items {
		k := keyString(keyFn(item))
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}

	m := newMapping[V]()
	for _, k := range order {
		m.set(k, valuesFn(wrap(groups[k]), k))
	}
	return m
}

// IndexBy maps the key returned by keyFn to its element. When several
// elements share a key the last one wins, while the key keeps the position
// of its first occurrence.
func IndexBy[T any](s *Sparray[T], keyFn func(T) any) *Mapping[T] {
	return IndexByWith(s, keyFn, func(item T, _ string) T { return item })
}

// IndexByWith is [IndexBy] storing valueFn(element, key) instead of the
// element.
func IndexByWith[T, V any](s *Sparray[T], keyFn func(T) any, valueFn func(T, string) V) *Mapping[V] {
	m := newMapping[V]()
	for _, item := range s.items {
		k := keyString(keyFn(item))
		m.set(k, valueFn(item, k))
	}
	return m
}
