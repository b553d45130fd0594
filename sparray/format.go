package sparray

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// ─────────────────────────────────────────────────────────────────────────────
// Text
// ─────────────────────────────────────────────────────────────────────────────

// String renders the sequence as "[ 1, 2, 3 ]", or "[ ]" when empty. Nested
// sequences render the same way.
func (s *Sparray[T]) String() string {
	if len(s.items) == 0 {
		return "[ ]"
	}
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fmt.Sprint(item)
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

func joinText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Join concatenates the elements' text with sep between consecutive
// elements. nil elements render as the empty string.
func (s *Sparray[T]) Join(sep string) string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = joinText(any(item))
	}
	return strings.Join(parts, sep)
}

// JoinFunc is [Sparray.Join] with a separator computed per gap. fn is called
// once for each of the Len()-1 gaps with the gap's position counted from the
// start and from the end.
//
//	sparray.Of("a", "b", "c").JoinFunc(func(_, fromEnd int) string {
//	    if fromEnd == 0 {
//	        return " and "
//	    }
//	    return ", "
//	}) // → "a, b and c"
func (s *Sparray[T]) JoinFunc(fn func(fromStart, fromEnd int) string) string {
	var b strings.Builder
	gaps := len(s.items) - 1
	for i, item := range s.items {
		if i > 0 {
			b.WriteString(fn(i-1, gaps-i))
		}
		b.WriteString(joinText(any(item)))
	}
	return b.String()
}

// ToLocaleString renders every element for the given locale and joins them
// with ",". Numbers get the locale's digit grouping and decimal mark; nested
// sequences are rendered recursively.
//
//	sparray.Of(1234.5, 10).ToLocaleString(language.German) // → "1.234,5,10"
func (s *Sparray[T]) ToLocaleString(tag language.Tag) string {
	return localeJoin(message.NewPrinter(tag), s.anyItems())
}

func localeJoin(p *message.Printer, items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case nil:
		case anyEnumerable:
			parts[i] = localeJoin(p, v.anyItems())
		case string:
			parts[i] = v
		default:
			parts[i] = p.Sprint(v)
		}
	}
	return strings.Join(parts, ",")
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON encodes the elements as a JSON array.
func (s *Sparray[T]) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// MarshalJSON implements [json.Marshaler]; an empty sequence encodes as [].
func (s *Sparray[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.items)
}

// ToYAML encodes the elements as a YAML sequence.
func (s *Sparray[T]) ToYAML() ([]byte, error) {
	return yaml.Marshal(s)
}

// MarshalYAML implements [yaml.Marshaler].
func (s *Sparray[T]) MarshalYAML() (any, error) {
	return s.items, nil
}
