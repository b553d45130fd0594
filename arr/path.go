package arr

import (
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-path lookup
//
// Lookup walks decoded JSON-like data (map[string]any and []any, nested to any
// depth) along a dot-separated path. Numeric segments index into slices and
// may be negative, counting from the end as in At.
//
//	v := map[string]any{
//	    "user": map[string]any{
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//
//	Lookup(v, "user.tags.0")   → "admin", true
//	Lookup(v, "user.tags.-1")  → "ops", true
//	Lookup(v, "user.missing")  → nil, false
// ─────────────────────────────────────────────────────────────────────────────

// Lookup returns the value found at the dot-notation path inside v.
// An empty path returns v itself. The second result is false when a segment
// does not exist or the value it would descend into is not a map or slice.
func Lookup(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}
	current := v
	for _, seg := range strings.Split(path, ".") {
		next, ok := descend(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func descend(v any, seg string) (any, bool) {
	switch c := v.(type) {
	case map[string]any:
		val, ok := c[seg]
		return val, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, false
		}
		return At(c, i)
	}
	return nil, false
}
