package sparray

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Natural ordering ranks values of different categories before comparing
// within a category: nil < bool < number < string < everything else.
const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func rankOf(v reflect.Value) int {
	if !v.IsValid() {
		return rankNil
	}
	switch v.Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rankNumber
	case reflect.String:
		return rankString
	}
	return rankOther
}

// compareNatural orders a and b the way Sort does without a comparator:
// numbers numerically (across int, uint and float kinds), strings
// lexicographically, false before true. Values outside those categories
// compare by their fmt.Sprint text.
func compareNatural(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ra, rb := rankOf(va), rankOf(vb)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankBool:
		x, y := va.Bool(), vb.Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case rankNumber:
		return compareNumbers(va, vb)
	case rankString:
		return strings.Compare(va.String(), vb.String())
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

// compareNumbers compares two numeric values exactly when both are signed
// or both unsigned integers, and as float64 otherwise.
func compareNumbers(a, b reflect.Value) int {
	ka, kb := a.Kind(), b.Kind()
	switch {
	case isSigned(ka) && isSigned(kb):
		return cmp.Compare(a.Int(), b.Int())
	case isUnsigned(ka) && isUnsigned(kb):
		return cmp.Compare(a.Uint(), b.Uint())
	}
	return cmp.Compare(floatOf(a), floatOf(b))
}

func floatOf(v reflect.Value) float64 {
	switch {
	case isSigned(v.Kind()):
		return float64(v.Int())
	case isUnsigned(v.Kind()):
		return float64(v.Uint())
	}
	return v.Float()
}

// toFloat converts any numeric value, including named numeric types, to
// float64. The second result is false for non-numeric values.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	rv := reflect.ValueOf(v)
	if rankOf(rv) != rankNumber {
		return 0, false
	}
	return floatOf(rv), true
}

// same reports whether a and b are the same element: numbers by value across
// numeric kinds, other comparable values with ==, and slices, maps and funcs
// by identity.
func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if rankOf(va) == rankNumber && rankOf(vb) == rankNumber {
		return compareNumbers(va, vb) == 0
	}
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// nanKey stands in for every NaN so that NaNs collapse to one key, matching
// same.
type nanKey struct{}

// hashKey returns a map key consistent with same, or false when v can only
// be compared by identity.
func hashKey(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	rv := reflect.ValueOf(v)
	switch {
	case isSigned(rv.Kind()):
		return rv.Int(), true
	case isUnsigned(rv.Kind()):
		if u := rv.Uint(); u <= math.MaxInt64 {
			return int64(u), true
		}
		return rv.Uint(), true
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return nanKey{}, true
		}
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), true
		}
		return f, true
	}
	if rv.Comparable() {
		return v, true
	}
	return nil, false
}
