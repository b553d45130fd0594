package sparray_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/hasbyte1/go-sparray/sparray"
)

func TestMapTyped(t *testing.T) {
	s := sparray.Map(ints(1, 2, 3), func(n, _ int, _ *sparray.Sparray[int]) string { return strconv.Itoa(n * 2) })
	assertSlice(t, s.ToArray(), []string{"2", "4", "6"})
}

func TestFlatMapTyped(t *testing.T) {
	s := sparray.FlatMap(sparray.Of("ab", "c"), func(w string, _ int, _ *sparray.Sparray[string]) []rune {
		return []rune(w)
	})
	assertSlice(t, s.ToArray(), []rune{'a', 'b', 'c'})
}

func TestReduceTyped(t *testing.T) {
	joined := sparray.Reduce(ints(1, 2, 3), func(acc string, n, _ int, _ *sparray.Sparray[int]) string {
		return acc + strconv.Itoa(n)
	}, "")
	if joined != "123" {
		t.Fatalf("Reduce: got %q", joined)
	}

	reversed := sparray.ReduceRight(ints(1, 2, 3), func(acc string, n, _ int, _ *sparray.Sparray[int]) string {
		return acc + strconv.Itoa(n)
	}, "")
	if reversed != "321" {
		t.Fatalf("ReduceRight: got %q", reversed)
	}
}

func TestFlattenTyped(t *testing.T) {
	nested := sparray.Of(ints(1, 2), nil, ints(3))
	assertSlice(t, sparray.Flatten(nested).ToArray(), []int{1, 2, 3})
}

func TestCollapse(t *testing.T) {
	s := sparray.Of([]int{1}, nil, []int{2, 3})
	assertSlice(t, sparray.Collapse(s).ToArray(), []int{1, 2, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Sliding
// ─────────────────────────────────────────────────────────────────────────────

func windows(t *testing.T, s *sparray.Sparray[int], size int, step ...int) [][]int {
	t.Helper()
	w, err := sparray.Sliding(s, size, step...)
	if err != nil {
		t.Fatalf("Sliding(%d, %v): %v", size, step, err)
	}
	return sparray.Map(w, func(win *sparray.Sparray[int], _ int, _ *sparray.Sparray[*sparray.Sparray[int]]) []int {
		return win.ToArray()
	}).ToArray()
}

func assertWindows(t *testing.T, got, want [][]int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("windows: got %v want %v", got, want)
	}
	for i := range got {
		assertSlice(t, got[i], want[i])
	}
}

func TestSliding(t *testing.T) {
	s := ints(1, 2, 3, 4, 5)
	assertWindows(t, windows(t, s, 2, 1), [][]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}})
	assertWindows(t, windows(t, s, 2), [][]int{{1, 2}, {3, 4}, {5}})
	assertWindows(t, windows(t, s, 2, 3), [][]int{{1, 2}, {4, 5}})
	assertWindows(t, windows(t, s, 3, 2), [][]int{{1, 2, 3}, {3, 4, 5}})
	assertWindows(t, windows(t, s, 10), [][]int{{1, 2, 3, 4, 5}})
	assertWindows(t, windows(t, sparray.Empty[int](), 2), [][]int{})
}

func TestSlidingErrors(t *testing.T) {
	if _, err := sparray.Sliding(ints(1), 0); !errors.Is(err, sparray.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if _, err := sparray.Sliding(ints(1), 2, 0); !errors.Is(err, sparray.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestSumOf(t *testing.T) {
	if got := sparray.SumOf(ints(1, 2, 3)); got != 6 {
		t.Fatalf("SumOf: got %d", got)
	}
	if got := sparray.SumOf(sparray.Of(0.5, 0.25)); got != 0.75 {
		t.Fatalf("SumOf float: got %v", got)
	}
	if got := sparray.SumOf(sparray.Empty[int]()); got != 0 {
		t.Fatalf("SumOf empty: got %d", got)
	}
}

func TestMinOfMaxOf(t *testing.T) {
	if v, ok := sparray.MinOf(ints(3, 1, 2)); !ok || v != 1 {
		t.Fatalf("MinOf: got (%d, %v)", v, ok)
	}
	if v, ok := sparray.MaxOf(sparray.Of("b", "c", "a")); !ok || v != "c" {
		t.Fatalf("MaxOf: got (%q, %v)", v, ok)
	}
	if _, ok := sparray.MinOf(sparray.Empty[float64]()); ok {
		t.Fatal("MinOf of empty should report false")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumerate / Zip / Cross
// ─────────────────────────────────────────────────────────────────────────────

func TestEnumerate(t *testing.T) {
	e := sparray.Enumerate(sparray.Of("a", "b"))
	assertSlice(t, e.ToArray(), []sparray.Indexed[string]{{Index: 0, Value: "a"}, {Index: 1, Value: "b"}})
}

func TestZipMethod(t *testing.T) {
	rows := ints(1, 2, 3).Zip([]string{"a", "b"}, true)
	if rows.Len() != 3 {
		t.Fatalf("Zip: got %d rows want 3", rows.Len())
	}
	want := [][]any{
		{1, "a", true},
		{2, "b", true},
		{3, nil, true},
	}
	for i, row := range rows.Entries() {
		assertSlice(t, row.ToArray(), want[i])
	}
}

func TestZipMethodLongerOther(t *testing.T) {
	rows := ints(1).Zip(ints(7, 8), sparray.Of("x", "y", "z"))
	if rows.Len() != 3 {
		t.Fatalf("Zip: got %d rows want 3", rows.Len())
	}
	last, _ := rows.Last()
	assertSlice(t, last.ToArray(), []any{nil, nil, "z"})
}

func TestZipTyped(t *testing.T) {
	z := sparray.Zip(ints(1, 2), sparray.Of("a"))
	assertSlice(t, z.ToArray(), []sparray.Zipped[int, string]{
		{First: 1, OkFirst: true, Second: "a", OkSecond: true},
		{First: 2, OkFirst: true, Second: "", OkSecond: false},
	})
}

func TestCross(t *testing.T) {
	c := sparray.Cross(ints(1, 2), sparray.Of("a", "b"))
	assertSlice(t, c.ToArray(), []sparray.Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 1, Second: "b"},
		{First: 2, Second: "a"},
		{First: 2, Second: "b"},
	})
	if sparray.Cross(ints(1), sparray.Empty[int]()).Len() != 0 {
		t.Fatal("Cross with an empty side should be empty")
	}
}

func TestCrossWith(t *testing.T) {
	c := sparray.CrossWith(ints(1, 2), ints(10, 20), func(x, y int) int { return x * y })
	assertSlice(t, c.ToArray(), []int{10, 20, 20, 40})
}
