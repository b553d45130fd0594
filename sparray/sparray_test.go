package sparray_test

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/hasbyte1/go-sparray/sparray"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func ints(ns ...int) *sparray.Sparray[int] { return sparray.Of(ns...) }

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func mustRange[N sparray.Number](t *testing.T, bounds ...N) *sparray.Sparray[N] {
	t.Helper()
	s, err := sparray.Range(bounds...)
	if err != nil {
		t.Fatalf("Range(%v): %v", bounds, err)
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestLenAndSize(t *testing.T) {
	s := ints(1, 2, 3)
	if s.Len() != 3 || s.Size() != 3 {
		t.Fatalf("Len/Size: got %d/%d want 3", s.Len(), s.Size())
	}
	if !sparray.Empty[int]().IsEmpty() || ints(1).IsEmpty() {
		t.Fatal("IsEmpty failed")
	}
	if !ints(1).IsNotEmpty() || sparray.Empty[int]().IsNotEmpty() {
		t.Fatal("IsNotEmpty failed")
	}
}

func TestGet(t *testing.T) {
	s := ints(10, 20, 30)
	cases := []struct {
		index int
		want  int
		ok    bool
	}{
		{0, 10, true},
		{2, 30, true},
		{-1, 30, true},
		{-3, 10, true},
		{3, 0, false},
		{-4, 0, false},
	}
	for _, tc := range cases {
		got, ok := s.Get(tc.index)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Get(%d): got (%d, %v) want (%d, %v)", tc.index, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFirstLast(t *testing.T) {
	s := ints(1, 2, 3)
	if v, ok := s.First(); !ok || v != 1 {
		t.Fatalf("First: got (%d, %v)", v, ok)
	}
	if v, ok := s.Last(); !ok || v != 3 {
		t.Fatalf("Last: got (%d, %v)", v, ok)
	}
	if _, ok := sparray.Empty[int]().First(); ok {
		t.Fatal("First on empty should report false")
	}
	if _, ok := sparray.Empty[int]().Last(); ok {
		t.Fatal("Last on empty should report false")
	}
}

func TestFirstNLastN(t *testing.T) {
	s := ints(1, 2, 3, 4)
	assertSlice(t, s.FirstN(2).ToArray(), []int{1, 2})
	assertSlice(t, s.LastN(2).ToArray(), []int{3, 4})
	assertSlice(t, s.FirstN(10).ToArray(), []int{1, 2, 3, 4})
	assertSlice(t, s.LastN(10).ToArray(), []int{1, 2, 3, 4})
	assertSlice(t, s.FirstN(0).ToArray(), []int{})
	assertSlice(t, s.LastN(-1).ToArray(), []int{})
}

func TestToArrayIsCopy(t *testing.T) {
	s := ints(1, 2, 3)
	a := s.ToArray()
	a[0] = 99
	assertSlice(t, s.ToArray(), []int{1, 2, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

func TestKeysValuesEntries(t *testing.T) {
	s := sparray.Of("a", "b", "c")
	assertSlice(t, slices.Collect(s.Keys()), []int{0, 1, 2})
	assertSlice(t, slices.Collect(s.Values()), []string{"a", "b", "c"})

	var idx []int
	var vals []string
	for i, v := range s.Entries() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assertSlice(t, idx, []int{0, 1, 2})
	assertSlice(t, vals, []string{"a", "b", "c"})
}

func TestIteratorsAreIndependent(t *testing.T) {
	s := ints(1, 2, 3)
	seq := s.Values()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assertSlice(t, first, second)

	var got []int
	for v := range s.Values() {
		if v == 2 {
			break
		}
		got = append(got, v)
	}
	assertSlice(t, got, []int{1})
}

func TestForEach(t *testing.T) {
	s := ints(1, 2, 3)
	var sum, idx int
	ret := s.ForEach(func(n, i int, src *sparray.Sparray[int]) {
		if src != s {
			t.Fatal("ForEach should pass the receiver")
		}
		sum += n
		idx += i
	})
	if ret != s {
		t.Fatal("ForEach should return the receiver")
	}
	if sum != 6 || idx != 3 {
		t.Fatalf("ForEach: sum=%d idx=%d", sum, idx)
	}
}

func TestForEachMutatesSharedElements(t *testing.T) {
	type box struct{ n int }
	s := sparray.Of(&box{1}, &box{2})
	s.ForEach(func(b *box, _ int, _ *sparray.Sparray[*box]) { b.n *= 10 })
	if v, _ := s.Get(1); v.n != 20 {
		t.Fatalf("element should have been updated in place, got %d", v.n)
	}
}

func TestTap(t *testing.T) {
	s := ints(1, 2)
	var seen int
	if s.Tap(func(x *sparray.Sparray[int]) { seen = x.Len() }) != s {
		t.Fatal("Tap should return the receiver")
	}
	if seen != 2 {
		t.Fatalf("Tap: got %d", seen)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Debugging
// ─────────────────────────────────────────────────────────────────────────────

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	sparray.SetDebugOutput(&buf)
	defer sparray.SetDebugOutput(nil)

	s := ints(1, 2, 3)
	if s.Dump() != s {
		t.Fatal("Dump should return the receiver")
	}
	out := buf.String()
	for _, want := range []string{"sparray dump", "len=3", "[ 1, 2, 3 ]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output %q does not contain %q", out, want)
		}
	}
}

func TestDumpSilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	sparray.SetDebugOutput(&buf)
	sparray.SetDebugOutput(nil)
	ints(1).Dump()
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumerable
// ─────────────────────────────────────────────────────────────────────────────

func TestEnumerableInterface(t *testing.T) {
	var e sparray.Enumerable[int] = ints(4, 5)
	if e.Len() != 2 || e.IsEmpty() {
		t.Fatal("Enumerable: Len/IsEmpty")
	}
	c := sparray.CopyOf(e)
	assertSlice(t, c.ToArray(), []int{4, 5})
}
