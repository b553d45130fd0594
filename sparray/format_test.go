package sparray_test

import (
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-sparray/sparray"
)

func TestString(t *testing.T) {
	cases := []struct {
		name string
		got  fmt.Stringer
		want string
	}{
		{"ints", ints(1, 2, 3), "[ 1, 2, 3 ]"},
		{"empty", sparray.Empty[int](), "[ ]"},
		{"mixed", sparray.From("a", 1.5, true), "[ a, 1.5, true ]"},
		{"nested", sparray.Of(ints(1), ints()), "[ [ 1 ], [ ] ]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.got.String(); got != tc.want {
				t.Fatalf("String: got %q want %q", got, tc.want)
			}
		})
	}
	if got := fmt.Sprint(ints(4)); got != "[ 4 ]" {
		t.Fatalf("fmt.Sprint: got %q", got)
	}
}

func TestJoin(t *testing.T) {
	if got := ints(1, 2, 3).Join("-"); got != "1-2-3" {
		t.Fatalf("Join: got %q", got)
	}
	if got := sparray.From("a", nil, "b").Join(","); got != "a,,b" {
		t.Fatalf("Join with nil: got %q", got)
	}
	if got := sparray.Empty[int]().Join(","); got != "" {
		t.Fatalf("Join of empty: got %q", got)
	}
}

func TestJoinFunc(t *testing.T) {
	var calls [][2]int
	got := sparray.Of("a", "b", "c", "d").JoinFunc(func(fromStart, fromEnd int) string {
		calls = append(calls, [2]int{fromStart, fromEnd})
		if fromEnd == 0 {
			return " and "
		}
		return ", "
	})
	if got != "a, b, c and d" {
		t.Fatalf("JoinFunc: got %q", got)
	}
	assertSlice(t, calls, [][2]int{{0, 2}, {1, 1}, {2, 0}})

	n := 0
	sparray.Of("x").JoinFunc(func(int, int) string { n++; return "" })
	if n != 0 {
		t.Fatalf("a single element has no gaps, fn was called %d times", n)
	}
}

func TestToLocaleString(t *testing.T) {
	got := sparray.From(1234567, "x", sparray.From(1000, nil)).ToLocaleString(language.English)
	if want := "1,234,567,x,1,000,"; got != want {
		t.Fatalf("ToLocaleString: got %q want %q", got, want)
	}
}

func TestToJSON(t *testing.T) {
	out, err := ints(1, 2).ToJSON()
	if err != nil || string(out) != "[1,2]" {
		t.Fatalf("ToJSON: got (%s, %v)", out, err)
	}
	out, _ = sparray.Empty[string]().ToJSON()
	if string(out) != "[]" {
		t.Fatalf("ToJSON of empty: got %s", out)
	}

	type wrapper struct {
		Items *sparray.Sparray[string] `json:"items"`
	}
	out, _ = sparray.Of(wrapper{sparray.Of("a")}).ToJSON()
	if string(out) != `[{"items":["a"]}]` {
		t.Fatalf("nested ToJSON: got %s", out)
	}
}

func TestToYAML(t *testing.T) {
	out, err := sparray.Of("a", "b").ToYAML()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(out)); got != "- a\n- b" {
		t.Fatalf("ToYAML: got %q", got)
	}

	var back []string
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, back, []string{"a", "b"})
}
