package graphcalc_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/graphcalc"
)

func TestNames(t *testing.T) {
	want := []string{"cos", "e", "ln", "log", "pi", "sin", "sqrt", "tan"}
	got := graphcalc.Default().Names()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("wrong names: want %q, got %q", want, got)
	}
	// None of the names may trip the textual graphability check.
	for _, name := range got {
		if graphcalc.IsGraphable(name) {
			t.Errorf("%q looks graphable", name)
		}
	}
}

func TestConst(t *testing.T) {
	cases := []struct {
		name string
		want float64
		ok   bool
	}{
		{"pi", math.Pi, true},
		{"e", math.E, true},
		{"x", 0, false},
		{"sin", 0, false},
		{"PI", 0, false},
		{"", 0, false},
	}
	tab := graphcalc.Default()
	for _, c := range cases {
		got, ok := tab.Const(c.name)
		if ok != c.ok {
			t.Errorf("%q: want ok=%t, got %t", c.name, c.ok, ok)
		}
		if math.Abs(got-c.want) > 1e-15 {
			t.Errorf("%q: want %v, got %v", c.name, c.want, got)
		}
	}
}

func TestIsFunc(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"sin", true},
		{"cos", true},
		{"tan", true},
		{"ln", true},
		{"log", true},
		{"sqrt", true},
		{"exp", false},
		{"pi", false},
		{"x", false},
		{"Sin", false},
		{"", false},
	}
	tab := graphcalc.Default()
	for _, c := range cases {
		if got := tab.IsFunc(c.name); got != c.want {
			t.Errorf("IsFunc(%q): want %t, got %t", c.name, c.want, got)
		}
	}
}

func TestDefaultShared(t *testing.T) {
	if graphcalc.Default() != graphcalc.Default() {
		t.Error("Default made a new table")
	}
}
