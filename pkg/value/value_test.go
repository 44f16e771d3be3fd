package value_test

import (
	"rickroll/pkg/value"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		v        value.Value
		expected string
	}{
		{value.NewInt(-42), "-42"},
		{value.NewFloat(4), "4"},
		{value.NewFloat(1.5), "1.5"},
		{value.NewBool(true), "TRUE"},
		{value.NewBool(false), "FALSE"},
		{value.NewChar('x'), "x"},
		{value.Undefined, "UNDEFINED"},
		{value.NewArray(), "[]"},
		{value.NewArray(value.NewInt(1), value.NewArray(value.NewChar('a')), value.NewBool(false)), "[1, [a], FALSE]"},
	}

	for _, test := range tests {
		if got := test.v.String(); got != test.expected {
			t.Errorf("expected %q, got %q", test.expected, got)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := value.NewArray(value.NewInt(1))
	outer := value.NewArray(inner)

	copied := outer.Clone()
	copied.Array[0].Array[0] = value.NewInt(99)

	if outer.Array[0].Array[0].Int != 1 {
		t.Errorf("clone shares storage with the original")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b     value.Value
		expected bool
	}{
		{value.NewInt(3), value.NewInt(3), true},
		{value.NewInt(3), value.NewFloat(3), true},
		{value.NewFloat(2.5), value.NewFloat(2), false},
		{value.NewInt(1), value.NewBool(true), false},
		{value.NewChar('a'), value.NewChar('a'), true},
		{value.Undefined, value.Undefined, true},
		{value.NewArray(value.NewInt(1)), value.NewArray(value.NewInt(1)), true},
		{value.NewArray(value.NewInt(1)), value.NewArray(value.NewInt(2)), false},
		{value.NewArray(), value.Undefined, false},
	}

	for _, test := range tests {
		if got := value.Equal(test.a, test.b); got != test.expected {
			t.Errorf("Equal(%#v, %#v): expected %v, got %v", test.a, test.b, test.expected, got)
		}
	}
}

func TestConstants(t *testing.T) {
	for _, name := range []string{"TRUE", "FALSE", "UNDEFINED", "ARRAY"} {
		if _, ok := value.FromConstant(name); !ok {
			t.Errorf("expected %s to be a constant", name)
		}
	}
	if _, ok := value.FromConstant("true"); ok {
		t.Errorf("constants are case sensitive")
	}
}

func TestScopeLookupOrder(t *testing.T) {
	s := value.NewScope()
	s.DeclareGlobal("g")
	s.Set("g", value.NewInt(1))

	s.Push()
	s.Declare("x")
	s.Set("x", value.NewInt(2))

	s.Push()
	s.Declare("x")
	s.Set("x", value.NewInt(3))

	if v, _ := s.Get("x"); v.Int != 3 {
		t.Errorf("expected innermost x=3, got %v", v)
	}

	s.Pop()
	if v, _ := s.Get("x"); v.Int != 2 {
		t.Errorf("expected outer x=2 after pop, got %v", v)
	}

	if !s.Set("g", value.NewInt(10)) {
		t.Fatalf("expected global assignment to succeed")
	}
	if v, _ := s.Get("g"); v.Int != 10 {
		t.Errorf("expected g=10, got %v", v)
	}

	if s.Set("missing", value.NewInt(0)) {
		t.Errorf("expected assignment to undeclared name to fail")
	}
}

func TestScopeNeverDropsGlobal(t *testing.T) {
	s := value.NewScope()
	s.Pop()
	s.Pop()
	if s.Depth() != 1 {
		t.Errorf("expected global context to survive, depth %d", s.Depth())
	}
}

func TestBeheadRestore(t *testing.T) {
	s := value.NewScope()
	s.DeclareGlobal("g")
	s.Push()
	s.Declare("a")
	s.Push()
	s.Declare("b")

	tail := s.Behead()
	if s.Depth() != 1 || len(tail) != 2 {
		t.Fatalf("expected depth 1 and tail 2, got %d and %d", s.Depth(), len(tail))
	}
	if s.Has("a") || s.Has("b") {
		t.Errorf("beheaded scope still sees locals")
	}
	if !s.Has("g") {
		t.Errorf("beheaded scope lost the global")
	}

	s.Restore(tail)
	if s.Depth() != 3 || !s.HasLocal("b") || !s.Has("a") {
		t.Errorf("restore did not rebuild the contexts")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := value.NewScope()
	s.Declare("arr")
	s.Set("arr", value.NewArray(value.NewInt(1)))

	v, _ := s.Get("arr")
	v.Array[0] = value.NewInt(5)

	again, _ := s.Get("arr")
	if again.Array[0].Int != 1 {
		t.Errorf("reading an array aliased the stored value")
	}
}
