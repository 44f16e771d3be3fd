package stack_test

import (
	"rickroll/pkg/stack"
	"testing"
)

func TestStackOrder(t *testing.T) {
	s := stack.NewStack(1, 2)
	s.Push(3)

	if s.Size() != 3 {
		t.Fatalf("expected size 3, got %d", s.Size())
	}

	if top := s.Peek(); top != 3 {
		t.Errorf("expected peek 3, got %d", top)
	}

	for _, want := range []int{3, 2, 1} {
		if got := s.Pop(); got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}

	if !s.Empty() {
		t.Errorf("expected empty stack")
	}
}

func TestStackEmptyPop(t *testing.T) {
	s := stack.NewStack[string]()
	if got := s.Pop(); got != "" {
		t.Errorf("expected zero value, got %q", got)
	}
	if got := s.Peek(); got != "" {
		t.Errorf("expected zero value, got %q", got)
	}
}

func TestStackClear(t *testing.T) {
	s := stack.NewStack("a", "b")
	s.Clear()
	if s.Size() != 0 || len(s.Array()) != 0 {
		t.Errorf("expected cleared stack, got %v", s.Array())
	}
	s.Push("c")
	if s.Peek() != "c" {
		t.Errorf("expected c on top after clear")
	}
}
