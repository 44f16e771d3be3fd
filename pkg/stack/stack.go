package stack

// Stack is a LIFO of arbitrary elements.
type Stack[T any] struct {
	a []T
	l int
}

// NewStack creates a new stack instance seeded with elm (bottom first)
func NewStack[T any](elm ...T) *Stack[T] {
	s := Stack[T]{
		a: make([]T, 0, len(elm)),
		l: 0,
	}

	for _, e := range elm {
		s.l++
		s.a = append(s.a, e)
	}

	return &s
}

// Push adds an element to the top of the stack
func (s *Stack[T]) Push(elm T) {
	s.l++
	s.a = append(s.a, elm)
}

// Pop removes and returns the top element of the stack.
// The zero value is returned when the stack is empty.
func (s *Stack[T]) Pop() T {
	var zero T
	if s.l < 1 {
		return zero
	}

	s.l--
	elm := s.a[s.l]
	s.a[s.l] = zero
	s.a = s.a[:s.l]

	return elm
}

// Peek returns the top element of the stack without removing it
func (s *Stack[T]) Peek() T {
	var zero T
	if s.l < 1 {
		return zero
	}

	return s.a[s.l-1]
}

// Size returns the number of elements on the stack
func (s *Stack[T]) Size() int {
	return s.l
}

// Empty reports whether the stack holds no elements
func (s *Stack[T]) Empty() bool {
	return s.l == 0
}

// Clear drops every element
func (s *Stack[T]) Clear() {
	clear(s.a)
	s.a = s.a[:0]
	s.l = 0
}

// Array returns the underlying array of the stack, bottom first
func (s *Stack[T]) Array() []T {
	return s.a
}
