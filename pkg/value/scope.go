package value

// Context holds the bindings of one lexical block
type Context map[string]Value

// Scope is the stack of live contexts. Index 0 is the permanent global
// context and is never removed.
type Scope struct {
	contexts []Context
}

// NewScope creates a scope holding only the global context
func NewScope() *Scope {
	return &Scope{contexts: []Context{make(Context)}}
}

// Depth returns the number of contexts, global included
func (s *Scope) Depth() int {
	return len(s.contexts)
}

// Push opens a fresh innermost context
func (s *Scope) Push() {
	s.contexts = append(s.contexts, make(Context))
}

// Pop closes the innermost context. The global context is never popped.
func (s *Scope) Pop() {
	if len(s.contexts) > 1 {
		s.contexts = s.contexts[:len(s.contexts)-1]
	}
}

// Declare binds name to Undefined in the innermost context
func (s *Scope) Declare(name string) {
	s.contexts[len(s.contexts)-1][name] = Undefined
}

// DeclareGlobal binds name to Undefined in the global context
func (s *Scope) DeclareGlobal(name string) {
	s.contexts[0][name] = Undefined
}

// Has reports whether name is bound in any live context
func (s *Scope) Has(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// HasLocal reports whether name is bound in the innermost context
func (s *Scope) HasLocal(name string) bool {
	_, ok := s.contexts[len(s.contexts)-1][name]
	return ok
}

// HasGlobal reports whether name is bound in the global context
func (s *Scope) HasGlobal(name string) bool {
	_, ok := s.contexts[0][name]
	return ok
}

// Get returns a copy of the nearest binding of name
func (s *Scope) Get(name string) (Value, bool) {
	ctx, ok := s.lookup(name)
	if !ok {
		return Value{}, false
	}

	return ctx[name].Clone(), true
}

// Set assigns v to the nearest existing binding of name. It reports false
// when name is not declared anywhere.
func (s *Scope) Set(name string, v Value) bool {
	ctx, ok := s.lookup(name)
	if !ok {
		return false
	}

	ctx[name] = v.Clone()
	return true
}

// Behead strips the scope down to the global context and returns the
// removed contexts, outermost first, for a later Restore.
func (s *Scope) Behead() []Context {
	tail := append([]Context(nil), s.contexts[1:]...)
	s.contexts = s.contexts[:1]
	return tail
}

// Restore pushes back contexts previously removed by Behead
func (s *Scope) Restore(tail []Context) {
	s.contexts = append(s.contexts, tail...)
}

// Contexts returns the live contexts, global first
func (s *Scope) Contexts() []Context {
	return s.contexts
}

// lookup finds the innermost context declaring name
func (s *Scope) lookup(name string) (Context, bool) {
	for i := len(s.contexts) - 1; i >= 0; i-- {
		if _, ok := s.contexts[i][name]; ok {
			return s.contexts[i], true
		}
	}

	return nil, false
}
