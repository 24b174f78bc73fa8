package parser

// symtab is the parser's flat, unscoped set of defined variable names. It
// lives for one Parse call and answers only "is this name defined". The
// emitter keeps its own separate set: that one models what has been declared
// in the output text, a different question.
type symtab struct {
	names map[string]bool
	order []string // insertion order, for stable dumps
}

func newSymtab() *symtab {
	return &symtab{names: make(map[string]bool)}
}

func (s *symtab) defined(name string) bool {
	return s.names[name]
}

func (s *symtab) define(name string) {
	if !s.names[name] {
		s.names[name] = true
		s.order = append(s.order, name)
	}
}

// all returns the defined names in insertion order.
func (s *symtab) all() []string {
	return s.order
}
