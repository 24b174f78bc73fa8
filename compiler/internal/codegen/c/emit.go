// Package cgen lowers a parsed B+ program to C source text. Emission is a
// total function over a valid tree: everything the emitter cannot handle was
// already rejected by the parser.
package cgen

import (
	"fmt"
	"strings"

	"github.com/oscarcs/bplus/compiler/internal/ast"
)

// readScratch receives `read` input. The underscore keeps it out of the B+
// identifier space (identifiers are letters and digits only).
const readScratch = "bplus_input_"

type emitter struct {
	lines    []string
	depth    int
	declared map[string]bool
}

// EmitProgram walks the tree once, depth-first, and returns complete C
// source: fixed prologue/epilogue around the translated statements.
func EmitProgram(p *ast.Program) string {
	e := &emitter{declared: make(map[string]bool)}
	e.line("#include <stdio.h>")
	e.line("")
	e.line("int main(void)")
	e.line("{")
	e.depth++
	e.stmts(p.Stmts)
	e.line("return 0;")
	e.depth--
	e.line("}")
	return strings.Join(e.lines, "\n") + "\n"
}

func (e *emitter) line(s string) {
	e.lines = append(e.lines, strings.Repeat("    ", e.depth)+s)
}

func (e *emitter) linef(format string, args ...any) {
	e.line(fmt.Sprintf(format, args...))
}

// declare emits `int name;` the first time a variable is seen. The set is
// derived here from scratch, independent of the parser's table: it tracks
// what is declared in the output text.
func (e *emitter) declare(name string) {
	if e.declared[name] {
		return
	}
	e.declared[name] = true
	e.linef("int %s;", name)
}

func (e *emitter) stmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		e.stmt(s)
	}
}

func (e *emitter) stmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Assign:
		e.declare(st.Name)
		e.linef("%s = %s;", st.Name, exprC(st.RHS))
	case *ast.Label:
		e.linef("%s:;", st.Name)
	case *ast.Goto:
		e.linef("goto %s;", st.Name)
	case *ast.If:
		// every branch after the first is an `else if`, including the
		// synthesized always-true one, so the chain emits uniformly
		for i := range st.Conds {
			if i == 0 {
				e.linef("if (%s) {", exprC(st.Conds[i]))
			} else {
				e.linef("} else if (%s) {", exprC(st.Conds[i]))
			}
			e.depth++
			e.stmts(st.Bodies[i])
			e.depth--
		}
		e.line("}")
	case *ast.For:
		e.declare(st.Name)
		e.linef("for (%s = %s; %s < %s; %s++) {", st.Name, exprC(st.Start), st.Name, exprC(st.End), st.Name)
		e.depth++
		e.stmts(st.Body)
		e.depth--
		e.line("}")
	case *ast.While:
		e.linef("while (%s) {", exprC(st.Cond))
		e.depth++
		e.stmts(st.Body)
		e.depth--
		e.line("}")
	case *ast.Print:
		e.linef("printf(\"%%d\\n\", %s);", exprC(st.X))
	case *ast.Read:
		e.declare(readScratch)
		e.linef("scanf(\"%%d\", &%s);", readScratch)
	}
}

// exprC renders an expression as C. Operands are parenthesized and the
// operator symbol is spliced verbatim; every B+ operator is also a C
// operator with the same meaning on ints.
func exprC(x ast.Expr) string {
	switch v := x.(type) {
	case *ast.NumberLit:
		return v.Value
	case *ast.Ident:
		return v.Name
	case *ast.Unary:
		return "(" + v.Op + exprC(v.X) + ")"
	case *ast.Binary:
		return "(" + exprC(v.Left) + " " + v.Op + " " + exprC(v.Right) + ")"
	default:
		return ""
	}
}
