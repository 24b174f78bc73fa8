package ast

import (
	"fmt"
	"strings"
)

/*** NODES ***/

type Node interface{ node() }

// Program is the root: the whole source as an ordered statement list.
type Program struct {
	Stmts []Stmt
}

func (Program) node() {}

/*** STATEMENTS ***/

type Stmt interface {
	Node
	stmt()
}

// Assign covers both `let x = e` and plain reassignment `x = e`; by the time
// the tree exists the distinction no longer matters.
type Assign struct {
	Name string
	RHS  Expr
}

func (Assign) node() {}
func (Assign) stmt() {}

type Label struct{ Name string }

func (Label) node() {}
func (Label) stmt() {}

type Goto struct{ Name string }

func (Goto) node() {}
func (Goto) stmt() {}

// If holds the whole if/else-if/else chain as parallel slices of equal,
// non-zero length. Index 0 is the `if` branch; a trailing `else` is stored
// with an always-true condition so every branch has one.
type If struct {
	Conds  []Expr
	Bodies [][]Stmt
}

func (If) node() {}
func (If) stmt() {}

// For iterates Name ascending from Start to End, upper bound exclusive.
type For struct {
	Name  string
	Start Expr
	End   Expr
	Body  []Stmt
}

func (For) node() {}
func (For) stmt() {}

type While struct {
	Cond Expr
	Body []Stmt
}

func (While) node() {}
func (While) stmt() {}

type Print struct{ X Expr }

func (Print) node() {}
func (Print) stmt() {}

type Read struct{}

func (Read) node() {}
func (Read) stmt() {}

/*** EXPRESSIONS ***/

type Expr interface {
	Node
	expr()
}

// NumberLit keeps the literal text of an integer; nothing downstream needs
// its numeric value.
type NumberLit struct{ Value string }

func (*NumberLit) node() {}
func (*NumberLit) expr() {}

type Ident struct{ Name string }

func (*Ident) node() {}
func (*Ident) expr() {}

type Unary struct {
	Op string
	X  Expr
}

func (*Unary) node() {}
func (*Unary) expr() {}

type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

func (*Binary) node() {}
func (*Binary) expr() {}

/*** DUMP (pretty outline for CLI) ***/

func DumpProgram(p *Program) string {
	var b strings.Builder
	writeStmts(&b, p.Stmts, 0)
	return b.String()
}

func writeStmts(b *strings.Builder, stmts []Stmt, depth int) {
	for _, s := range stmts {
		writeStmt(b, s, depth)
	}
}

func writeStmt(b *strings.Builder, s Stmt, depth int) {
	ind := strings.Repeat("  ", depth)
	switch st := s.(type) {
	case *Assign:
		fmt.Fprintf(b, "%sassign %s = %s\n", ind, st.Name, ExprString(st.RHS))
	case *Label:
		fmt.Fprintf(b, "%slabel %s\n", ind, st.Name)
	case *Goto:
		fmt.Fprintf(b, "%sgoto %s\n", ind, st.Name)
	case *If:
		for i := range st.Conds {
			kw := "if"
			if i > 0 {
				kw = "elif"
			}
			fmt.Fprintf(b, "%s%s %s:\n", ind, kw, ExprString(st.Conds[i]))
			writeStmts(b, st.Bodies[i], depth+1)
		}
	case *For:
		fmt.Fprintf(b, "%sfor %s = %s .. %s:\n", ind, st.Name, ExprString(st.Start), ExprString(st.End))
		writeStmts(b, st.Body, depth+1)
	case *While:
		fmt.Fprintf(b, "%swhile %s:\n", ind, ExprString(st.Cond))
		writeStmts(b, st.Body, depth+1)
	case *Print:
		fmt.Fprintf(b, "%sprint %s\n", ind, ExprString(st.X))
	case *Read:
		fmt.Fprintf(b, "%sread\n", ind)
	}
}

// ExprString renders an expression with explicit grouping, for dumps and tests.
func ExprString(e Expr) string {
	switch v := e.(type) {
	case *NumberLit:
		return v.Value
	case *Ident:
		return v.Name
	case *Unary:
		return "(" + v.Op + ExprString(v.X) + ")"
	case *Binary:
		return "(" + ExprString(v.Left) + " " + v.Op + " " + ExprString(v.Right) + ")"
	default:
		return "<expr>"
	}
}
