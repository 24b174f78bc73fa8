package ast

import "testing"

func TestDumpProgram(t *testing.T) {
	prog := &Program{Stmts: []Stmt{
		&Assign{Name: "x", RHS: &Binary{Op: "+", Left: &NumberLit{Value: "1"}, Right: &NumberLit{Value: "2"}}},
		&Label{Name: "top"},
		&If{
			Conds: []Expr{
				&Binary{Op: "<", Left: &Ident{Name: "x"}, Right: &NumberLit{Value: "10"}},
				&NumberLit{Value: "1"},
			},
			Bodies: [][]Stmt{
				{&Print{X: &Ident{Name: "x"}}, &Goto{Name: "top"}},
				{&Read{}},
			},
		},
	}}

	got := DumpProgram(prog)
	want := "assign x = (1 + 2)\n" +
		"label top\n" +
		"if (x < 10):\n" +
		"  print x\n" +
		"  goto top\n" +
		"elif 1:\n" +
		"  read\n"
	if got != want {
		t.Fatalf("dump mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExprString(t *testing.T) {
	e := &Binary{
		Op:    "*",
		Left:  &Unary{Op: "-", X: &Ident{Name: "a"}},
		Right: &NumberLit{Value: "3"},
	}
	if got, want := ExprString(e), "((-a) * 3)"; got != want {
		t.Fatalf("ExprString = %q, want %q", got, want)
	}
}
