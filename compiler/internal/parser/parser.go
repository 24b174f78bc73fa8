// Package parser builds the AST by recursive descent over the token slice,
// with precedence climbing for expressions. All syntactic and definedness
// checks happen here; a tree that comes out is safe to hand to the emitter.
package parser

import (
	"github.com/oscarcs/bplus/compiler/internal/ast"
	"github.com/oscarcs/bplus/compiler/internal/diag"
	"github.com/oscarcs/bplus/compiler/internal/lexer"
)

// binaryPrec maps binary operator kinds to their precedence (higher binds
// tighter). Presence in the table is what makes a token a binary operator.
var binaryPrec = map[lexer.TokKind]int{
	lexer.TokEqEq:  3,
	lexer.TokGt:    3,
	lexer.TokGe:    3,
	lexer.TokLt:    3,
	lexer.TokLe:    3,
	lexer.TokPlus:  4,
	lexer.TokMinus: 4,
	lexer.TokStar:  5,
	lexer.TokSlash: 5,
}

// unaryPrec is the precedence of prefix +, - and !.
const unaryPrec = 6

type Parser struct {
	toks []lexer.Token
	pos  int
	syms *symtab
}

// Parse consumes a Scan-shaped token slice and returns the program tree, or
// a *diag.Error identifying the offending token.
func Parse(toks []lexer.Token) (*ast.Program, error) {
	p := &Parser{toks: toks, syms: newSymtab()}
	p.accept(lexer.TokStart)
	p.skipSeparators()

	prog := &ast.Program{}
	for !p.at(lexer.TokEOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, s)
		if p.at(lexer.TokEOF) {
			break
		}
		if err := p.expectSeparator(); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

/* ---------- cursor ---------- */

// cur never runs off the end: past the last token it keeps returning EOF.
func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *Parser) next() {
	if p.pos < len(p.toks) {
		p.pos++
	}
}

func (p *Parser) at(k lexer.TokKind) bool { return p.cur().Kind == k }

func (p *Parser) accept(k lexer.TokKind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(k lexer.TokKind) (lexer.Token, error) {
	if !p.at(k) {
		return p.cur(), diag.New(p.cur(), "expected", "expected %v, got %q", k, p.cur().Lex)
	}
	t := p.cur()
	p.next()
	return t, nil
}

func (p *Parser) skipSeparators() {
	for p.accept(lexer.TokNewline) {
	}
}

// expectSeparator enforces at least one NEWLINE between statements, then
// swallows any extras.
func (p *Parser) expectSeparator() error {
	if !p.at(lexer.TokNewline) {
		return diag.New(p.cur(), "separator", "expected statement separator before %q", p.cur().Lex)
	}
	p.skipSeparators()
	return nil
}

/* ---------- statements ---------- */

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.cur().Kind {
	case lexer.TokLet:
		return p.parseLet()
	case lexer.TokIdent:
		return p.parseAssignOrLabel()
	case lexer.TokIf:
		return p.parseIf()
	case lexer.TokFor:
		return p.parseFor()
	case lexer.TokWhile:
		return p.parseWhile()
	case lexer.TokPrint:
		p.next()
		x, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		return &ast.Print{X: x}, nil
	case lexer.TokRead:
		p.next()
		return &ast.Read{}, nil
	case lexer.TokGoto:
		p.next()
		// goto targets are labels, which the symbol table does not track;
		// an unknown target surfaces downstream.
		name, err := p.expect(lexer.TokIdent)
		if err != nil {
			return nil, err
		}
		return &ast.Goto{Name: name.Lex}, nil
	default:
		return nil, diag.New(p.cur(), "unexpected", "unexpected %q", p.cur().Lex)
	}
}

func (p *Parser) parseLet() (ast.Stmt, error) {
	p.next() // let
	name, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if p.syms.defined(name.Lex) {
		return nil, diag.New(name, "redefined", "%q is already defined", name.Lex)
	}
	if _, err := p.expect(lexer.TokEq); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	p.syms.define(name.Lex)
	return &ast.Assign{Name: name.Lex, RHS: rhs}, nil
}

// parseAssignOrLabel handles a statement that starts with a bare identifier:
// either `x = expr` (reassignment) or `x:` (label).
func (p *Parser) parseAssignOrLabel() (ast.Stmt, error) {
	name := p.cur()
	p.next()
	switch {
	case p.accept(lexer.TokEq):
		if !p.syms.defined(name.Lex) {
			return nil, diag.New(name, "undefined", "%q is not defined", name.Lex)
		}
		rhs, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Name: name.Lex, RHS: rhs}, nil
	case p.accept(lexer.TokColon):
		return &ast.Label{Name: name.Lex}, nil
	default:
		return nil, diag.New(p.cur(), "expected", "expected \"=\" or \":\" after identifier, got %q", p.cur().Lex)
	}
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	p.next() // if
	cond, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Conds: []ast.Expr{cond}, Bodies: [][]ast.Stmt{body}}

	for p.at(lexer.TokElse) {
		p.next()
		if p.accept(lexer.TokIf) {
			cond, err := p.parseExpr(1)
			if err != nil {
				return nil, err
			}
			body, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			stmt.Conds = append(stmt.Conds, cond)
			stmt.Bodies = append(stmt.Bodies, body)
			continue
		}
		// final else: paired with an always-true condition so the chain
		// stays parallel
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		stmt.Conds = append(stmt.Conds, &ast.NumberLit{Value: "1"})
		stmt.Bodies = append(stmt.Bodies, body)
		break
	}
	return stmt, nil
}

func (p *Parser) parseFor() (ast.Stmt, error) {
	p.next() // for
	name, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	// the loop variable auto-registers if new and stays defined afterwards
	if !p.syms.defined(name.Lex) {
		p.syms.define(name.Lex)
	}
	p.accept(lexer.TokEq) // optional
	start, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokDotDot); err != nil {
		return nil, err
	}
	end, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Name: name.Lex, Start: start, End: end, Body: body}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	p.next() // while
	cond, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body}, nil
}

// parseBlock reads: optional separators, "{", optional separators, zero or
// more separated statements, "}". No separator is required before "}".
func (p *Parser) parseBlock() ([]ast.Stmt, error) {
	p.skipSeparators()
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	p.skipSeparators()

	var stmts []ast.Stmt
	for !p.at(lexer.TokRBrace) && !p.at(lexer.TokEOF) {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if p.at(lexer.TokRBrace) {
			break
		}
		if err := p.expectSeparator(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TokRBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}

/* ---------- expressions ---------- */

// parseExpr climbs precedence: atoms on the left, iterate on operators at or
// above minPrec, recurse right one level tighter for left associativity.
func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := binaryPrec[p.cur().Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := p.cur().Lex
		p.next()
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	switch p.cur().Kind {
	case lexer.TokLParen:
		open := p.cur()
		p.next()
		x, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		if !p.accept(lexer.TokRParen) {
			return nil, diag.New(open, "paren", "unmatched parenthesis")
		}
		return x, nil
	case lexer.TokPlus, lexer.TokMinus, lexer.TokBang:
		op := p.cur().Lex
		p.next()
		x, err := p.parseExpr(unaryPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, X: x}, nil
	case lexer.TokNumber:
		t := p.cur()
		p.next()
		return &ast.NumberLit{Value: t.Lex}, nil
	case lexer.TokIdent:
		t := p.cur()
		if !p.syms.defined(t.Lex) {
			return nil, diag.New(t, "undefined", "%q is not defined", t.Lex)
		}
		p.next()
		return &ast.Ident{Name: t.Lex}, nil
	default:
		return nil, diag.New(p.cur(), "unexpected", "unexpected %q in expression", p.cur().Lex)
	}
}
