package lexer

import (
	"strings"
	"unicode"
)

// Lexer scans B+ source left to right with one character of lookahead.
// It is total: malformed character sequences produce no token and no error
// (documented looseness; see the skip at the bottom of Next).
type Lexer struct {
	src  []rune
	i    int
	line int
}

func New(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1}
}

// Scan tokenizes src in full and brackets the result with the synthetic
// START and EOF tokens the parser expects.
func Scan(src string) []Token {
	lx := New(src)
	toks := []Token{{Kind: TokStart, Lex: "start", Line: 1}}
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == TokEOF {
			return toks
		}
	}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) make(kind TokKind, lex string, line int) Token {
	return Token{Kind: kind, Lex: lex, Line: line}
}

// Next returns the next token. It never fails on user input.
func (lx *Lexer) Next() Token {
	// Skip mid-line spaces/tabs
	for {
		ch, ok := lx.peek()
		if !ok || (ch != ' ' && ch != '\t') {
			break
		}
		lx.advance()
	}

	startLine := lx.line

	ch, ok := lx.peek()
	if !ok {
		return lx.make(TokEOF, "end", startLine)
	}

	// Line terminator: \n or \r (a \r\n pair counts once)
	if ch == '\n' || ch == '\r' {
		lx.advance()
		if ch == '\r' {
			lx.match('\n')
		}
		lx.line++
		return lx.make(TokNewline, "newline", startLine)
	}

	// Comment: // through end of line, elided entirely. The terminator is
	// not part of the comment and lexes as a NEWLINE on the next call.
	if ch == '/' && lx.i+1 < len(lx.src) && lx.src[lx.i+1] == '/' {
		for {
			ch, ok := lx.peek()
			if !ok || ch == '\n' || ch == '\r' {
				break
			}
			lx.advance()
		}
		return lx.Next()
	}

	// Keywords / identifiers: a letter followed by letters and digits.
	// Keyword matching is case-insensitive; identifiers keep their text.
	if unicode.IsLetter(ch) {
		lex := lx.scanWord()
		if kind, ok := keywordKind(strings.ToLower(lex)); ok {
			return lx.make(kind, lex, startLine)
		}
		return lx.make(TokIdent, lex, startLine)
	}

	// Numbers: a maximal digit run
	if unicode.IsDigit(ch) {
		return lx.make(TokNumber, lx.scanNumber(), startLine)
	}

	// Two-character operators before single characters (greedy-longest)
	if lx.match('>') {
		if lx.match('=') {
			return lx.make(TokGe, ">=", startLine)
		}
		return lx.make(TokGt, ">", startLine)
	}
	if lx.match('<') {
		if lx.match('=') {
			return lx.make(TokLe, "<=", startLine)
		}
		return lx.make(TokLt, "<", startLine)
	}
	if lx.match('=') {
		if lx.match('=') {
			return lx.make(TokEqEq, "==", startLine)
		}
		return lx.make(TokEq, "=", startLine)
	}
	if lx.match('.') {
		if lx.match('.') {
			return lx.make(TokDotDot, "..", startLine)
		}
		// lone '.' is not in the language; fall through to the skip below
		return lx.Next()
	}

	// Single-char operators/punctuation
	if lx.match('+') {
		return lx.make(TokPlus, "+", startLine)
	}
	if lx.match('-') {
		return lx.make(TokMinus, "-", startLine)
	}
	if lx.match('*') {
		return lx.make(TokStar, "*", startLine)
	}
	if lx.match('/') {
		return lx.make(TokSlash, "/", startLine)
	}
	if lx.match('!') {
		return lx.make(TokBang, "!", startLine)
	}
	if lx.match(':') {
		return lx.make(TokColon, ":", startLine)
	}
	if lx.match('(') {
		return lx.make(TokLParen, "(", startLine)
	}
	if lx.match(')') {
		return lx.make(TokRParen, ")", startLine)
	}
	if lx.match('{') {
		return lx.make(TokLBrace, "{", startLine)
	}
	if lx.match('}') {
		return lx.make(TokRBrace, "}", startLine)
	}

	// Unknown character: skip it and continue (lenient by contract)
	lx.advance()
	return lx.Next()
}

func (lx *Lexer) scanWord() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func (lx *Lexer) scanNumber() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}
