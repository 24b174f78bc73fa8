// Package diag defines the compile-error value and its source-excerpt report.
package diag

import (
	"fmt"
	"strings"

	"github.com/oscarcs/bplus/compiler/internal/lexer"
)

// Error is a syntax or semantic failure carrying the offending token.
// It is returned up the call chain as a value; nothing panics.
type Error struct {
	Tok  lexer.Token
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Tok.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Tok.Line, e.Msg)
}

// New builds an Error for the given token, resolving the catalog key to a
// stable code ID (see catalog.go).
func New(tok lexer.Token, key, format string, args ...any) *Error {
	ce := MustLookup("parser", key, "BPP0000", key)
	return &Error{Tok: tok, Code: ce.ID, Msg: fmt.Sprintf(format, args...)}
}

// Render formats the report shown to the user: the line above, the offending
// line marked with '>', the line below, then the message.
func Render(src string, e *Error) string {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	n := e.Tok.Line // 1-based
	var b strings.Builder
	for i := n - 1; i <= n+1; i++ {
		if i < 1 || i > len(lines) {
			continue
		}
		mark := " "
		if i == n {
			mark = ">"
		}
		fmt.Fprintf(&b, "%s %3d | %s\n", mark, i, lines[i-1])
	}
	fmt.Fprintf(&b, "error[%s]: %s\n", e.Code, e.Msg)
	return b.String()
}
