package main

import (
	"os"

	"github.com/oscarcs/bplus/compiler/internal/lexer"
	"github.com/oscarcs/bplus/compiler/internal/term"
)

/* ---------- lex ---------- */

func cmdLex(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("read %s: %v\n", path, err)
		return 1
	}
	for _, t := range lexer.Scan(string(data)) {
		lex := t.Lex
		if len(lex) > 40 {
			lex = lex[:37] + "..."
		}
		term.Printf("%3d  %-8s  %q\n", t.Line, t.Kind, lex)
	}
	return 0
}
