// Package build is the front door of the pipeline: source text in, C text
// out. Each call owns its own tokens, tables and output; nothing is shared
// across calls, so independent compilations may run concurrently.
package build

import (
	"fmt"
	"io"
	"os"

	"github.com/oscarcs/bplus/compiler/internal/ast"
	cgen "github.com/oscarcs/bplus/compiler/internal/codegen/c"
	"github.com/oscarcs/bplus/compiler/internal/lexer"
	"github.com/oscarcs/bplus/compiler/internal/parser"
	"github.com/oscarcs/bplus/compiler/internal/term"
)

// Options configures one compilation. Tracing is per-call: a sink the caller
// hands in, not ambient process state.
type Options struct {
	// Verbose enables stage tracing.
	Verbose bool

	// Trace receives the stage trace when Verbose is set. Nil means stderr.
	Trace io.Writer
}

func (o Options) trace() io.Writer {
	if !o.Verbose {
		return io.Discard
	}
	if o.Trace != nil {
		return o.Trace
	}
	return os.Stderr
}

// Source compiles B+ source text to C source text. On failure it returns an
// empty string and the compile error (a *diag.Error for syntax/semantic
// failures); there is no partial output.
func Source(src string, opts Options) (string, error) {
	w := opts.trace()

	toks := lexer.Scan(src)
	term.Wprintf(w, "lex: %d tokens\n", len(toks))

	prog, err := parser.Parse(toks)
	if err != nil {
		return "", err
	}
	term.Wprintf(w, "parse: %d top-level statements\n", len(prog.Stmts))

	out := cgen.EmitProgram(prog)
	term.Wprintf(w, "emit: %d bytes of C\n", len(out))
	return out, nil
}

// File reads path and compiles it via Source.
func File(path string, opts Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Source(string(data), opts)
}

// ParseFile reads path and returns its AST, for tooling that stops before
// emission (the CLI parse command).
func ParseFile(path string, opts Options) (*ast.Program, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	w := opts.trace()
	src := string(data)

	toks := lexer.Scan(src)
	term.Wprintf(w, "lex: %d tokens\n", len(toks))

	prog, err := parser.Parse(toks)
	if err != nil {
		return nil, src, err
	}
	term.Wprintf(w, "parse: %d top-level statements\n", len(prog.Stmts))
	return prog, src, nil
}
