package main

import (
	"errors"
	"strings"

	"github.com/oscarcs/bplus/compiler/internal/ast"
	"github.com/oscarcs/bplus/compiler/internal/build"
	"github.com/oscarcs/bplus/compiler/internal/diag"
	"github.com/oscarcs/bplus/compiler/internal/term"
)

/* ---------- parse ---------- */

func cmdParse(args []string) int {
	verbose := false
	var file string

	for _, s := range args {
		switch {
		case s == "--verbose":
			verbose = true
		case !strings.HasPrefix(s, "-") && file == "":
			file = s
		default:
			term.Eprintln("usage: bplusc parse [--verbose] <file.bp>")
			return 2
		}
	}
	if file == "" {
		term.Eprintln("usage: bplusc parse [--verbose] <file.bp>")
		return 2
	}

	prog, src, err := build.ParseFile(file, build.Options{Verbose: verbose})
	if err != nil {
		var derr *diag.Error
		if errors.As(err, &derr) {
			term.Eprintf("%s", diag.Render(src, derr))
		} else {
			term.Eprintf("%v\n", err)
		}
		return 1
	}

	term.Printf("%s", ast.DumpProgram(prog))
	return 0
}
