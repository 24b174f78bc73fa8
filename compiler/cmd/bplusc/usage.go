package main

import "github.com/oscarcs/bplus/compiler/internal/term"

func usage() {
	term.Eprintln("bplusc — B+ compiler")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  bplusc <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  lex <file>                                Lex a .bp file and print tokens")
	term.Eprintln("  parse [--verbose] <file>                  Parse a .bp file and print AST outline")
	term.Eprintln("  build [--cc[=bin]] [--out=name] [--emit-c=path] [--verbose] <file.bp>")
	term.Eprintln("                                            (flags may appear before or after the file)")
	term.Eprintln("  run [--cc=bin] [--verbose] <file.bp>      Build to a temp dir and execute")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - goto targets are not checked at parse time; an unknown label is a C error downstream.")
	term.Eprintln("")
	term.Eprintln("Outputs:")
	term.Eprintln("  generated C:      gen/out/<basename>.c (or --emit-c path)")
	term.Eprintln("  binary (if --cc): gen/out/<out|basename>")
}
