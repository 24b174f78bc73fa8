package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/oscarcs/bplus/compiler/internal/build"
	"github.com/oscarcs/bplus/compiler/internal/cc"
	"github.com/oscarcs/bplus/compiler/internal/diag"
	"github.com/oscarcs/bplus/compiler/internal/term"
)

/* ---------- build (flags anywhere) ---------- */

type buildArgs struct {
	cc      string // compiler binary; meaningful when link is set
	link    bool   // --cc given at all
	out     string
	emitC   string
	file    string
	verbose bool
}

func parseBuildArgs(argv []string) (buildArgs, error) {
	var a buildArgs
	i := 0
	for i < len(argv) {
		s := argv[i]
		if s == "--" {
			i++
			break
		}
		switch {
		case s == "--cc":
			a.link = true
			i++
			continue
		case strings.HasPrefix(s, "--cc="):
			a.link = true
			a.cc = s[len("--cc="):]
			i++
			continue
		case strings.HasPrefix(s, "--out="):
			a.out = s[len("--out="):]
			i++
			continue
		case strings.HasPrefix(s, "--emit-c="):
			a.emitC = s[len("--emit-c="):]
			i++
			continue
		case s == "--verbose":
			a.verbose = true
			i++
			continue
		}
		if !strings.HasPrefix(s, "-") && a.file == "" {
			a.file = s
			i++
			continue
		}
		if strings.HasPrefix(s, "-") {
			return a, flag.ErrHelp
		}
		i++
	}
	for i < len(argv) && a.file == "" {
		if !strings.HasPrefix(argv[i], "-") {
			a.file = argv[i]
		}
		i++
	}
	if a.file == "" {
		return a, flag.ErrHelp
	}
	return a, nil
}

func cmdBuild(args []string) int {
	a, err := parseBuildArgs(args)
	if err != nil {
		term.Eprintln("usage: bplusc build [--cc[=bin]] [--out=name] [--emit-c=path] [--verbose] <file.bp>")
		return 2
	}

	csrc, err := build.File(a.file, build.Options{Verbose: a.verbose})
	if err != nil {
		reportCompileError(a.file, err)
		return 1
	}

	// Emit C — name based on the entry file basename unless --emit-c is set
	base := strings.TrimSuffix(filepath.Base(a.file), filepath.Ext(a.file))
	cpath := a.emitC
	if cpath == "" {
		cpath = filepath.Join("gen", "out", base+".c")
	}
	if err := os.MkdirAll(filepath.Dir(cpath), 0o755); err != nil {
		term.Eprintf("mkdir %s: %v\n", filepath.Dir(cpath), err)
		return 1
	}
	if err := os.WriteFile(cpath, []byte(csrc), 0o644); err != nil {
		term.Eprintf("write %s: %v\n", cpath, err)
		return 1
	}
	term.Eprintf("wrote %s\n", cpath)

	// Optionally compile to a binary next to the C file
	if a.link {
		outName := a.out
		if outName == "" {
			outName = base
		}
		binPath := filepath.Join(filepath.Dir(cpath), outName)
		if err := cc.Compile(cc.Options{CSource: cpath, Out: binPath, CCBin: a.cc}); err != nil {
			term.Eprintf("%v\n", err)
			return 1
		}
		term.Eprintf("built %s\n", binPath)
	}
	return 0
}

// reportCompileError renders a diag error with source context when it can,
// and falls back to plain printing for I/O errors.
func reportCompileError(file string, err error) {
	var derr *diag.Error
	if errors.As(err, &derr) {
		if data, rerr := os.ReadFile(file); rerr == nil {
			term.Eprintf("%s", diag.Render(string(data), derr))
			return
		}
	}
	term.Eprintf("%v\n", err)
}
