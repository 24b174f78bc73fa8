package main

import (
	"errors"
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/oscarcs/bplus/compiler/internal/build"
	"github.com/oscarcs/bplus/compiler/internal/cc"
	"github.com/oscarcs/bplus/compiler/internal/term"
)

/* ---------- run ---------- */

type runArgs struct {
	cc      string
	file    string
	verbose bool
}

func parseRunArgs(argv []string) (runArgs, error) {
	var a runArgs
	for _, s := range argv {
		switch {
		case strings.HasPrefix(s, "--cc="):
			a.cc = s[len("--cc="):]
		case s == "--verbose":
			a.verbose = true
		case !strings.HasPrefix(s, "-") && a.file == "":
			a.file = s
		default:
			return a, flag.ErrHelp
		}
	}
	if a.file == "" {
		return a, flag.ErrHelp
	}
	return a, nil
}

func cmdRun(args []string) int {
	a, err := parseRunArgs(args)
	if err != nil {
		term.Eprintln("usage: bplusc run [--cc=bin] [--verbose] <file.bp>")
		return 2
	}

	csrc, err := build.File(a.file, build.Options{Verbose: a.verbose})
	if err != nil {
		reportCompileError(a.file, err)
		return 1
	}

	tmp, err := os.MkdirTemp("", "bplusc-run-")
	if err != nil {
		term.Eprintf("mkdtemp: %v\n", err)
		return 1
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	base := strings.TrimSuffix(filepath.Base(a.file), filepath.Ext(a.file))
	cpath := filepath.Join(tmp, base+".c")
	if err := os.WriteFile(cpath, []byte(csrc), 0o644); err != nil {
		term.Eprintf("write %s: %v\n", cpath, err)
		return 1
	}

	binPath := filepath.Join(tmp, base)
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}
	if err := cc.Compile(cc.Options{CSource: cpath, Out: binPath, CCBin: a.cc}); err != nil {
		term.Eprintf("%v\n", err)
		return 1
	}

	cmd := exec.Command(binPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var xerr *exec.ExitError
		if errors.As(err, &xerr) {
			return xerr.ExitCode()
		}
		term.Eprintf("run: %v\n", err)
		return 1
	}
	return 0
}
