// Package cc turns generated C into an executable by shelling out to
// whatever C compiler the machine has. The generated programs are
// freestanding C that only needs <stdio.h>, so no include paths or runtime
// sources are involved.
package cc

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

type Options struct {
	// CSource is the path to the generated C file.
	CSource string

	// Out is the desired executable path. If empty, it is derived from
	// CSource by dropping the extension (plus .exe on Windows).
	Out string

	// CCBin is an optional explicit compiler (e.g. "clang", "gcc", "cl").
	// If empty, one is detected.
	CCBin string

	// ExtraArgs lets callers pass additional flags.
	ExtraArgs []string

	// DryRun validates options and detection without invoking the compiler.
	DryRun bool
}

// Compile compiles the generated C file to an executable. It picks a
// sensible default compiler per-OS and requires no user flags.
func Compile(opts Options) error {
	if opts.CSource == "" {
		return errors.New("cc: CSource must be set")
	}
	srcAbs, err := filepath.Abs(opts.CSource)
	if err != nil {
		return fmt.Errorf("cc: resolve CSource: %w", err)
	}
	if _, err := os.Stat(srcAbs); err != nil {
		return fmt.Errorf("cc: source does not exist: %s", srcAbs)
	}

	out := opts.Out
	if out == "" {
		out = strings.TrimSuffix(srcAbs, filepath.Ext(srcAbs))
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(out), ".exe") {
		out += ".exe"
	}
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("cc: resolve Out: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outAbs), 0o755); err != nil {
		return fmt.Errorf("cc: create out dir: %w", err)
	}

	bin := opts.CCBin
	if bin == "" {
		bin, err = Detect()
		if err != nil {
			return err
		}
	}

	args := constructArgs(bin, srcAbs, outAbs, opts.ExtraArgs)
	if opts.DryRun {
		return nil
	}

	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cc: compilation failed: %w", err)
	}
	return nil
}

// Detect picks a C compiler: the BPLUS_CC env override first, then the
// usual suspects per-OS.
func Detect() (string, error) {
	if v := os.Getenv("BPLUS_CC"); v != "" {
		if _, err := exec.LookPath(v); err == nil {
			return v, nil
		}
	}

	if runtime.GOOS == "windows" {
		for _, c := range []string{"clang", "cl", "gcc"} {
			if hasCmd(c) {
				return c, nil
			}
		}
		return "", errors.New("cc: no compiler found (tried clang, cl, gcc)")
	}

	for _, c := range []string{"clang", "gcc", "cc"} {
		if hasCmd(c) {
			return c, nil
		}
	}
	return "", errors.New("cc: no compiler found (need clang or gcc)")
}

func hasCmd(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func constructArgs(bin, srcAbs, outAbs string, extra []string) []string {
	if strings.EqualFold(bin, "cl") {
		// cl /nologo src /Fe:out.exe
		args := []string{
			"/nologo",
			srcAbs,
			"/Fe:" + outAbs,
			// Silence MSVC deprecation spam for scanf:
			"/D_CRT_SECURE_NO_WARNINGS",
		}
		return append(args, extra...)
	}

	// gcc/clang: cc src -o out
	args := []string{srcAbs, "-o", outAbs}
	return append(args, extra...)
}
