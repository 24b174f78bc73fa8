package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/oscarcs/bplus/compiler/internal/cc"
)

// Build-and-run tests for generated programs. They exercise the whole stack
// including the system C compiler, so they skip when none is installed.
func TestBuildAndRunPrograms(t *testing.T) {
	bin, err := cc.Detect()
	if err != nil {
		t.Skipf("no C compiler found; skipping: %v", err)
	}

	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "conditional_chain_picks_first_true_branch",
			src: "if 1 {\n" +
				"print 1\n" +
				"} else if 0 {\n" +
				"print 2\n" +
				"} else {\n" +
				"print 3\n" +
				"}\n",
			want: "1\n",
		},
		{
			name: "for_upper_bound_exclusive",
			src:  "for i = 0..3 {\nprint i\n}\n",
			want: "0\n1\n2\n",
		},
		{
			name: "precedence_and_associativity",
			src:  "print 2 + 3 * 4\nprint 10 - 3 - 2\n",
			want: "14\n5\n",
		},
		{
			name: "goto_loop_terminates",
			src: "let i = 0\n" +
				"top:\n" +
				"print i\n" +
				"i = i + 1\n" +
				"if i < 3 {\n" +
				"goto top\n" +
				"}\n",
			want: "0\n1\n2\n",
		},
		{
			name: "while_countdown",
			src:  "let n = 3\nwhile n > 0 {\nprint n\nn = n - 1\n}\n",
			want: "3\n2\n1\n",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			srcPath := filepath.Join(dir, "prog.bp")
			if err := os.WriteFile(srcPath, []byte(c.src), 0o644); err != nil {
				t.Fatalf("write source: %v", err)
			}

			cPath := filepath.Join(dir, "prog.c")
			code := cmdBuild([]string{"--emit-c=" + cPath, "--cc=" + bin, srcPath})
			if code != 0 {
				t.Fatalf("bplusc build failed, exit=%d", code)
			}

			binPath := filepath.Join(dir, "prog")
			if runtime.GOOS == "windows" {
				binPath += ".exe"
			}
			out, err := exec.Command(binPath).Output()
			if err != nil {
				t.Fatalf("run generated binary: %v", err)
			}
			got := strings.ReplaceAll(string(out), "\r\n", "\n")
			if got != c.want {
				t.Fatalf("program output %q, want %q", got, c.want)
			}
		})
	}
}

func TestBuildReportsDiagnosticWithContext(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "bad.bp")
	if err := os.WriteFile(srcPath, []byte("let x = 1\nx = y\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	if code := cmdBuild([]string{"--emit-c=" + filepath.Join(dir, "bad.c"), srcPath}); code != 1 {
		t.Fatalf("build of bad program exited %d, want 1", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.c")); !os.IsNotExist(err) {
		t.Fatalf("failed build still wrote C output")
	}
}

func TestParseBuildArgsFlagsAnywhere(t *testing.T) {
	a, err := parseBuildArgs([]string{"prog.bp", "--cc=gcc", "--out=demo"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if a.file != "prog.bp" || a.cc != "gcc" || !a.link || a.out != "demo" {
		t.Fatalf("args parsed wrong: %+v", a)
	}

	a, err = parseBuildArgs([]string{"--cc", "prog.bp"})
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if !a.link || a.cc != "" || a.file != "prog.bp" {
		t.Fatalf("bare --cc parsed wrong: %+v", a)
	}

	if _, err := parseBuildArgs([]string{"--cc=gcc"}); err == nil {
		t.Fatalf("missing file should be a usage error")
	}
}
