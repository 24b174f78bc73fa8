package term

import (
	"fmt"
	"io"
	"os"
)

// Print helpers that ignore (n, err) to satisfy linters.
func Printf(format string, a ...any)  { _, _ = fmt.Printf(format, a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(os.Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(os.Stderr, a...) }

// Wprintf writes formatted text to any io.Writer, ignoring (n, err).
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }
