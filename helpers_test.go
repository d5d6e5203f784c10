package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

/* general testing helpers */

func tcheck(tb testing.TB, err error) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s\n", err)
}

func tcheckf(tb testing.TB, err error, format string, args ...any) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s: %s\n", fmt.Sprintf(format, args...), err)
}

// readFile returns the content of path.
func readFile(tb testing.TB, path string) string {
	tb.Helper()

	buf, err := os.ReadFile(path)
	tcheckf(tb, err, "reading %s", path)
	return string(buf)
}

// absPath returns the absolute form of a path relative to the module root.
func absPath(tb testing.TB, elem ...string) string {
	tb.Helper()

	path, err := filepath.Abs(filepath.Join(elem...))
	tcheck(tb, err)
	return path
}
