// Package testhelpers provides shared test utilities for codegen packages.
package testhelpers

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite golden files with the generated output")

// ReadLines reads a file relative to the package directory and splits it into
// lines. A final newline does not produce an empty last line.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoErrorf(t, err, "read %s", path)
	return SplitLines(string(data))
}

// SplitLines splits content into lines, ignoring a final newline.
func SplitLines(content string) []string {
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// JoinLines joins lines and terminates the result with a newline.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// AssertGolden compares content with the golden file
// testdata/golden/<name>. Running the tests with -update rewrites the file
// instead.
func AssertGolden(t *testing.T, name string, content string) {
	t.Helper()
	p := filepath.Join("testdata", "golden", name)
	AssertGoldenAbs(t, p, content)
}

// AssertGoldenAbs compares content with the golden file at path.
func AssertGoldenAbs(t *testing.T, path string, content string) {
	t.Helper()
	if *update {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return
	}
	want, err := os.ReadFile(path)
	require.NoErrorf(t, err, "read golden file %s", path)
	if diff := cmp.Diff(string(want), content); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
	}
}
