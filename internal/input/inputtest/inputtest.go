// Package inputtest loads puzzle fixtures from a test's testdata directory.
package inputtest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Demo returns dir/demo-input.txt, failing the test if it cannot be read.
func Demo(t *testing.T, dir string) string {
	t.Helper()
	return DemoPart(t, dir, 0)
}

// DemoPart returns the demo fixture for part, falling back to
// demo-input.txt when no part-specific fixture exists.
func DemoPart(t *testing.T, dir string, part int) string {
	t.Helper()
	s, err := input.Source{Dir: dir, Demo: true, Part: part}.Read()
	require.NoError(t, err)
	return s
}

// File returns dir/name, failing the test if it cannot be read.
func File(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// Real returns dir/input.txt. The test is skipped in demo mode or when the
// personal puzzle input has not been placed next to the fixtures, and in
// short mode.
func Real(t *testing.T, dir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("short mode")
	}
	if input.DemoMode() {
		t.Skip("DEMO_MODE is set")
	}
	s, err := input.Source{Dir: dir}.Read()
	if errors.Is(err, types.ErrInputNotFound) {
		t.Skipf("no puzzle input: %v", err)
	}
	require.NoError(t, err)
	return s
}
