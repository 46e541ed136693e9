// Package input locates and reads puzzle input files and holds the small
// line and block parsers shared by the puzzle packages.
//
// A puzzle directory contains input.txt (the real input) and one or more
// demo fixtures. DEMO_MODE=1 in the environment, or in a .env file in the
// working directory, switches every reader to the demo fixture.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// File and variable names understood by the helper.
const (
	EnvDemoMode = "DEMO_MODE"
	DemoFile    = "demo-input.txt"
	RealFile    = "input.txt"
	DotEnvFile  = ".env"
)

// DemoMode reports whether DEMO_MODE is "1", reading the process environment
// first and ./.env second. An unset variable means the real input.
func DemoMode() bool {
	return DemoModeFrom(DotEnvFile)
}

// DemoModeFrom is DemoMode with an explicit dotenv path.
func DemoModeFrom(dotenvPath string) bool {
	v := viper.New()
	v.SetConfigFile(dotenvPath)
	v.SetConfigType("env")
	// A missing .env is the common case.
	_ = v.ReadInConfig()
	v.AutomaticEnv()
	return v.GetString(EnvDemoMode) == "1"
}

// Source selects one input file inside a puzzle directory.
type Source struct {
	Dir  string // Directory holding input.txt and the demo fixtures.
	Demo bool   // Read a demo fixture instead of input.txt.
	Part int    // Prefer demo-input-part-<Part>.txt when it exists.
}

// Path returns the file Read will open.
func (s Source) Path() string {
	if !s.Demo {
		return filepath.Join(s.Dir, RealFile)
	}
	if s.Part > 0 {
		p := filepath.Join(s.Dir, PartFile(s.Part))
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(s.Dir, DemoFile)
}

// Read returns the file contents. A missing file is reported as
// types.ErrInputNotFound with the path attached.
func (s Source) Read() (string, error) {
	path := s.Path()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", types.ErrInputNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// PartFile names the part-specific demo fixture.
func PartFile(part int) string {
	return fmt.Sprintf("demo-input-part-%d.txt", part)
}

// PuzzleDir returns the conventional directory of a puzzle under root,
// e.g. root/2023/day07.
func PuzzleDir(root string, year, day int) string {
	return filepath.Join(root, fmt.Sprint(year), fmt.Sprintf("day%02d", day))
}
