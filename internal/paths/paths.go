// Package paths resolves the configuration, data and puzzle input
// directories.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "advent"

// CWD-relative default directory names.
const (
	DefaultDataDirName  = ".advent"
	DefaultInputDirName = "inputs"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ADVENT_CONFIG_DIR"
	EnvDataDir   = "ADVENT_DATA_DIR"
	EnvInputDir  = "ADVENT_INPUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/advent (fallback ~/.config/advent)
// macOS:   ~/Library/Application Support/advent
// Windows: %APPDATA%/advent
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir applies the precedence --config-dir flag >
// ADVENT_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies the precedence --data-dir flag > configValue >
// ADVENT_DATA_DIR > $(CWD)/.advent. The CLI's viper already lets
// ADVENT_DATA_DIR override config.yaml when producing configValue.
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, EnvDataDir, DefaultDataDirName)
}

// ResolveInputDir applies the precedence --input-dir flag > configValue >
// ADVENT_INPUT_DIR > $(CWD)/inputs. Puzzle inputs live below
// it as <year>/day<NN>/input.txt.
func ResolveInputDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, EnvInputDir, DefaultInputDirName)
}

func resolve(flag, configValue, env, defaultName string) (string, error) {
	for _, v := range []string{flag, configValue, os.Getenv(env)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, defaultName), nil
}
