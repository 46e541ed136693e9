package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "ADVENT"

	cfgKeyBackend     = "backend"
	cfgKeyDataDir     = "data_dir"
	cfgKeyInputDir    = "input_dir"
	cfgKeyParallelism = "parallelism"
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Backend     string `yaml:"backend"`
	DataDir     string `yaml:"data_dir,omitempty"`
	InputDir    string `yaml:"input_dir,omitempty"`
	Parallelism int    `yaml:"parallelism,omitempty"`
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; every key may also come from an ADVENT_<KEY> variable.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyParallelism, runtime.NumCPU())
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml unless it already exists.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	return true, os.WriteFile(path, data, 0o644)
}
