package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML field tags. Booleans are pointers
// so an absent key can be told apart from an explicit false.
type FileConfig struct {
	StoragePath string `toml:"storage_path"`
	Quiet       *bool  `toml:"quiet"`
	Debug       *bool  `toml:"debug"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("storage", fc.StoragePath, &cfg.StoragePath)
	s.setBool("quiet", fc.Quiet, &cfg.Quiet)
	s.setBool("debug", fc.Debug, &cfg.Debug)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
