package config

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (TODO_*). It respects flags that have been explicitly set (changed
// map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("storage", os.Getenv("TODO_STORAGE_PATH"), &cfg.StoragePath)
	s.setBoolFromString("quiet", os.Getenv("TODO_QUIET"), &cfg.Quiet)
	s.setBoolFromString("debug", os.Getenv("TODO_DEBUG"), &cfg.Debug)
}
