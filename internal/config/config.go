// Package config loads the optional docker-utility configuration.
//
// Configuration is layered, later sources overriding earlier ones:
//  1. built-in defaults
//  2. ~/.config/docker-utility/config.yaml (YAML, optional)
//  3. ./.env (dotenv, optional)
//  4. DOCKER_UTILITY_* environment variables
//
// Only behavior knobs live here. The management labels themselves are
// compile-time constants and deliberately not configurable: changing
// them would orphan every container created with the previous values.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration for the CLI.
type Config struct {
	// Binary is the engine CLI executable used by the exec-based create
	// path. Defaults to "docker"; set to "podman" or similar for
	// drop-in replacement engines.
	Binary string `yaml:"binary"`

	// Debug enables echoing of every external call, as if --debug had
	// been passed on the command line.
	Debug bool `yaml:"debug"`
}

// Load builds the configuration from all layers. Missing files are not
// errors; only a malformed YAML file fails the load.
func Load() (*Config, error) {
	cfg := &Config{
		Binary: "docker",
	}

	if err := loadYAML(cfg); err != nil {
		return nil, err
	}

	// A project-local .env can set the DOCKER_UTILITY_* variables (and
	// DOCKER_HOST for the SDK client). godotenv never overrides
	// variables already present in the environment.
	_ = godotenv.Load(".env")

	if binary := os.Getenv("DOCKER_UTILITY_BINARY"); binary != "" {
		cfg.Binary = binary
	}
	if debug := os.Getenv("DOCKER_UTILITY_DEBUG"); debug != "" {
		cfg.Debug = debug == "1" || debug == "true"
	}

	return cfg, nil
}

// loadYAML merges ~/.config/docker-utility/config.yaml into cfg if the
// file exists.
func loadYAML(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil // no home directory, no config file
	}

	path := filepath.Join(homeDir, ".config", "docker-utility", "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}
