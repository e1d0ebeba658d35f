// Package config handles configuration loading for the meshcat CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultServerCommand launches the companion visualization server. The
// server is an external process; see its environment.yml for provisioning.
const DefaultServerCommand = "meshcat-server"

// ServerConfig describes how to launch the external visualization server.
type ServerConfig struct {
	// Command is the shell command that starts the server.
	Command string `yaml:"command"`
}

// LogConfig mirrors the logging package's configuration in YAML form.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
	JSON       bool   `yaml:"json"`
}

// Config is the complete CLI configuration.
type Config struct {
	// Endpoint is the visualization server address. tcp:// endpoints use
	// the ZMQ bridge, ws:// endpoints talk straight to a viewer.
	Endpoint string `yaml:"endpoint"`
	// Server configures the `meshcat server` command.
	Server ServerConfig `yaml:"server"`
	// Log configures logging.
	Log LogConfig `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Endpoint: "tcp://127.0.0.1:6000",
		Server:   ServerConfig{Command: DefaultServerCommand},
		Log:      LogConfig{Level: "info"},
	}
}

// DefaultPath returns the default configuration file path: the MESHCATRC
// environment variable if set, otherwise ~/.meshcatrc.
func DefaultPath() string {
	if envPath := os.Getenv("MESHCATRC"); envPath != "" {
		return envPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".meshcatrc"
	}
	return filepath.Join(home, ".meshcatrc")
}

// Parse decodes YAML configuration data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = Default().Endpoint
	}
	if cfg.Server.Command == "" {
		cfg.Server.Command = DefaultServerCommand
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the configuration from DefaultPath. A missing file is
// not an error; the defaults are returned instead.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
