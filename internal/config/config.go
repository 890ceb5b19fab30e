// Package config loads run configuration for the echoq CLI.
//
// Precedence, lowest to highest: hardcoded defaults, .echoq.yaml, ECHOQ_*
// environment variables, command-line flags (applied by the caller). A .env
// file in the working directory is loaded first so the qBraid API key can
// live outside the shell profile.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values used when neither file nor environment says otherwise.
const (
	DefaultWorkspace  = "pitchfork-echo-studio"
	DefaultDevice     = "quantum_simulation"
	DefaultShots      = 100
	DefaultFormat     = "auto"
	DefaultTheme      = "default"
	DefaultLogLevel   = "info"
	DefaultConfigFile = ".echoq.yaml"
)

// Config holds everything the CLI needs for one run. APIKey comes from the
// environment only and is never read from or written to yaml.
type Config struct {
	Workspace string `yaml:"workspace"`
	Device    string `yaml:"device"`
	Shots     int    `yaml:"shots"`
	Format    string `yaml:"format"`
	Theme     string `yaml:"theme"`
	LogLevel  string `yaml:"log_level"`
	Seed      uint64 `yaml:"seed"`
	APIKey    string `yaml:"-"`
}

// Load builds a Config from defaults, an optional yaml file, and the
// environment. An explicitly named file must exist; the default file is
// optional.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Workspace: DefaultWorkspace,
		Device:    DefaultDevice,
		Shots:     DefaultShots,
		Format:    DefaultFormat,
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Absent keys leave the defaults in place.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg.Workspace = getEnv("ECHOQ_WORKSPACE", cfg.Workspace)
	cfg.Device = getEnv("ECHOQ_DEVICE", cfg.Device)
	cfg.Shots = getEnvAsInt("ECHOQ_SHOTS", cfg.Shots)
	cfg.Format = getEnv("ECHOQ_FORMAT", cfg.Format)
	cfg.Theme = getEnv("ECHOQ_THEME", cfg.Theme)
	cfg.LogLevel = getEnv("ECHOQ_LOG_LEVEL", cfg.LogLevel)
	cfg.APIKey = os.Getenv("QBRAID_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the rest of the run depends on.
func (c *Config) Validate() error {
	if c.Shots <= 0 {
		return fmt.Errorf("config: shots must be positive, got %d", c.Shots)
	}
	if c.Workspace == "" {
		return fmt.Errorf("config: workspace must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
