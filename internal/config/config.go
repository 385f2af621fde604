// Package config provides configuration loading and validation for the SRP tooling.
package config

import (
	"fmt"
	"os"

	"github.com/fzdarsky/srp6a/internal/logging"
	"github.com/fzdarsky/srp6a/pkg/srp"
	"gopkg.in/yaml.v3"
)

// Defaults applied before the configuration file is read.
const (
	DefaultGroup           = srp.GroupName2048
	DefaultHash            = srp.HashNameSHA256
	DefaultSaltLength      = 32
	DefaultEphemeralLength = 32
	DefaultGenerator       = 2
)

// HashEnvVar overrides the configured hash algorithm when set.
const HashEnvVar = "SRP6A_HASH"

// CustomGroupName is reported for groups given as modulus_hex.
const CustomGroupName = "custom"

// Config represents the SRP tooling configuration.
type Config struct {
	Group           GroupSettings   `yaml:"group"`
	Hash            string          `yaml:"hash"`
	SaltLength      int             `yaml:"salt_length"`
	EphemeralLength int             `yaml:"ephemeral_length"`
	Logging         LoggingSettings `yaml:"logging"`
}

// GroupSettings selects the SRP group: either a built-in name, or a
// hex-encoded modulus with its generator. A zero Generator selects
// DefaultGenerator for a custom modulus and the group's own generator for a
// built-in name.
type GroupSettings struct {
	Name       string `yaml:"name"`
	ModulusHex string `yaml:"modulus_hex"`
	Generator  int64  `yaml:"generator"`
}

// LoggingSettings contains logging configuration.
type LoggingSettings struct {
	Level      string   `yaml:"level"`
	Format     string   `yaml:"format"`
	RedactKeys []string `yaml:"redact_keys"` // Added to the built-in sensitive keys
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Group: GroupSettings{
			Name: DefaultGroup,
		},
		Hash:            DefaultHash,
		SaltLength:      DefaultSaltLength,
		EphemeralLength: DefaultEphemeralLength,
		Logging: LoggingSettings{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads and parses the configuration file. Values missing from the
// file keep their defaults. An empty path yields the defaults with the
// environment overrides applied.
//
//nolint:gosec // G304: Config path is from command-line argument
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML configuration data and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Group = GroupSettings{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// The default group applies only when the file selects none.
	if cfg.Group.Name == "" && cfg.Group.ModulusHex == "" {
		cfg.Group.Name = DefaultGroup
	}
	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if hash := os.Getenv(HashEnvVar); hash != "" {
		cfg.Hash = hash
	}
}

// SRPGroup resolves the configured group.
func (c *Config) SRPGroup() (*srp.Group, error) {
	if c.Group.ModulusHex != "" {
		generator := c.Group.Generator
		if generator == 0 {
			generator = DefaultGenerator
		}
		return srp.NewGroupFromHex(c.Group.ModulusHex, generator)
	}
	return srp.LookupGroup(c.Group.Name)
}

// GroupName returns the configured group name, or "custom" for a
// hex-encoded modulus.
func (c *Config) GroupName() string {
	if c.Group.ModulusHex != "" {
		return CustomGroupName
	}
	return c.Group.Name
}

// HashFunc resolves the configured hash algorithm.
func (c *Config) HashFunc() (srp.HashFunc, error) {
	return srp.LookupHash(c.Hash)
}

// NewLogger creates a logger from the logging settings. Invalid settings
// were rejected by Validate, so parse errors fall back to the defaults.
func (c *Config) NewLogger() *logging.Logger {
	level, _ := logging.ParseLevel(c.Logging.Level)
	format, _ := logging.ParseFormat(c.Logging.Format)
	logger := logging.New(level, format)
	for _, key := range c.Logging.RedactKeys {
		logger.Redactor().AddSensitiveKey(key)
	}
	return logger
}
