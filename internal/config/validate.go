package config

import (
	"errors"
	"fmt"

	"github.com/fzdarsky/srp6a/internal/logging"
)

// Length bounds for random values, in bytes.
const (
	minSaltLength      = 16
	maxSaltLength      = 1024
	minEphemeralLength = 32
)

// minModulusBits rejects custom groups too small to be safe.
const minModulusBits = 1024

// Validate performs comprehensive validation on the configuration.
func Validate(cfg *Config) error {
	if err := validateGroup(cfg); err != nil {
		return fmt.Errorf("group validation failed: %w", err)
	}

	if _, err := cfg.HashFunc(); err != nil {
		return fmt.Errorf("hash validation failed: %w", err)
	}

	if err := validateLengths(cfg); err != nil {
		return fmt.Errorf("length validation failed: %w", err)
	}

	if err := validateLogging(cfg); err != nil {
		return fmt.Errorf("logging validation failed: %w", err)
	}

	return nil
}

func validateGroup(cfg *Config) error {
	if cfg.Group.Name != "" && cfg.Group.ModulusHex != "" {
		return errors.New("group.name and group.modulus_hex are mutually exclusive")
	}
	if cfg.Group.Name == "" && cfg.Group.ModulusHex == "" {
		return errors.New("one of group.name or group.modulus_hex is required")
	}

	group, err := cfg.SRPGroup()
	if err != nil {
		return err
	}

	if cfg.Group.Name != "" && cfg.Group.Generator != 0 && cfg.Group.Generator != group.G().Int64() {
		return fmt.Errorf("group.generator %d does not match group %s, set it only with group.modulus_hex",
			cfg.Group.Generator, cfg.Group.Name)
	}

	if group.Bits() < minModulusBits {
		return fmt.Errorf("group modulus must be at least %d bits, got %d", minModulusBits, group.Bits())
	}

	return nil
}

func validateLengths(cfg *Config) error {
	if cfg.SaltLength < minSaltLength || cfg.SaltLength > maxSaltLength {
		return fmt.Errorf("salt_length must be between %d and %d bytes", minSaltLength, maxSaltLength)
	}

	if cfg.EphemeralLength < minEphemeralLength {
		return fmt.Errorf("ephemeral_length must be at least %d bytes", minEphemeralLength)
	}

	return nil
}

func validateLogging(cfg *Config) error {
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}

	if _, err := logging.ParseFormat(cfg.Logging.Format); err != nil {
		return err
	}

	return nil
}
