package main

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fzdarsky/srp6a/pkg/protocol"
	"github.com/fzdarsky/srp6a/pkg/srp"
)

// runVerifier generates a random salt and the verifier for a user.
func runVerifier(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("verifier", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("username", "", "Username to register (required)")
	password := fs.String("password", "", "Password (prompts if not provided)")
	configPath := fs.String("config", "", "Path to SRP configuration file")
	out := fs.String("out", "", "Write the record to this file instead of stdout")
	force := fs.Bool("force", false, "Overwrite an existing output file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: srpctl verifier [flags]

Generate a random salt and the SRP-6a verifier for a user. The record is
written as JSON with the salt and verifier base64-encoded.

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("--username is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, stderr)

	group, err := cfg.SRPGroup()
	if err != nil {
		return err
	}
	h, err := cfg.HashFunc()
	if err != nil {
		return err
	}

	pass, err := passwordOrPrompt(*password)
	if err != nil {
		return err
	}
	defer clear(pass)

	salt := make([]byte, cfg.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	// Logins leave the username out of x, so the verifier is registered
	// the same way. The username is stored for lookup only.
	verifier := srp.NewClient(group, h).ComputeVerifier(nil, pass, salt)

	record := protocol.VerifierRecord{
		Username: *username,
		Salt:     protocol.EncodeBytes(salt),
		Verifier: protocol.EncodeBytes(verifier),
		Group:    cfg.GroupName(),
		Hash:     cfg.Hash,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal verifier record: %w", err)
	}
	data = append(data, '\n')

	if *out == "" {
		_, err = stdout.Write(data)
		return err
	}

	if err := writeRecord(*out, data, *force); err != nil {
		return err
	}

	logger.Info("verifier record written", map[string]any{
		"username": *username,
		"path":     *out,
		"group":    record.Group,
		"hash":     record.Hash,
	})
	return nil
}

// writeRecord writes data with owner-only permissions. An existing file is
// only replaced when force is set.
func writeRecord(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to replace verifier record: %w", err)
		}
	}

	//nolint:gosec // G304: Output path is from command-line argument
	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("verifier record %s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("failed to create verifier record: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write verifier record: %w", err)
	}
	return f.Close()
}
