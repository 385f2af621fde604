package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/fzdarsky/srp6a/internal/handshake"
	"github.com/fzdarsky/srp6a/internal/tokenstore"
)

// runLogin authenticates against an SRP server and prints the session token.
func runLogin(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stderr)

	url := fs.String("url", "", "Base URL of the SRP server (required)")
	username := fs.String("username", "", "Username for authentication (required)")
	password := fs.String("password", "", "Password (prompts if not provided)")
	configPath := fs.String("config", "", "Path to SRP configuration file")
	timeout := fs.Duration("timeout", time.Minute, "Overall time limit for the handshake")
	save := fs.Bool("save", false, "Store the session token for later use")
	tokenDir := fs.String("token-dir", "", "Directory for stored tokens (default: user cache directory)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: srpctl login [flags]

Authenticate with an SRP-6a server over HTTP. Both sides prove knowledge of
the password; the session token issued by the server is printed on success.

Flags:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return errors.New("--url is required")
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

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := handshake.Run(ctx, handshake.NewHTTPTransport(*url, nil),
		handshake.Credentials{Username: *username, Password: pass},
		handshake.Options{
			Group:           group,
			Hash:            h,
			EphemeralLength: cfg.EphemeralLength,
			Logger:          logger,
		})
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}
	defer result.Wipe()

	fmt.Fprintln(stderr, "Authentication successful.")
	if result.SessionToken == "" {
		return nil
	}

	if *save {
		store, err := tokenstore.NewStore(*tokenDir)
		if err != nil {
			return err
		}
		if err := store.Save(*url, result.SessionToken); err != nil {
			return err
		}
		logger.Info("session token saved", map[string]any{"dir": store.Dir()})
		return nil
	}

	fmt.Fprintln(stdout, result.SessionToken)
	return nil
}

// runLogout deletes the stored session token for a server.
func runLogout(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	fs.SetOutput(stderr)

	url := fs.String("url", "", "Base URL of the SRP server (required)")
	tokenDir := fs.String("token-dir", "", "Directory for stored tokens (default: user cache directory)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return errors.New("--url is required")
	}

	store, err := tokenstore.NewStore(*tokenDir)
	if err != nil {
		return err
	}
	return store.Delete(*url)
}

// runToken prints the stored session token for a server.
func runToken(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(stderr)

	url := fs.String("url", "", "Base URL of the SRP server (required)")
	tokenDir := fs.String("token-dir", "", "Directory for stored tokens (default: user cache directory)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return errors.New("--url is required")
	}

	store, err := tokenstore.NewStore(*tokenDir)
	if err != nil {
		return err
	}
	token, err := store.Load(*url)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("no session token stored for %s, run 'srpctl login --save' first", *url)
	}

	fmt.Fprintln(stdout, token)
	return nil
}
