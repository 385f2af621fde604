package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword prompts on stderr and reads a password without echo.
// Tests replace it.
var readPassword = func() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprint(os.Stderr, "\n")
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}

// passwordOrPrompt returns flagValue, or prompts when it is empty.
func passwordOrPrompt(flagValue string) ([]byte, error) {
	if flagValue != "" {
		return []byte(flagValue), nil
	}

	password, err := readPassword()
	if err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("password must not be empty")
	}
	return password, nil
}
