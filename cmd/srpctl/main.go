// Package main provides srpctl, a tool for SRP-6a verifier registration and
// client logins.
//
// srpctl generates the salt and verifier a server stores for a user, lists
// the built-in groups, and runs a client handshake against an HTTP server.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command, rest := args[0], args[1:]

	var err error
	switch command {
	case "--help", "-h", "help":
		printUsage(stdout)
		return 0
	case "--version", "-v", "version":
		fmt.Fprintf(stdout, "srpctl version %s\n", version)
		return 0
	case "verifier":
		err = runVerifier(rest, stdout, stderr)
	case "login":
		err = runLogin(rest, stdout, stderr)
	case "logout":
		err = runLogout(rest, stderr)
	case "token":
		err = runToken(rest, stdout, stderr)
	case "groups":
		err = runGroups(stdout)
	default:
		fmt.Fprintf(stderr, "Error: unknown command '%s'\n\n", command)
		printUsage(stderr)
		return 1
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `srpctl - SRP-6a verifier and login tool

Usage:
  srpctl <command> [flags]

Available Commands:
  verifier   Generate a salt and verifier record for a user
  login      Authenticate against an SRP server over HTTP
  logout     Forget the stored session token for a server
  token      Print the stored session token for a server
  groups     List the built-in groups and hash algorithms
  version    Show version information

Examples:
  # Register a user (prompts for the password)
  srpctl verifier --username admin --out admin.json

  # Log in with a custom configuration
  srpctl login --url https://192.168.1.100:8443 --username admin --config srp.yaml

  # Log in and keep the session token
  srpctl login --url https://192.168.1.100:8443 --username admin --save
  srpctl token --url https://192.168.1.100:8443

For detailed help on a specific command, run:
  srpctl <command> --help

`)
}
