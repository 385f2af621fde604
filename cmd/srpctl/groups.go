package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fzdarsky/srp6a/internal/config"
	"github.com/fzdarsky/srp6a/pkg/srp"
)

func runGroups(stdout io.Writer) error {
	fmt.Fprintln(stdout, "Groups:")
	for _, name := range srp.GroupNames() {
		group, err := srp.LookupGroup(name)
		if err != nil {
			return err
		}

		marker := ""
		if name == config.DefaultGroup {
			marker = " (default)"
		}
		fmt.Fprintf(stdout, "  %-14s %5d bits  g=%s%s\n", name, group.Bits(), group.G(), marker)
	}

	fmt.Fprintf(stdout, "Hashes: %s (default %s)\n", strings.Join(srp.HashNames(), ", "), config.DefaultHash)
	return nil
}
