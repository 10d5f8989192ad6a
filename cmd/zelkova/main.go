// Package main provides the entry point for the Zelkova TUI shell.
package main

import (
	"fmt"
	"os"

	"github.com/zelkova-tui/zelkova/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
