// Package main is the entry point for the taskflow CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	dataDir, err := app.ResolveDataDir(dataDirFromArgs(args))
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(dataDir)
	if err != nil {
		// Allow help, version and key generation without a usable store
		if canRunWithoutContainer(args) {
			return cli.NewRootCommand(nil, version).Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.ExecuteContext(context.Background())
}

// dataDirFromArgs returns the value of the --data-dir flag, if present.
// The container needs it before cobra parses the command line.
func dataDirFromArgs(args []string) string {
	flag := "--" + cli.DataDirFlag
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v
		}
	}
	return ""
}

func canRunWithoutContainer(args []string) bool {
	if len(args) >= 2 && args[0] == "config" && (args[1] == "template" || args[1] == "key") {
		return true
	}
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
