// Package main is the entry point for the tempconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/tempconv/internal/app"
	"github.com/runoshun/tempconv/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container := app.New(app.Config{
		WorkDir: cwd,
		Program: filepath.Base(args[0]),
	})

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args[1:])
	return rootCmd.Execute()
}
