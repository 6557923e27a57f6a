// Package main is the entry point for the TikTok-Sayer uninstaller.
package main

import (
	"fmt"
	"os"

	"github.com/saudilinux/tiktok-sayer-uninstall/internal/app"
	"github.com/saudilinux/tiktok-sayer-uninstall/internal/cli"
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
	// Create dependency injection container
	container, err := app.New()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
