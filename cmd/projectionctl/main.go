package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/projectionctl/internal/cli"
	"github.com/mattn/go-isatty"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Version: version,
		Getenv:  os.Getenv,
		Stdin:   os.Stdin,
	}

	// Detect an interactive terminal so serve can warn that it wants a pipe.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
