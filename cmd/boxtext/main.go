package main

import (
	"os"

	"github.com/arthur-debert/boxtext/internal/cli"
	"github.com/arthur-debert/boxtext/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		style.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
