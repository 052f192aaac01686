// Package main is the entry point for the testgrep CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/testgrep/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
