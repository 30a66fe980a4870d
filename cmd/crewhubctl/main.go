// Package main is the entry point for the crewhubctl control CLI.
package main

import (
	"os"

	"github.com/EKINSOL-DEV/crewhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
