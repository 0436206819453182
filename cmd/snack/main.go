// Package main is the entry point for the snack CLI.
package main

import (
	"os"

	"github.com/f3rmion/snack/cmd/snack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
