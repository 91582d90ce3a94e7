// Package main is the entry point for the isofit CLI.
package main

import (
	"os"

	"isofit/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
