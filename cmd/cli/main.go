// Package main is the entry point for the shipping-quote CLI.
package main

import (
	"os"

	"shipping-quote/cmd/cli/cmd"
	"shipping-quote/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
