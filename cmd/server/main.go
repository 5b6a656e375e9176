// Package main - Entry point for the quotation API server
package main

import (
	"os"

	"shipping-quote/cmd/cli/cmd"
	"shipping-quote/internal/logging"
)

// main runs the serve command; flags such as --addr, --config and
// --tariff are passed through.
func main() {
	args := append([]string{"serve"}, os.Args[1:]...)
	err := cmd.ExecuteArgs(args)
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
