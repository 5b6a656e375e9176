// Package cmd provides the CLI commands for shipping-quote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipping-quote/internal/config"
	"shipping-quote/internal/logging"
)

const version = "0.1.0"

type globalOptions struct {
	cfgFile    string
	tariffFile string
	verbose    bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "shipping-quote",
		Short: "Build cargo shipping quotations",
		Long: `shipping-quote prices cargo handling for MAFI and BBK shipping modes.

It turns cargo dimensions, weight and mode options into a line-itemized
quotation with the quoted amount for every selected mode.

Examples:
  shipping-quote estimate
  shipping-quote estimate --mode MAFI --mode BBK --weight 42 --trailer-type hydraulic
  shipping-quote estimate --request cargo.json --format xlsx --output quote.xlsx
  shipping-quote serve --addr :8080`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file (default is $HOME/.shipping-quote.json)")
	rootCmd.PersistentFlags().StringVar(&g.tariffFile, "tariff", "", "rate card file (.hcl or .json) overriding the default tariff")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(newEstimateCmd())
	rootCmd.AddCommand(newTariffCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// ExecuteArgs runs the CLI with explicit arguments
func ExecuteArgs(args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func initConfig(g *globalOptions) error {
	path := g.cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if g.tariffFile != "" {
		cfg.Tariff.Path = g.tariffFile
	}
	config.Set(cfg)

	// Initialize logging
	if g.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shipping-quote version %s\n", version)
		},
	}
}
