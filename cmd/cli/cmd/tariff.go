// Package cmd - tariff commands
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shipping-quote/core/output"
	"shipping-quote/core/tariff"
	"shipping-quote/internal/config"
	apperrors "shipping-quote/internal/errors"
	"shipping-quote/internal/logging"
)

func newTariffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tariff",
		Short: "Inspect and scaffold rate cards",
	}
	cmd.AddCommand(newTariffShowCmd())
	cmd.AddCommand(newTariffInitCmd())
	return cmd
}

func newTariffShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the rates in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			t, err := cfg.LoadTariff()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"fingerprint": t.Fingerprint(),
					"currency":    cfg.Tariff.Currency,
					"rates":       t.Rates(),
				})
			case "", "cli":
				source := cfg.Tariff.Path
				if source == "" {
					source = "built-in defaults"
				}
				fmt.Fprintf(out, "Tariff: %s (%s)\n\n", source, t.ShortFingerprint())
				for _, r := range t.Rates() {
					fmt.Fprintf(out, "  %-32s %14s  %s\n", r.Name, output.Amount(r.Value), r.Unit)
				}
				return nil
			default:
				return apperrors.Newf(apperrors.TypeNotSupported, "unsupported format: %s", format).
					WithContext("supported", "cli, json")
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "cli", "output format (cli, json)")
	return cmd
}

func newTariffInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the current rates to an HCL rate card",
		Long: `Write the rates in effect to an HCL file that can be edited and passed
back with --tariff. Attributes left out of the file keep their default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "tariff.hcl"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return apperrors.Newf(apperrors.TypeInput, "%s already exists (use --force to overwrite)", path)
			}

			t, err := config.Get().LoadTariff()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, tariff.Encode(t), 0644); err != nil {
				return apperrors.Internal("failed to write tariff", err).WithContext("path", path)
			}

			logging.Sugar.Debugw("tariff written", "path", path, "fingerprint", t.ShortFingerprint())
			fmt.Fprintf(cmd.OutOrStdout(), "Tariff written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
