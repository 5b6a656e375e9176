// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shipping-quote/core/engine"
	"shipping-quote/core/input"
	"shipping-quote/core/output"
	"shipping-quote/core/types"
	"shipping-quote/internal/config"
	apperrors "shipping-quote/internal/errors"
	"shipping-quote/internal/logging"
)

type estimateOptions struct {
	flags       types.QuoteRequest
	modes       []string
	trailerType string
	requestFile string
	format      string
	outputPath  string
	formulas    bool
}

func newEstimateCmd() *cobra.Command {
	o := &estimateOptions{flags: input.Defaults()}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price a cargo quotation",
		Long: `Price a cargo quotation for the selected shipping modes.

Values not given on the command line, or in the --request file, take the
quotation form defaults (12.5 x 4.0 x 4.5 m, 30 MT, one trailer, one mafi,
MAFI mode, mechanical trailer, custom clearance included).

Examples:
  shipping-quote estimate
  shipping-quote estimate --mode BBK --security-persons 2 --security-shifts 3
  shipping-quote estimate --mode MAFI --mode BBK --custom-clearance=false
  shipping-quote estimate --request cargo.json --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, o)
		},
	}

	f := cmd.Flags()
	f.Var(newDecimalValue(&o.flags.Length), "length", "cargo length (m)")
	f.Var(newDecimalValue(&o.flags.Width), "width", "cargo width (m)")
	f.Var(newDecimalValue(&o.flags.Height), "height", "cargo height (m)")
	f.Var(newDecimalValue(&o.flags.Weight), "weight", "cargo weight (MT)")
	f.IntVar(&o.flags.Trailers, "trailers", o.flags.Trailers, "number of trailers")
	f.IntVar(&o.flags.Mafis, "mafis", o.flags.Mafis, "number of mafi units (MAFI mode)")
	f.StringSliceVarP(&o.modes, "mode", "m", []string{types.ModeMAFI.String()}, "shipping modes to quote (MAFI, BBK); pass --mode= for none")
	f.StringVarP(&o.trailerType, "trailer-type", "t", types.TrailerMechanical.String(), "gate IN/OUT trailer type (mechanical, hydraulic)")
	f.BoolVar(&o.flags.IncludeCustomClearance, "custom-clearance", o.flags.IncludeCustomClearance, "include custom clearance charges")
	f.IntVar(&o.flags.SecurityPersons, "security-persons", o.flags.SecurityPersons, "BBK security persons")
	f.IntVar(&o.flags.SecurityShifts, "security-shifts", o.flags.SecurityShifts, "BBK 8 hour security shifts")
	f.StringVarP(&o.requestFile, "request", "r", "", "JSON file with the quote request")
	f.StringVarP(&o.format, "format", "f", "", "output format (cli, json, markdown, xlsx)")
	f.StringVarP(&o.outputPath, "output", "o", "", "write output to a file instead of stdout")
	f.BoolVar(&o.formulas, "formulas", false, "show the formula behind each line")

	return cmd
}

func runEstimate(cmd *cobra.Command, o *estimateOptions) error {
	cfg := config.Get()

	req, err := o.request(cmd)
	if err != nil {
		return err
	}
	if err := input.NewValidator().Validate(&req); err != nil {
		return err
	}

	t, err := cfg.LoadTariff()
	if err != nil {
		return err
	}

	result := engine.New(t).Quote(req)
	doc := output.NewDocument(result, t, cfg.Tariff.Currency)

	logging.Debug("quote priced",
		zap.String("quote_id", doc.QuoteID),
		zap.Int("modes", len(result.Quotes)),
		zap.String("tariff", t.ShortFingerprint()),
	)
	if result.Empty() {
		logging.Warn(output.NoModeSelected)
	}

	format := o.format
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.New(output.Format(format), output.Options{
		ShowFormulas: o.formulas || cfg.Output.ShowFormulas,
		Symbol:       cfg.Tariff.Symbol,
	})
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), o.outputPath, formatter, doc)
}

// request merges the defaults, the request file and explicitly set flags,
// in that order.
func (o *estimateOptions) request(cmd *cobra.Command) (types.QuoteRequest, error) {
	req := input.Defaults()
	if o.requestFile != "" {
		file, err := os.Open(o.requestFile)
		if err != nil {
			return req, apperrors.Wrapf(apperrors.TypeInput, err, "failed to read request file %s", o.requestFile)
		}
		defer file.Close()

		dec := json.NewDecoder(file)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return req, apperrors.Parsing("failed to parse request file", err).WithContext("path", o.requestFile)
		}
	}

	changed := cmd.Flags().Changed
	if changed("length") {
		req.Length = o.flags.Length
	}
	if changed("width") {
		req.Width = o.flags.Width
	}
	if changed("height") {
		req.Height = o.flags.Height
	}
	if changed("weight") {
		req.Weight = o.flags.Weight
	}
	if changed("trailers") {
		req.Trailers = o.flags.Trailers
	}
	if changed("mafis") {
		req.Mafis = o.flags.Mafis
	}
	if changed("custom-clearance") {
		req.IncludeCustomClearance = o.flags.IncludeCustomClearance
	}
	if changed("security-persons") {
		req.SecurityPersons = o.flags.SecurityPersons
	}
	if changed("security-shifts") {
		req.SecurityShifts = o.flags.SecurityShifts
	}
	if changed("mode") {
		modes, err := input.ParseModes(o.modes)
		if err != nil {
			return req, err
		}
		req.Modes = modes
	}
	if changed("trailer-type") {
		tt, err := types.ParseTrailerType(o.trailerType)
		if err != nil {
			return req, apperrors.Input("invalid trailer type").WithField("trailer_type", err.Error())
		}
		req.TrailerType = tt
	}
	return req, nil
}

func writeOutput(stdout io.Writer, path string, formatter output.Formatter, doc *output.Document) error {
	if path == "" {
		if formatter.Format() == output.FormatXLSX {
			return apperrors.Input("xlsx output requires --output")
		}
		return formatter.Render(stdout, doc)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.Internal("failed to create output file", err).WithContext("path", path)
	}
	if err := formatter.Render(file, doc); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Quote %s written to %s\n", doc.QuoteID, path)
	return nil
}
