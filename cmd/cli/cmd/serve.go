// Package cmd - serve command
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"shipping-quote/api"
	"shipping-quote/core/engine"
	"shipping-quote/internal/config"
	"shipping-quote/internal/logging"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the quotation HTTP API",
		Long: `Run the quotation HTTP API.

Endpoints:
  POST /quote            price a quote request
  GET  /quote/defaults   quotation form defaults
  GET  /tariff           rates in effect
  GET  /health           liveness
  GET  /version          build version
  GET  /metrics          Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			serverCfg := cfg.Server
			if addr != "" {
				serverCfg.Addr = addr
			}

			t, err := cfg.LoadTariff()
			if err != nil {
				return err
			}

			opts := []api.Option{
				api.WithLogger(logging.Logger),
				api.WithCurrency(cfg.Tariff.Currency),
			}
			if !serverCfg.EnableMetrics {
				opts = append(opts, api.WithoutMetrics())
			}
			server := api.NewServer(version, engine.New(t), opts...)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logging.Sugar.Infow("starting quotation server",
				"addr", serverCfg.Addr,
				"tariff", t.ShortFingerprint(),
				"metrics", serverCfg.EnableMetrics,
			)
			return server.ListenAndServe(ctx, serverCfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
