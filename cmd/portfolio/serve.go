package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-explorer/internal/metrics"
	"github.com/jonathan/portfolio-explorer/internal/server"
	"github.com/jonathan/portfolio-explorer/internal/stats"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes the query, terminal, statistics and discovery endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := loadCatalog(ctx, appConfig, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	cfg := server.Config{
		Port:        port,
		CORSOrigins: appConfig.CORSOrigins,
		Catalog:     src.Catalog,
		Tracker:     stats.NewTracker(stats.WithLogger(logger)),
		Metrics:     metrics.New(reg),
		Logger:      logger,
	}
	if src.DB != nil {
		cfg.HealthCheck = func(ctx context.Context) error { return src.DB.Ping(ctx) }
	}

	return server.New(cfg).Run(ctx)
}
