package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/chazu/wayfarer/pkg/config"
	"github.com/chazu/wayfarer/pkg/httpapi"
	"github.com/chazu/wayfarer/pkg/solve"
)

func main() {
	app := &cli.App{
		Name:  "wayfarer",
		Usage: "raster pathfinding HTTP service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "listen", Usage: "override the configured listen address"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds every subsystem — config, logger, HTTP server — and runs
// until an interrupt or termination signal arrives.
func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if listen := c.String("listen"); listen != "" {
		cfg.ListenAddress = listen
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	defaults := defaultsFromConfig(cfg)
	handler := httpapi.NewHandler(logger, defaults)

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("address", cfg.ListenAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// defaultsFromConfig builds the request-param defaults the HTTP form
// decoders fall back to when a client omits a field, overlaying the configured
// values onto the engine's own built-in defaults.
func defaultsFromConfig(cfg config.Config) solve.Params {
	p := solve.Defaults()
	p.CellSize = cfg.DefaultCellSize
	p.BorderSize = cfg.DefaultBorderSize
	p.TrajectorySize = cfg.DefaultTrajectorySize
	p.PointSize = cfg.DefaultPointSize
	return p
}
