package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/dutyswap/logger"
	"github.com/katalvlaran/dutyswap/server"
)

// ServeCommand starts the HTTP optimizer.
var ServeCommand = cli.Command{
	Action: serveAction,
	Name:   "serve",
	Usage:  "serve POST /optimize over http",
	Flags: append([]cli.Flag{
		&AddrFlag,
		&ShutdownTimeoutFlag,
	}, optimizerFlags...),
	Description: `
Starts an http server exposing POST /optimize, GET /healthz and GET /metrics.
Stops gracefully on SIGINT or SIGTERM.
`,
}

// serveAction runs the server until a termination signal arrives.
func serveAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(LogLevelFlag.Name), "dutyswap-serve")

	opts, err := swapOptions(ctx)
	if err != nil {
		return err
	}

	metrics := server.NewMetrics("")
	api := server.NewAPIHandlers(log, metrics, nil, opts...)
	router := server.NewRouter(log, server.RouterDependencies{API: api, Metrics: metrics})

	cfg := server.DefaultConfig()
	cfg.Addr = ctx.String(AddrFlag.Name)
	srv := server.New(log, cfg, router)

	sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err = <-errc:
		return err
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ctx.Duration(ShutdownTimeoutFlag.Name))
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errc
}
