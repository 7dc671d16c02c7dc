package main

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/server"
	"github.com/katalvlaran/dutyswap/swap"
)

var (
	MaxStepsFlag = cli.IntFlag{
		Name:    "max-steps",
		Usage:   "longest exchange chain for the variable strategy; overrides the input file",
		EnvVars: []string{"DUTYSWAP_MAX_STEPS"},
	}
	StrategyFlag = cli.StringFlag{
		Name:    "strategy",
		Usage:   "one of variable, maximal_matching, bipartite, unlimited",
		Value:   swap.StrategyVariable,
		EnvVars: []string{"DUTYSWAP_STRATEGY"},
	}
	PoolFlag = cli.StringFlag{
		Name:    "pool",
		Usage:   "pool label echoed in the result; overrides the input file",
		EnvVars: []string{"DUTYSWAP_POOL"},
	}
	MaxCyclesFlag = cli.IntFlag{
		Name:    "max-cycles",
		Usage:   "abort when cycle enumeration exceeds this many candidates",
		Value:   cycles.DefaultMaxCycles,
		EnvVars: []string{"DUTYSWAP_MAX_CYCLES"},
	}
	TimeLimitFlag = cli.DurationFlag{
		Name:    "time-limit",
		Usage:   "wall clock limit per optimization (0 = none)",
		EnvVars: []string{"DUTYSWAP_TIME_LIMIT"},
	}
	RepresentativeFlag = cli.StringFlag{
		Name:    "representative",
		Usage:   "which parallel request stands for an edge: first or heaviest",
		Value:   core.FirstInInput.String(),
		EnvVars: []string{"DUTYSWAP_REPRESENTATIVE"},
	}
	LogLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
		Value:   "info",
		EnvVars: []string{"DUTYSWAP_LOG_LEVEL"},
	}
	AddrFlag = cli.StringFlag{
		Name:    "addr",
		Usage:   "listen address for the http server",
		Value:   server.DefaultConfig().Addr,
		EnvVars: []string{"DUTYSWAP_ADDR"},
	}
	ShutdownTimeoutFlag = cli.DurationFlag{
		Name:  "shutdown-timeout",
		Usage: "grace period for in-flight requests on SIGINT/SIGTERM",
		Value: 10 * time.Second,
	}
)

// optimizerFlags are shared by optimize and serve.
var optimizerFlags = []cli.Flag{
	&MaxCyclesFlag,
	&TimeLimitFlag,
	&RepresentativeFlag,
	&LogLevelFlag,
}

// swapOptions turns the shared flags into swap options.
func swapOptions(ctx *cli.Context) ([]swap.Option, error) {
	rep, err := core.ParseRepresentative(ctx.String(RepresentativeFlag.Name))
	if err != nil {
		return nil, err
	}
	opts := []swap.Option{swap.WithRepresentative(rep)}
	if n := ctx.Int(MaxCyclesFlag.Name); n > 0 {
		opts = append(opts, swap.WithMaxCycles(n))
	}
	if d := ctx.Duration(TimeLimitFlag.Name); d > 0 {
		opts = append(opts, swap.WithTimeLimit(d))
	}

	return opts, nil
}
