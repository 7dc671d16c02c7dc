package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/dutyswap/logger"
	"github.com/katalvlaran/dutyswap/request"
	"github.com/katalvlaran/dutyswap/server"
	"github.com/katalvlaran/dutyswap/swap"
)

// OptimizeCommand runs one optimization over a pool file.
var OptimizeCommand = cli.Command{
	Action:    optimizeAction,
	Name:      "optimize",
	Usage:     "optimize a pool of swap requests",
	ArgsUsage: "[pool.json]",
	Flags: append([]cli.Flag{
		&MaxStepsFlag,
		&StrategyFlag,
		&PoolFlag,
	}, optimizerFlags...),
	Description: `
Reads a pool from the given file, or stdin when no file is given, and prints
the result envelope as JSON. The pool is either a bare array of
{id,from,to,weight} records or an object {pool, matchData, maxSteps}.
`,
}

// poolFile is the on-disk pool format, shared with the generate command.
type poolFile struct {
	Pool        string                `json:"pool"`
	MatchData   []request.SwapRequest `json:"matchData"`
	RequestData []request.SwapRequest `json:"requestData,omitempty"`
	MaxSteps    *int                  `json:"maxSteps,omitempty"`
}

// optimizeAction optimizes the pool and prints the envelope.
func optimizeAction(ctx *cli.Context) error {
	if ctx.Args().Len() > 1 {
		return errors.Newf("expected at most one pool file, got %d", ctx.Args().Len())
	}

	log := logger.NewLoggerTo(ctx.App.ErrWriter, ctx.String(LogLevelFlag.Name), "dutyswap-optimize")

	in := ctx.App.Reader
	if path := ctx.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "cannot open pool file")
		}
		defer f.Close()
		in = f
	}
	pf, err := readPool(in)
	if err != nil {
		return err
	}

	strategy, err := swap.Lookup(ctx.String(StrategyFlag.Name))
	if err != nil {
		return err
	}
	opts, err := swapOptions(ctx)
	if err != nil {
		return err
	}

	pool := pf.Pool
	if ctx.IsSet(PoolFlag.Name) {
		pool = ctx.String(PoolFlag.Name)
	}
	maxSteps := server.DefaultMaxSteps
	if pf.MaxSteps != nil {
		maxSteps = *pf.MaxSteps
	}
	if ctx.IsSet(MaxStepsFlag.Name) {
		maxSteps = ctx.Int(MaxStepsFlag.Name)
	}
	opts = append(opts, swap.WithStrategyImpl(strategy), swap.WithPool(pool), swap.WithLogger(log))

	res, optErr := swap.Optimize(ctx.Context, pf.requests(), maxSteps, opts...)

	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")
	if err = enc.Encode(res); err != nil {
		return errors.Wrap(err, "cannot write result")
	}

	return optErr
}

// readPool accepts either a bare request array or a poolFile object.
func readPool(r io.Reader) (poolFile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return poolFile{}, errors.Wrap(err, "cannot read pool")
	}
	raw = bytes.TrimSpace(raw)

	var pf poolFile
	if len(raw) > 0 && raw[0] == '[' {
		err = json.Unmarshal(raw, &pf.MatchData)
	} else {
		err = json.Unmarshal(raw, &pf)
	}
	if err != nil {
		return poolFile{}, errors.Wrap(err, server.MsgBadRequest)
	}

	return pf, nil
}

func (pf poolFile) requests() []request.SwapRequest {
	if pf.MatchData != nil {
		return pf.MatchData
	}
	return pf.RequestData
}
