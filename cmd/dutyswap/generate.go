package main

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/dutyswap/builder"
)

// Pool shapes understood by generate.
const (
	shapeRing       = "ring"
	shapePath       = "path"
	shapeReciprocal = "reciprocal"
	shapeComplete   = "complete"
	shapeRandom     = "random"
)

var (
	ShapeFlag = cli.StringFlag{
		Name:  "shape",
		Usage: "ring, path, reciprocal, complete or random",
		Value: shapeRandom,
	}
	ParticipantsFlag = cli.IntFlag{
		Name:    "participants",
		Aliases: []string{"n"},
		Usage:   "number of participants",
		Value:   10,
	}
	ProbabilityFlag = cli.Float64Flag{
		Name:  "probability",
		Usage: "edge probability for the random shape",
		Value: 0.2,
	}
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for random shapes and weights",
		Value: 1,
	}
	WeightMaxFlag = cli.Int64Flag{
		Name:  "weight-max",
		Usage: "draw weights uniformly from [0, weight-max]; 0 gives every request weight 1",
	}
	RosterFlag = cli.BoolFlag{
		Name:  "roster",
		Usage: "name the first ten participants Adam, Beth, ... instead of P0, P1, ...",
	}
)

// GenerateCommand writes a synthetic pool file.
var GenerateCommand = cli.Command{
	Action: generateAction,
	Name:   "generate",
	Usage:  "generate a synthetic pool of swap requests",
	Flags: []cli.Flag{
		&ShapeFlag,
		&ParticipantsFlag,
		&ProbabilityFlag,
		&SeedFlag,
		&WeightMaxFlag,
		&RosterFlag,
		&PoolFlag,
		&MaxStepsFlag,
	},
	Description: `
Prints a pool in the format read by the optimize command.
`,
}

// generateAction builds the pool and prints it.
func generateAction(ctx *cli.Context) error {
	n := ctx.Int(ParticipantsFlag.Name)

	var cons builder.Constructor
	switch shape := ctx.String(ShapeFlag.Name); shape {
	case shapeRing:
		cons = builder.Ring(n)
	case shapePath:
		cons = builder.Path(n)
	case shapeReciprocal:
		cons = builder.Reciprocal(n)
	case shapeComplete:
		cons = builder.Complete(n)
	case shapeRandom:
		cons = builder.RandomSparse(n, ctx.Float64(ProbabilityFlag.Name))
	default:
		return errors.Newf("unknown shape %q", shape)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(ctx.Int64(SeedFlag.Name))}
	if m := ctx.Int64(WeightMaxFlag.Name); m > 0 {
		bopts = append(bopts, builder.WithWeightFn(builder.UniformWeightFn(0, m)))
	}
	if ctx.Bool(RosterFlag.Name) {
		bopts = append(bopts, builder.WithIDScheme(builder.RosterIDFn))
	}

	reqs, err := builder.BuildPool(bopts, cons)
	if err != nil {
		return err
	}

	pf := poolFile{Pool: ctx.String(PoolFlag.Name), MatchData: reqs}
	if ctx.IsSet(MaxStepsFlag.Name) {
		steps := ctx.Int(MaxStepsFlag.Name)
		pf.MaxSteps = &steps
	}

	enc := json.NewEncoder(ctx.App.Writer)
	enc.SetIndent("", "  ")

	return enc.Encode(pf)
}
