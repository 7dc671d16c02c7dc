package swap

import (
	"context"
	"math"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/assemble"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/packing"
	"github.com/katalvlaran/dutyswap/request"
)

// Messages used in failure envelopes for the generic kinds.
const (
	MsgNoOptimalSolution = "Optimal solution not found"
	MsgInternal          = "Error in optimization"
)

// Optimize runs the configured strategy on reqs and returns the result
// envelope. maxSteps bounds chain length for the variable strategy; its
// absolute value is used and a bound below 2 yields an empty result.
//
// On failure the returned Result is Failure(err) and err matches exactly one
// of ErrInput, ErrEnumerationLimit, ErrNoOptimalSolution or ErrInternal.
func Optimize(ctx context.Context, reqs []request.SwapRequest, maxSteps int, opts ...Option) (Result, error) {
	start := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	fail := func(err error) (Result, error) {
		err = classify(err)
		if o.Log != nil {
			if errors.Is(err, ErrInternal) {
				o.Log.Errorf("%s/%s: %+v", o.Strategy.Name(), o.Pool, err)
			} else {
				o.Log.Warningf("%s/%s: %v", o.Strategy.Name(), o.Pool, err)
			}
		}
		res := Failure(err)
		res.Type, res.Pool = o.Strategy.Name(), o.Pool
		res.Runtime = seconds(time.Since(start))

		return res, err
	}

	if err := request.Validate(reqs); err != nil {
		return fail(errors.Mark(err, ErrInput))
	}

	out, err := o.Strategy.FindSwaps(ctx, Problem{
		Requests:       reqs,
		MaxSteps:       maxSteps,
		Representative: o.Representative,
		MaxCycles:      o.MaxCycles,
		Solver:         o.Solver,
		Log:            o.Log,
	})
	if err != nil {
		return fail(err)
	}

	weight, err := checkOutcome(reqs, out)
	if err != nil {
		return fail(errors.Mark(err, ErrInternal))
	}

	res := Result{
		Type:        o.Strategy.Name(),
		Pool:        o.Pool,
		Success:     true,
		SwapCount:   out.SwapCount,
		MaxSteps:    out.MaxSteps,
		TotalWeight: weight,
		Runtime:     seconds(time.Since(start)),
		Result:      assemble.Strings(out.Chains),
	}
	if o.Log != nil {
		o.Log.Infof("%s/%s: %d chains, %d swaps, weight %d, %d candidates in %.3fs",
			res.Type, res.Pool, len(out.Chains), res.SwapCount, res.TotalWeight, out.Candidates, res.Runtime)
	}

	return res, nil
}

// Failure builds the success=false envelope for err.
func Failure(err error) Result {
	return Result{
		Success: false,
		Result:  [][]assemble.Link{},
		Error:   Message(err),
	}
}

// Message maps err to the text shown to callers. Internal and non-optimal
// failures are reported generically.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInternal):
		return MsgInternal
	case errors.Is(err, ErrNoOptimalSolution):
		return MsgNoOptimalSolution
	default:
		return err.Error()
	}
}

// classify marks err with its kind unless it already carries one.
func classify(err error) error {
	switch {
	case errors.IsAny(err, ErrInput, ErrEnumerationLimit, ErrNoOptimalSolution, ErrInternal):
		return err
	case errors.IsAny(err,
		request.ErrEmptyRequests, request.ErrEmptyID, request.ErrEmptyParticipant,
		request.ErrSelfSwap, request.ErrNegativeWeight, request.ErrDuplicateID,
		request.ErrWeightOverflow, ErrUnknownStrategy):
		return errors.Mark(err, ErrInput)
	case errors.Is(err, cycles.ErrTooManyCycles):
		return errors.Mark(err, ErrEnumerationLimit)
	case errors.IsAny(err, packing.ErrNoOptimalSolution, context.DeadlineExceeded, context.Canceled):
		return errors.Mark(err, ErrNoOptimalSolution)
	default:
		return errors.Mark(err, ErrInternal)
	}
}

// checkOutcome verifies that every chain is closed, uses input requests as
// given, and that no participant appears twice. It returns the summed weight
// of the requests used.
func checkOutcome(reqs []request.SwapRequest, out Outcome) (int64, error) {
	byID := make(map[string]request.SwapRequest, len(reqs))
	for _, r := range reqs {
		byID[r.ID] = r
	}

	var (
		seen   = make(map[string]bool)
		count  int
		weight int64
	)
	for i, ch := range out.Chains {
		if !ch.Closed() {
			return 0, errors.AssertionFailedf("chain %d is not closed", i)
		}
		for _, l := range ch {
			r, ok := byID[l.ID]
			if !ok || r.From != l.From || r.To != l.To {
				return 0, errors.AssertionFailedf("chain %d: link %s %s→%s not in input", i, l.ID, l.From, l.To)
			}
			if seen[l.From] {
				return 0, errors.AssertionFailedf("participant %s served twice", l.From)
			}
			seen[l.From] = true
			weight += r.Weight
		}
		count += len(ch)
	}
	if count != out.SwapCount {
		return 0, errors.AssertionFailedf("swap count %d, chains hold %d", out.SwapCount, count)
	}

	return weight, nil
}

// seconds rounds d to milliseconds, expressed in seconds.
func seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}
