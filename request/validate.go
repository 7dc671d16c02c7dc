package request

import (
	"github.com/cockroachdb/errors"
)

// Validate checks a request list before it enters the pipeline.
//
// Rules, checked in input order so the first offending record is reported:
//  1. list must be non-empty;
//  2. ID, From and To must be non-empty;
//  3. From != To;
//  4. Weight >= 0;
//  5. IDs are unique;
//  6. Σ Weight <= MaxTotalWeight.
//
// Complexity: O(n) time, O(n) extra space for the ID set.
func Validate(reqs []SwapRequest) error {
	if len(reqs) == 0 {
		return ErrEmptyRequests
	}

	var (
		seen  = make(map[string]int, len(reqs))
		total int64
		i     int
		r     SwapRequest
	)
	for i, r = range reqs {
		if r.ID == "" {
			return errors.Wrapf(ErrEmptyID, "request #%d", i)
		}
		if r.From == "" || r.To == "" {
			return errors.Wrapf(ErrEmptyParticipant, "request %q", r.ID)
		}
		if r.From == r.To {
			return errors.Wrapf(ErrSelfSwap, "request %q (%s)", r.ID, r.From)
		}
		if r.Weight < 0 {
			return errors.Wrapf(ErrNegativeWeight, "request %q weight=%d", r.ID, r.Weight)
		}
		if prev, dup := seen[r.ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "request %q at #%d and #%d", r.ID, prev, i)
		}
		seen[r.ID] = i

		// Compare before adding so the running sum itself cannot overflow.
		if r.Weight > MaxTotalWeight-total {
			return errors.Wrapf(ErrWeightOverflow, "limit %d", MaxTotalWeight)
		}
		total += r.Weight
	}

	return nil
}

// TotalWeight returns Σ Weight over reqs. Callers validate first.
func TotalWeight(reqs []SwapRequest) int64 {
	var total int64
	for _, r := range reqs {
		total += r.Weight
	}

	return total
}
