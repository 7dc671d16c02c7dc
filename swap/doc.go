// Package swap is the dutyswap entry point.
//
// Optimize validates a request pool, runs the selected Strategy and wraps the
// outcome in a Result envelope ready for JSON:
//
//	res, err := swap.Optimize(ctx, reqs, 3, swap.WithPool("ward-7"))
//
// Strategies (by name):
//
//	variable          bounded cycles up to |maxSteps| participants, solved
//	                  exactly as a set packing (default).
//	maximal_matching  greedy one-on-one pairs in input order.
//	bipartite         maximum-weight one-on-one pairs.
//	unlimited         chains of any length (exact cycle cover).
//
// Errors are classified with errors.Mark so callers branch on four kinds:
// ErrInput, ErrEnumerationLimit, ErrNoOptimalSolution and ErrInternal.
// Failure(err) builds the success=false envelope for any of them.
//
// Optimize holds no state between calls and is safe for concurrent use.
package swap
