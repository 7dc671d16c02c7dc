// Package dutyswap matches duty swap requests into disjoint exchange chains.
//
// 🚀 What is dutyswap?
//
//	Participants post directed requests "I give my duty to you" with an
//	integer desirability weight. dutyswap finds a set of closed exchange
//	chains (A→B→…→A) in which nobody appears twice, maximizing first the
//	number of fulfilled requests and then their total weight.
//
// ✨ Pipeline
//
//	request/    - SwapRequest record and input validation
//	core/       - request graph: participants, collapsed edges, representatives
//	cycles/     - bounded simple-cycle enumeration with return-distance pruning
//	score/      - lexicographic (count, weight) scores folded into one integer
//	packing/    - exact weighted set packing (branch & bound, LP bound via gonum)
//	assemble/   - selected cycles back to ordered request chains
//	pairing/    - reciprocal pairs for the matching strategies
//	cyclecover/ - unbounded chains via a sparse assignment problem
//	swap/       - strategies and the Optimize entry point
//
// Around the core:
//
//	builder/      - synthetic request pools for tests and benchmarks
//	logger/       - leveled logging on op/go-logging
//	server/       - POST /optimize, /healthz and Prometheus /metrics
//	cmd/dutyswap/ - CLI: optimize, serve, generate
//
// Quick start:
//
//	res, err := swap.Optimize(ctx, reqs, 3)
//	if err != nil {
//		// errors.Is(err, swap.ErrInput) etc.
//	}
//	fmt.Println(res.SwapCount, res.Result)
package dutyswap
