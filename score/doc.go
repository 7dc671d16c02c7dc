// Package score turns candidate exchange cycles into integer objective values.
//
// Every cycle c of k participants scores
//
//	score(c) = W·k + Σ_{v ∈ c} w(pred(v) → v)
//
// where W = (sum of all request weights in the call) + 1 and w(u→v) is the
// weight of the representative request on edge u→v. Because W exceeds any
// achievable weight sum, maximizing the total score first maximizes the number
// of participants served and only then the total weight of the requests used.
//
// All arithmetic is exact int64. Inputs are bounded by request.MaxTotalWeight,
// which keeps W·|V| far below the int64 range for any realistic pool.
package score
