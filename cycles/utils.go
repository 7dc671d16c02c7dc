// File: utils.go
// Role: small sequence helpers shared by enumeration, canonicalization and sorting.

package cycles

import (
	"strings"
)

// sigSep separates participants in a cycle signature.
const sigSep = "→"

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig concatenates participants with an arrow, producing the cycle signature.
func JoinSig(c []string) string {
	return strings.Join(c, sigSep)
}

// Compare orders two index sequences lexicographically; a proper prefix sorts first.
// Returns -1, 0 or +1.
func Compare(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Canonical returns the rotation of a simple cycle that starts at its
// lexicographically smallest participant. Vertices of a simple cycle are
// distinct, so the minimal rotation is fully determined by the minimum.
// Time Complexity: O(n).
func Canonical(c []string) []string {
	if len(c) == 0 {
		return nil
	}
	k := 0
	for i := 1; i < len(c); i++ {
		if c[i] < c[k] {
			k = i
		}
	}
	out := make([]string, len(c))
	for i := range c {
		out[i] = c[(k+i)%len(c)]
	}

	return out
}

// rotateMin is Canonical over vertex indices.
func rotateMin(c []int) []int {
	if len(c) == 0 {
		return nil
	}
	k := 0
	for i := 1; i < len(c); i++ {
		if c[i] < c[k] {
			k = i
		}
	}
	out := make([]int, len(c))
	for i := range c {
		out[i] = c[(k+i)%len(c)]
	}

	return out
}
