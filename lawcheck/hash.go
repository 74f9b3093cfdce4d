// SPDX-License-Identifier: MIT
// Package: lvlforge/lawcheck
//
// hash.go — CheckHashConsistency: eq(x,y) ⇒ hash(x) == hash(y).
//
// The converse is deliberately NOT required: unequal instances may
// legitimately collide.

package lawcheck

import (
	"fmt"
)

// CheckHashConsistency verifies that hash agrees with eq over the sample:
// for every unordered pair where eq holds, the hashes must be identical.
// Every violating pair is counted (recorded up to any cap).
//
// A failed law is report data; the returned error is non-nil only for input
// faults or a panic inside eq/hash (*CallbackError, tagged with the
// triggering indices).
//
// Purity: no shared state; safe to call concurrently on disjoint samples.
// Complexity: O(n) hash + O(n²) eq invocations; O(n) space.
func CheckHashConsistency[T any](sample []T, eq EqualFn[T], hash HashFn[T], opts ...Option) (Report, error) {
	if len(sample) == 0 {
		return Report{}, fmt.Errorf("%s: %w", CheckNameHashConsistency, ErrEmptySample)
	}
	if eq == nil {
		return Report{}, fmt.Errorf("%s: eq: %w", CheckNameHashConsistency, ErrNilRelation)
	}
	if hash == nil {
		return Report{}, fmt.Errorf("%s: hash: %w", CheckNameHashConsistency, ErrNilRelation)
	}

	cfg := newConfig(opts...)
	n := len(sample)
	rep := Report{Check: CheckNameHashConsistency, SampleSize: n}

	// Hash every element once, guarded.
	hashes := make([]uint64, n)
	for i := 0; i < n; i++ {
		h, err := guardHash(CheckNameHashConsistency, hash, sample[i], i)
		if err != nil {
			return Report{}, err
		}
		hashes[i] = h
	}

	// Unordered pairs: equality forces hash agreement.
	hc := LawResult{Law: HashConsistency, Status: Passed}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ok, err := guardEq(CheckNameHashConsistency, eq, sample[i], sample[j], i, j)
			if err != nil {
				return Report{}, err
			}
			if ok && hashes[i] != hashes[j] {
				hc.record(cfg, Counterexample{
					Law:     HashConsistency,
					Indices: []int{i, j},
					Values:  []any{sample[i], sample[j]},
					Detail:  fmt.Sprintf("eq(x, y) but hash(x)=%d != hash(y)=%d", hashes[i], hashes[j]),
				})
			}
		}
	}

	rep.Laws = []LawResult{hc}

	return rep, nil
}
