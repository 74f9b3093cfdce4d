// SPDX-License-Identifier: MIT
// Package: lvlforge/lawcheck
//
// equality.go — CheckEquality: the equivalence-relation laws.
//
// Quantifier ranges (explicit):
//   • Reflexivity:  ∀ i            eq(s[i], s[i])
//   • Symmetry:     ∀ i<j          eq(s[i], s[j]) == eq(s[j], s[i])
//   • Transitivity: ∀ ordered i,j,k  eq(s[i],s[j]) ∧ eq(s[j],s[k]) ⇒ eq(s[i],s[k])
//   • Non-nullity:  ∀ i, s[i] not null: ¬eq(s[i], null) — only when T has a
//     null form; otherwise reported NotApplicable.

package lawcheck

import (
	"fmt"
)

// CheckEquality empirically verifies that eq behaves as an equivalence
// relation over the sample, reporting EVERY violated pair/triple (counted in
// full, recorded up to any WithMaxCounterexamples cap).
//
// A failed law is report data; the returned error is non-nil only for input
// faults (ErrEmptySample, ErrNilRelation) or a panic inside eq
// (*CallbackError, tagged with the triggering indices).
//
// Purity: no shared state; safe to call concurrently on disjoint samples.
// Complexity: O(n²) eq invocations + O(n³) matrix lookups; O(n²) space.
func CheckEquality[T any](sample []T, eq EqualFn[T], opts ...Option) (Report, error) {
	if len(sample) == 0 {
		return Report{}, fmt.Errorf("%s: %w", CheckNameEquality, ErrEmptySample)
	}
	if eq == nil {
		return Report{}, fmt.Errorf("%s: eq: %w", CheckNameEquality, ErrNilRelation)
	}

	cfg := newConfig(opts...)
	n := len(sample)
	rep := Report{Check: CheckNameEquality, SampleSize: n}

	// One O(n²) evaluation pass; every law below reads the matrix only.
	m, err := eqMatrix(CheckNameEquality, sample, eq)
	if err != nil {
		return Report{}, err
	}

	// Reflexivity: every element equals itself.
	refl := LawResult{Law: Reflexivity, Status: Passed}
	for i := 0; i < n; i++ {
		if !m[i][i] {
			refl.record(cfg, Counterexample{
				Law:     Reflexivity,
				Indices: []int{i},
				Values:  []any{sample[i]},
				Detail:  fmt.Sprintf("eq(x, x) is false at index %d", i),
			})
		}
	}

	// Symmetry: unordered pairs must agree in both directions.
	sym := LawResult{Law: Symmetry, Status: Passed}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				sym.record(cfg, Counterexample{
					Law:     Symmetry,
					Indices: []int{i, j},
					Values:  []any{sample[i], sample[j]},
					Detail:  fmt.Sprintf("eq(x, y)=%t but eq(y, x)=%t", m[i][j], m[j][i]),
				})
			}
		}
	}

	// Transitivity: every ordered triple with a connecting chain.
	tr := LawResult{Law: Transitivity, Status: Passed}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !m[i][j] {
				continue
			}
			for k := 0; k < n; k++ {
				if m[j][k] && !m[i][k] {
					tr.record(cfg, Counterexample{
						Law:     Transitivity,
						Indices: []int{i, j, k},
						Values:  []any{sample[i], sample[j], sample[k]},
						Detail:  "eq(x, y) and eq(y, z) but not eq(x, z)",
					})
				}
			}
		}
	}

	// Non-nullity: meaningful only when T has a null form.
	nn := LawResult{Law: NonNullity, Status: NotApplicable}
	if nilableKind[T]() {
		nn.Status = Passed
		var null T
		for i := 0; i < n; i++ {
			// The law quantifies over non-null x only.
			if isNull(sample[i]) {
				continue
			}
			ok, gerr := guardEq(CheckNameEquality, eq, sample[i], null, i, nullIndex)
			if gerr != nil {
				return Report{}, gerr
			}
			if ok {
				nn.record(cfg, Counterexample{
					Law:     NonNullity,
					Indices: []int{i},
					Values:  []any{sample[i]},
					Detail:  fmt.Sprintf("eq(x, null) is true at index %d", i),
				})
			}
		}
	}

	rep.Laws = []LawResult{refl, sym, tr, nn}

	return rep, nil
}
