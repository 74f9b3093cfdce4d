// SPDX-License-Identifier: MIT
// Package: lvlforge/lawcheck
//
// ordering.go — CheckOrdering: the total-order laws of a three-way compare.
//
// Quantifier ranges (explicit):
//   • Sign-antisymmetry:   ∀ i≤j   sign(cmp(s[i],s[j])) == -sign(cmp(s[j],s[i]))
//     (i == j included: cmp(x, x) must be zero).
//   • Order transitivity:  ∀ ordered i,j,k  cmp>0 chains imply cmp(s[i],s[k])>0,
//     and symmetrically for <0 chains. Both directions are scanned explicitly
//     so a broken relation yields a complete report even when antisymmetry
//     also fails.
//   • Consistency with eq: ∀ i<j  (cmp==0) ⇔ eq — ADVISORY: mismatches are
//     report warnings, never failures, because a total order is permitted to
//     disagree with equality.

package lawcheck

import (
	"fmt"
)

// CheckOrdering empirically verifies the total-order laws of cmp over the
// sample. eq is optional: pass nil to skip the consistency advisory (the
// relation does not require it).
//
// A failed law is report data; the returned error is non-nil only for input
// faults (ErrEmptySample, nil cmp → ErrNilRelation) or a panic inside
// cmp/eq (*CallbackError, tagged with the triggering indices).
//
// Purity: no shared state; safe to call concurrently on disjoint samples.
// Complexity: O(n²) cmp invocations + O(n³) matrix lookups; O(n²) space.
func CheckOrdering[T any](sample []T, cmp CompareFn[T], eq EqualFn[T], opts ...Option) (Report, error) {
	if len(sample) == 0 {
		return Report{}, fmt.Errorf("%s: %w", CheckNameOrdering, ErrEmptySample)
	}
	if cmp == nil {
		return Report{}, fmt.Errorf("%s: cmp: %w", CheckNameOrdering, ErrNilRelation)
	}

	cfg := newConfig(opts...)
	n := len(sample)
	rep := Report{Check: CheckNameOrdering, SampleSize: n}

	// One O(n²) evaluation pass; signs only, magnitudes carry no meaning.
	m, err := cmpMatrix(CheckNameOrdering, sample, cmp)
	if err != nil {
		return Report{}, err
	}

	// Sign-antisymmetry, diagonal included (cmp(x, x) must be zero).
	anti := LawResult{Law: SignAntisymmetry, Status: Passed}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if m[i][j] != -m[j][i] {
				anti.record(cfg, Counterexample{
					Law:     SignAntisymmetry,
					Indices: []int{i, j},
					Values:  []any{sample[i], sample[j]},
					Detail:  fmt.Sprintf("sign(cmp(x, y))=%d but sign(cmp(y, x))=%d", m[i][j], m[j][i]),
				})
			}
		}
	}

	// Chain transitivity over every ordered triple, both directions.
	tr := LawResult{Law: OrderTransitivity, Status: Passed}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if m[i][j] > 0 && m[j][k] > 0 && m[i][k] <= 0 {
					tr.record(cfg, Counterexample{
						Law:     OrderTransitivity,
						Indices: []int{i, j, k},
						Values:  []any{sample[i], sample[j], sample[k]},
						Detail:  "cmp(x, y)>0 and cmp(y, z)>0 but cmp(x, z)<=0",
					})
				}
				if m[i][j] < 0 && m[j][k] < 0 && m[i][k] >= 0 {
					tr.record(cfg, Counterexample{
						Law:     OrderTransitivity,
						Indices: []int{i, j, k},
						Values:  []any{sample[i], sample[j], sample[k]},
						Detail:  "cmp(x, y)<0 and cmp(y, z)<0 but cmp(x, z)>=0",
					})
				}
			}
		}
	}

	rep.Laws = []LawResult{anti, tr}

	// Consistency with equality: advisory warnings only, when eq is supplied.
	if eq != nil {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				same, gerr := guardEq(CheckNameOrdering, eq, sample[i], sample[j], i, j)
				if gerr != nil {
					return Report{}, gerr
				}
				if (m[i][j] == 0) != same {
					rep.Warnings = append(rep.Warnings, Counterexample{
						Law:     OrderEqualityConsistency,
						Indices: []int{i, j},
						Values:  []any{sample[i], sample[j]},
						Detail:  fmt.Sprintf("cmp(x, y)==0 is %t but eq(x, y) is %t", m[i][j] == 0, same),
					})
				}
			}
		}
	}

	return rep, nil
}
