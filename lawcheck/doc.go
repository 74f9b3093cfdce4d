// Package lawcheck empirically verifies identity contracts: the equivalence
// laws of an equality function, the equality/hash-consistency law, and the
// total-order laws of a three-way comparison — all over a caller-supplied
// sample of instances.
//
// The package offers three pure entry points:
//
//   - CheckEquality:        reflexivity, symmetry, transitivity, non-nullity
//   - CheckHashConsistency: eq(x,y) ⇒ hash(x) == hash(y)
//   - CheckOrdering:        sign-antisymmetry, chain transitivity, and an
//     optional consistency-with-equality advisory
//
// Reporting philosophy:
//
//   - A violated law is DATA, not an error: checks return a structured Report
//     with a LawResult per law — Passed, Failed (with every counterexample),
//     or NotApplicable (e.g. non-nullity over a type with no null form, which
//     is reported as such, never silently passed).
//   - Reports are complete: every violating pair/triple is counted, and
//     recorded up to the WithMaxCounterexamples cap (unlimited by default).
//   - Consistency-with-equality mismatches under CheckOrdering are WARNINGS
//     in the report, because a total order is permitted to disagree with
//     equality; they never fail the report.
//
// The only errors the checks return are input faults (ErrEmptySample,
// ErrNilRelation) and faults INSIDE the supplied functions: a panic in an
// equality/compare/hash callback is recovered and surfaced as a
// *CallbackError tagged with the sample indices that triggered it.
//
// Guarantees:
//
//   - Pure functions of their inputs: no shared state, no call-order
//     dependence; concurrent invocations over disjoint samples are safe.
//   - Deterministic reports: law order, counterexample order, and counts are
//     fixed for a fixed sample.
//   - Relation matrices are computed once (O(n²) callback invocations), so
//     the O(n³) triple scans are pure lookups.
//
// See individual function documentation for the exact quantifier ranges of
// every law and the complexity of each check.
package lawcheck
