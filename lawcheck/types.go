// SPDX-License-Identifier: MIT
// Package: lvlforge/lawcheck
//
// types.go — relation function types, Law/Status enums, Counterexample,
// LawResult, Report, sentinel errors, and CallbackError.
//
// Design contract (strict):
//   • Failed laws are report data; errors are reserved for bad inputs and
//     for faults inside caller-supplied functions.
//   • All report orders are deterministic for a fixed sample.
//   • Sentinels are branchable via errors.Is; CallbackError preserves the
//     recovered panic value untouched.

package lawcheck

import (
	"errors"
	"fmt"
)

// EqualFn reports whether two instances are equal. The caller asserts this
// relation is an equivalence; the checks verify the assertion empirically.
type EqualFn[T any] func(a, b T) bool

// HashFn maps an instance to its hash code.
type HashFn[T any] func(a T) uint64

// CompareFn is a three-way comparison: negative for a<b, zero for a==b,
// positive for a>b. Only the sign is significant.
type CompareFn[T any] func(a, b T) int

// Sentinel errors for check inputs.
var (
	// ErrEmptySample indicates a check was invoked over an empty sample;
	// an empty universe can vacuously satisfy any law, so it is rejected.
	// Usage: if errors.Is(err, ErrEmptySample) { /* supply instances */ }.
	ErrEmptySample = errors.New("lawcheck: empty sample")

	// ErrNilRelation indicates a required relation function was nil.
	// Usage: if errors.Is(err, ErrNilRelation) { /* pass the function */ }.
	ErrNilRelation = errors.New("lawcheck: nil relation function")

	// ErrCallbackPanic tags a panic recovered from a caller-supplied relation
	// function; the concrete *CallbackError names the triggering indices.
	// Usage: if errors.Is(err, ErrCallbackPanic) { /* fix the relation fn */ }.
	ErrCallbackPanic = errors.New("lawcheck: relation function panicked")
)

// Canonical check names, used as Report.Check and CallbackError context.
const (
	CheckNameEquality        = "CheckEquality"
	CheckNameHashConsistency = "CheckHashConsistency"
	CheckNameOrdering        = "CheckOrdering"
)

// CallbackError reports a fault inside a caller-supplied function: the panic
// value is propagated unchanged, tagged with the sample indices whose
// evaluation triggered it.
type CallbackError struct {
	// Check is the entry point that was running (CheckName* constant).
	Check string
	// Indices are the sample positions being evaluated when the panic fired.
	Indices []int
	// Recovered is the panic value, untouched.
	Recovered any
}

// Error renders the fault with its triggering indices.
func (e *CallbackError) Error() string {
	return fmt.Sprintf("%s: callback panicked at sample indices %v: %v", e.Check, e.Indices, e.Recovered)
}

// Unwrap lets errors.Is(err, ErrCallbackPanic) branch on the fault class.
func (e *CallbackError) Unwrap() error { return ErrCallbackPanic }

// Status classifies a law's outcome over a sample.
type Status int

const (
	// Passed: no violation over the sample.
	Passed Status = iota
	// Failed: at least one counterexample exists.
	Failed
	// NotApplicable: the law has no meaning for the sample's type (e.g.
	// non-nullity over a type with no null representation); reported
	// explicitly, never silently passed.
	NotApplicable
)

// String renders the status for reports.
func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case NotApplicable:
		return "not-applicable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Law identifies one verified relation law.
type Law int

const (
	// Reflexivity: ∀x eq(x,x).
	Reflexivity Law = iota
	// Symmetry: ∀x,y eq(x,y) == eq(y,x).
	Symmetry
	// Transitivity: ∀x,y,z eq(x,y) ∧ eq(y,z) ⇒ eq(x,z).
	Transitivity
	// NonNullity: ∀x ¬eq(x, null), when the type has a null form.
	NonNullity
	// HashConsistency: ∀x,y eq(x,y) ⇒ hash(x) == hash(y).
	HashConsistency
	// SignAntisymmetry: ∀x,y sign(cmp(x,y)) == -sign(cmp(y,x)).
	SignAntisymmetry
	// OrderTransitivity: ∀x,y,z cmp(x,y)>0 ∧ cmp(y,z)>0 ⇒ cmp(x,z)>0,
	// and the symmetric <0 chain.
	OrderTransitivity
	// OrderEqualityConsistency: cmp(x,y)==0 ⇔ eq(x,y). Advisory only —
	// mismatches surface as report warnings, never failures.
	OrderEqualityConsistency
)

// String renders the law name for reports.
func (l Law) String() string {
	switch l {
	case Reflexivity:
		return "reflexivity"
	case Symmetry:
		return "symmetry"
	case Transitivity:
		return "transitivity"
	case NonNullity:
		return "non-nullity"
	case HashConsistency:
		return "hash-consistency"
	case SignAntisymmetry:
		return "sign-antisymmetry"
	case OrderTransitivity:
		return "order-transitivity"
	case OrderEqualityConsistency:
		return "order-equality-consistency"
	default:
		return fmt.Sprintf("Law(%d)", int(l))
	}
}

// Counterexample pins one violation (or warning) to the concrete sample
// elements that exhibit it.
type Counterexample struct {
	// Law is the violated (or, for warnings, advisory) law.
	Law Law
	// Indices are the sample positions involved, in quantifier order.
	Indices []int
	// Values are the corresponding sample elements, for direct diagnosis.
	Values []any
	// Detail is a one-line human-readable account of the violation.
	Detail string
}

// LawResult is one law's outcome: status, the total number of violations
// observed, and the recorded counterexamples (all of them, unless capped by
// WithMaxCounterexamples — Violations still counts every one).
type LawResult struct {
	Law             Law
	Status          Status
	Violations      int
	Counterexamples []Counterexample
}

// record marks the law failed and stores the counterexample, honoring the
// configured cap while still counting every violation.
func (lr *LawResult) record(cfg config, ce Counterexample) {
	lr.Status = Failed
	lr.Violations++
	if cfg.room(len(lr.Counterexamples)) {
		lr.Counterexamples = append(lr.Counterexamples, ce)
	}
}

// Report is the structured outcome of one check over one sample.
type Report struct {
	// Check is the producing entry point (CheckName* constant).
	Check string
	// SampleSize is len(sample) at invocation.
	SampleSize int
	// Laws holds one LawResult per law the check covers, in a fixed order.
	Laws []LawResult
	// Warnings holds advisory counterexamples (OrderEqualityConsistency);
	// they never affect Passed/Failed.
	Warnings []Counterexample
}

// Passed reports whether every covered law is Passed or NotApplicable.
// Warnings do not affect the outcome.
// Complexity: O(len(Laws)).
func (r Report) Passed() bool {
	for _, lr := range r.Laws {
		if lr.Status == Failed {
			return false
		}
	}

	return true
}

// Failed is the negation of Passed.
// Complexity: O(len(Laws)).
func (r Report) Failed() bool { return !r.Passed() }

// Law returns the result for one law, if the check covers it.
// Complexity: O(len(Laws)).
func (r Report) Law(l Law) (LawResult, bool) {
	for _, lr := range r.Laws {
		if lr.Law == l {
			return lr, true
		}
	}

	return LawResult{}, false
}
