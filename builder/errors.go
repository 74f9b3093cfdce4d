// SPDX-License-Identifier: MIT
// Package: lvlforge/builder
//
// errors.go — sentinel errors and the batched ValidationError report.
//
// Error policy (explicit and strict):
//   • Two kinds at the package boundary: validation errors (bad input —
//     recoverable with corrected input and a fresh builder) and state errors
//     (programmer misuse — prevented, not retried).
//   • Only sentinel variables are exposed; callers MUST branch with
//     errors.Is(err, ErrX), never by string matching.
//   • ValidationError batches every fault of one Build into a single error
//     whose Unwrap() []error exposes each underlying sentinel.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • errors.Is(err, ErrValidation) matches ANY batched validation report.
//   • errors.Is(err, ErrMissingField / ErrTypeMismatch / ErrWriteOnce /
//     ErrUnknownField / ErrInvariant) matches reports containing that fault.
//   • errors.Is(err, ErrConsumed) is the state-error branch: do not retry,
//     fix the call site.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is the umbrella sentinel carried by every ValidationError.
// Classification: validation (recoverable with corrected input).
// Usage: if errors.Is(err, ErrValidation) { /* inspect the report */ }.
var ErrValidation = errors.New("builder: validation failed")

// ErrUnknownField indicates an assignment to a field the Spec never declared.
// Usage: if errors.Is(err, ErrUnknownField) { /* fix the field name */ }.
var ErrUnknownField = errors.New("builder: unknown field")

// ErrTypeMismatch indicates an assigned value whose dynamic type is not
// assignable to the field's declared type. Rejected at assignment time, the
// earliest point the fault is observable.
// Usage: if errors.Is(err, ErrTypeMismatch) { /* fix the value's type */ }.
var ErrTypeMismatch = errors.New("builder: value type mismatch")

// ErrWriteOnce indicates a second assignment to a field declared WriteOnce;
// the first assignment stays in effect.
// Usage: if errors.Is(err, ErrWriteOnce) { /* drop the reassignment */ }.
var ErrWriteOnce = errors.New("builder: write-once field reassigned")

// ErrMissingField indicates at least one required field was never assigned
// (and carries no default). The ValidationError enumerates every such name.
// Usage: if errors.Is(err, ErrMissingField) { /* supply the fields */ }.
var ErrMissingField = errors.New("builder: required field missing")

// ErrInvariant indicates a declared cross-field invariant failed against the
// frozen build snapshot.
// Usage: if errors.Is(err, ErrInvariant) { /* fix the field combination */ }.
var ErrInvariant = errors.New("builder: invariant violated")

// ErrConsumed indicates use of a builder after a successful Build.
// Classification: STATE error — programmer misuse, not retryable input.
// Usage: if errors.Is(err, ErrConsumed) { /* use a fresh builder */ }.
var ErrConsumed = errors.New("builder: builder already consumed")

// ErrUnbound indicates a Core[B] was used before Init bound its spec and
// self-reference. Classification: state error.
// Usage: if errors.Is(err, ErrUnbound) { /* call Init in the constructor */ }.
var ErrUnbound = errors.New("builder: builder not initialized")

// Fault describes one batched validation finding. Exactly one of the two
// labels is set: Field for staging faults, Rule for invariant faults.
type Fault struct {
	// Field is the offending field name for staging faults (unknown field,
	// type mismatch, write-once reassignment); empty for invariant faults.
	Field string
	// Rule is the violated invariant's declared name; empty for staging faults.
	Rule string
	// Err wraps the underlying sentinel; branch with errors.Is.
	Err error
}

// ValidationError is the batched report of one failed Build: every missing
// required field and every staging/invariant fault, in deterministic
// base-first declaration order. It is a validation error in the §error-policy
// sense — recoverable by supplying corrected input to a fresh builder.
type ValidationError struct {
	// Spec is the name of the spec being built, for report context.
	Spec string
	// Missing lists every required field never assigned, base fields first.
	Missing []string
	// Faults lists staging and invariant faults in detection order.
	Faults []Fault
}

// Error renders the full batched report on one line.
// Complexity: O(len(Missing) + len(Faults)).
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: validation failed", e.Spec)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "; missing required fields %v", e.Missing)
	}
	for _, f := range e.Faults {
		switch {
		case f.Field != "":
			fmt.Fprintf(&b, "; field %q: %v", f.Field, f.Err)
		case f.Rule != "":
			fmt.Fprintf(&b, "; invariant %q: %v", f.Rule, f.Err)
		default:
			fmt.Fprintf(&b, "; %v", f.Err)
		}
	}

	return b.String()
}

// Unwrap exposes the umbrella sentinel plus every batched cause, so that
// errors.Is(err, ErrValidation) and errors.Is(err, ErrTypeMismatch) etc. all
// hold against the single report.
// Complexity: O(len(Missing)>0 + len(Faults)).
func (e *ValidationError) Unwrap() []error {
	out := make([]error, 0, len(e.Faults)+2)
	out = append(out, ErrValidation)
	if len(e.Missing) > 0 {
		out = append(out, ErrMissingField)
	}
	for _, f := range e.Faults {
		out = append(out, f.Err)
	}

	return out
}

// empty reports whether the accumulating report holds no findings yet.
func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Faults) == 0
}
