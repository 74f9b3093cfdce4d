// SPDX-License-Identifier: MIT
// Package: lvlforge/builder
//
// methods.go — staging (TrySet/Set) and sealing (Build) on Core[B].
//
// Policy:
//   - TrySet is the earliest rejection point: unknown field, wrong type and
//     write-once reassignments fail at assignment time, never deferred.
//   - Set is the fluent form; it cannot return an error, so it records the
//     TrySet rejection for Build's batched report and keeps chaining.
//   - Build is copy-then-validate: checks run against a frozen core.Snapshot,
//     never against the live staging map.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlforge/core"
)

// Spec returns the spec this builder stages values for, or nil when unbound.
// Complexity: O(1).
func (c *Core[B]) Spec() *core.Spec { return c.spec }

// Consumed reports whether a successful Build already happened.
// Complexity: O(1).
func (c *Core[B]) Consumed() bool { return c.consumed }

// TrySet assigns a value to a declared field, rejecting at the earliest
// possible point:
//   - ErrUnbound / ErrConsumed — state errors (misuse; fix the call site).
//   - ErrUnknownField — name not declared anywhere in the spec hierarchy.
//   - ErrTypeMismatch — value's dynamic type not assignable to the field type.
//   - ErrWriteOnce — second assignment to a WriteOnce field (first one stays).
//
// Ordinary fields are last-write-wins. Side effect: mutates only the staging
// state owned by this builder.
// Complexity: O(depth of the spec hierarchy) for the field lookup.
func (c *Core[B]) TrySet(name string, v any) error {
	if !c.bound {
		return ErrUnbound
	}
	if c.consumed {
		return fmt.Errorf("%s: TrySet(%q): %w", c.spec.Name(), name, ErrConsumed)
	}

	f, ok := c.spec.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: field %q: %w", c.spec.Name(), name, ErrUnknownField)
	}
	if !f.Accepts(v) {
		return fmt.Errorf("%s: field %q: %T not assignable to %s: %w",
			c.spec.Name(), name, v, f.Type(), ErrTypeMismatch)
	}
	if f.IsWriteOnce() {
		if _, already := c.state[name]; already {
			return fmt.Errorf("%s: field %q: %w", c.spec.Name(), name, ErrWriteOnce)
		}
	}

	c.state[name] = v

	return nil
}

// Set is the fluent form of TrySet: it always returns the bound self so
// chaining continues, and records any rejection for the batched Build report
// (a chaining setter cannot surface an error itself; the fault is still
// detected here, at assignment time).
//
// Panics on an unbound Core: with no bound self there is nothing lawful to
// chain on, so the misuse fails fast like Init does. TrySet and Build remain
// the non-panicking surfaces (ErrUnbound).
// Complexity: same as TrySet.
func (c *Core[B]) Set(name string, v any) B {
	if !c.bound {
		panic("builder: Set on unbound Core (call Init first)")
	}
	if err := c.TrySet(name, v); err != nil {
		// Keep the first detection; Build folds these into ValidationError.
		c.staged = append(c.staged, Fault{Field: name, Err: err})
	}

	return c.self
}

// Build validates the staged state and seals it into an immutable core.Value.
//
// Order of operations (copy-then-validate, batch-report):
//  1. State gate: ErrUnbound / ErrConsumed — a second Build on a consumed
//     builder always fails with a state error.
//  2. Freeze: copy the staging state and apply declared defaults into a
//     private core.Snapshot; later caller mutation cannot invalidate checks.
//  3. Presence pass: staged Set rejections plus every missing required field
//     (base-first), batched into one *ValidationError.
//  4. Invariant pass, only on a clean presence pass: every cross-field
//     invariant runs against the frozen snapshot, base spec first, all
//     failures batched into one *ValidationError.
//  5. Seal: mark the builder consumed, discard the staging state, and wrap
//     the snapshot into the immutable value.
//
// A failed Build does NOT consume the builder, but the recoverable path per
// the error contract is corrected input on a fresh builder.
// Complexity: O(F + I·invariant cost) time, O(F) space for the snapshot.
func (c *Core[B]) Build() (*core.Value, error) {
	if !c.bound {
		return nil, ErrUnbound
	}
	if c.consumed {
		return nil, fmt.Errorf("%s: Build: %w", c.spec.Name(), ErrConsumed)
	}

	// Freeze before any check: validation must never observe live state.
	snap := c.spec.Freeze(c.state)

	report := &ValidationError{Spec: c.spec.Name()}

	// Presence pass: assignment-time rejections + missing required fields.
	report.Faults = append(report.Faults, c.staged...)
	report.Missing = c.spec.MissingRequired(snap)
	if !report.empty() {
		return nil, report
	}

	// Invariant pass: all failures collected, base-first, none short-circuit.
	for _, f := range c.spec.BrokenInvariants(snap) {
		// Double %w keeps both branches alive: the package sentinel and
		// whatever sentinel the invariant itself returned.
		report.Faults = append(report.Faults, Fault{
			Rule: f.Rule,
			Err:  fmt.Errorf("%s: %w: %w", f.Rule, f.Err, ErrInvariant),
		})
	}
	if !report.empty() {
		return nil, report
	}

	// Seal: single-use from here on; the staging state is gone for good.
	c.consumed = true
	c.state = nil
	c.staged = nil

	return c.spec.Seal(snap), nil
}
