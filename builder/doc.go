// Package builder provides a generic, hierarchy-safe fluent builder over a
// core.Spec: stage field values, chain setters that always return the
// most-derived builder type, and seal a validated, immutable core.Value.
//
// The package offers the following key components:
//
//   - Core[B]: the embeddable builder engine. The type parameter B is the
//     concrete builder type itself (the classic F-bounded, "self-type" binding),
//     so every fluent setter returns B and derived builders never re-override
//     inherited setters just to fix return types.
//   - Generic: a ready-bound Core[*Generic] for schema-driven use when no
//     dedicated builder type is worth declaring (New(spec)).
//   - ValidationError: the batched build report — every missing required field
//     and every staging/invariant fault in one structured error, branchable
//     per-cause via errors.Is.
//
// Staging semantics (Set / TrySet):
//
//   - Unknown field, wrong-typed value, or a second write to a write-once
//     field is rejected at assignment time — TrySet returns the fault
//     immediately; the fluent Set records it for the batched Build report,
//     since a chaining setter cannot return an error.
//   - Ordinary reassignment is last-write-wins.
//
// Build semantics (copy-then-validate):
//
//   - Build first freezes the staging state into a private Snapshot
//     (core.Spec.Freeze), so no external reference can invalidate checks
//     between validation and sealing.
//   - Presence pass: staged faults + every missing required field, batched
//     into one *ValidationError (never fail-fast-on-first).
//   - Invariant pass (only on a clean presence pass): every cross-field
//     invariant runs against the frozen Snapshot, base Spec first, all
//     failures batched.
//   - Success seals the Snapshot into an immutable *core.Value and consumes
//     the builder: any later TrySet/Set/Build is a state error (ErrConsumed).
//
// Hierarchies:
//
//	Declare a parameterized mixin holding the base setters, then bind:
//
//	  type PersonCore[B any] struct{ builder.Core[B] }
//	  func (p *PersonCore[B]) Name(s string) B { return p.Set("name", s) }
//
//	  type EmployeeBuilder struct{ PersonCore[*EmployeeBuilder] }
//
//	EmployeeBuilder inherits Name(...) returning *EmployeeBuilder, and its
//	Build composes base presence/invariant checks before derived ones because
//	the derived core.Spec was produced by Extend.
//
// Concurrency: a builder is single-writer by design — no internal locking,
// because a lock here would hide a usage error rather than prevent one.
// The sealed Value is immutable and freely shareable.
//
// Guarantees:
//
//   - Batched, structured validation reports (ValidationError), never partial.
//   - Sentinel errors (errors.Is) for every fault class; no panics at runtime.
//   - Deterministic report order: base-first declaration order throughout.
//
// See individual function documentation for detailed contracts and
// performance notes.
package builder
