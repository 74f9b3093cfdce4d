// Package core defines the central Spec, FieldDecl, Snapshot, and Value types:
// the immutable-value model that the builder package stages into existence and
// the lawcheck package verifies.
//
// A Spec S = (fields, invariants) declares what a finished value looks like:
//
//   - Typed fields via the generic constructor Field[T] (name + reflect.Type)
//   - Required vs. optional fields (Required), with optional defaults (Default)
//   - Write-once fields that reject reassignment during staging (WriteOnce)
//   - Named cross-field invariants (WithInvariant), e.g. "start ≤ end"
//   - Hierarchies via Extend: a derived Spec inherits every base field and
//     invariant, and validation always composes base-first
//
// Why use core.Spec?
//
//   - Single declaration — field set, typing, presence and invariants in one place.
//   - Deterministic iteration — Fields() always returns base-first declaration order.
//   - Frozen validation — Freeze() produces a Snapshot copy, so invariants are
//     checked against state no caller can still mutate.
//   - Immutable product — Seal() wraps a Snapshot into a Value whose observable
//     state never changes after creation.
//
// Validation building blocks (consumed by builder.Build):
//
//	– Freeze(state)        copy staging state + apply declared defaults
//	– MissingRequired(s)   required fields absent from the frozen snapshot
//	– BrokenInvariants(s)  every failed invariant, base-first, all collected
//	– Seal(s)              wrap the frozen snapshot into an immutable *Value
//
// Values support Equal (same Spec, per-field deep equality) and Hash
// (FNV-1a over spec-ordered fields), and those two operations are themselves
// verified lawful by the lawcheck package in this repository's tests.
//
// Concurrency: a Spec is immutable after construction and a Value is immutable
// after Seal; both are freely shareable across goroutines with no locking.
package core
