// SPDX-License-Identifier: MIT
// Package: lvlforge/core
//
// methods_spec.go — read accessors and validation primitives on Spec.
//
// Policy:
//   - Pure queries: no method here mutates the Spec or its inputs.
//   - Hierarchy order is canonical: base fields/invariants always come first.
//   - These primitives return raw findings (names, faults); assembling them
//     into a batched validation report is the builder package's job.

package core

// Name returns the spec's label, used to prefix error context.
// Complexity: O(1).
func (s *Spec) Name() string { return s.name }

// Base returns the parent Spec in a hierarchy, or nil at the root.
// Complexity: O(1).
func (s *Spec) Base() *Spec { return s.base }

// Fields returns every field declaration in canonical order: the whole base
// chain first (outermost ancestor leading), then this spec's own fields.
// The returned slice is a fresh copy; callers may not corrupt the Spec.
// Complexity: O(F) time and space over the full hierarchy.
func (s *Spec) Fields() []FieldDecl {
	// Resolve the base chain eagerly; hierarchies are shallow in practice.
	var out []FieldDecl
	if s.base != nil {
		out = s.base.Fields()
	}

	return append(out, s.fields...)
}

// Lookup resolves a field name anywhere in the hierarchy.
// Own fields are consulted before walking up the base chain, although the
// no-shadowing rule means at most one level can ever match.
// Complexity: O(depth) time, O(1) space.
func (s *Spec) Lookup(name string) (FieldDecl, bool) {
	if i, ok := s.byName[name]; ok {
		return s.fields[i], true
	}
	if s.base != nil {
		return s.base.Lookup(name)
	}

	return FieldDecl{}, false
}

// Freeze copies the staging state into a fresh Snapshot and applies declared
// defaults for fields the state never assigned. The returned Snapshot owns its
// map: later mutation of the input state cannot invalidate checks run against
// the Snapshot (copy-then-validate).
// Complexity: O(F + len(state)) time and space.
func (s *Spec) Freeze(state map[string]any) Snapshot {
	// Copy first, so validation and the sealed Value observe one frozen world.
	frozen := make(map[string]any, len(state))
	for k, v := range state {
		frozen[k] = v
	}

	// Apply defaults for declared-but-unassigned fields, base-first.
	for _, f := range s.Fields() {
		if _, assigned := frozen[f.name]; assigned {
			continue
		}
		if f.hasDef {
			frozen[f.name] = f.def
		}
	}

	return Snapshot{spec: s, fields: frozen}
}

// MissingRequired reports every required field absent from the snapshot, in
// canonical base-first declaration order. An empty result means the presence
// pass is clean.
// Complexity: O(F) time, O(missing) space.
func (s *Spec) MissingRequired(snap Snapshot) []string {
	var missing []string
	for _, f := range s.Fields() {
		if !f.required {
			continue
		}
		if _, ok := snap.fields[f.name]; !ok {
			missing = append(missing, f.name)
		}
	}

	return missing
}

// InvariantFault describes one violated cross-field invariant.
type InvariantFault struct {
	// Rule is the invariant's declared name.
	Rule string
	// Err is the error the invariant function returned.
	Err error
}

// BrokenInvariants runs every invariant against the frozen snapshot and
// collects all failures: the base chain's invariants first, then this spec's
// own, each in declaration order. Nothing short-circuits; the point of the
// batch is a complete report.
// Complexity: O(I · cost of each invariant) time, O(failures) space.
func (s *Spec) BrokenInvariants(snap Snapshot) []InvariantFault {
	var faults []InvariantFault
	if s.base != nil {
		faults = s.base.BrokenInvariants(snap)
	}
	for _, inv := range s.invariants {
		if err := inv.fn(snap); err != nil {
			faults = append(faults, InvariantFault{Rule: inv.name, Err: err})
		}
	}

	return faults
}

// Seal wraps an already-validated Snapshot into an immutable Value.
// The Snapshot's map is adopted, not re-copied: Freeze already severed it from
// caller-reachable state, and Snapshot exposes no mutators.
// Complexity: O(1).
func (s *Spec) Seal(snap Snapshot) *Value {
	return &Value{spec: s, fields: snap.fields}
}
