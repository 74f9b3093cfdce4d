// Package core contains unit tests for the validation primitives
// (Freeze/MissingRequired/BrokenInvariants/Seal) and the Value identity
// operations.
package core

import (
	"errors"
	"fmt"
	"testing"
)

// intervalSpec declares {start required int, end required int, label optional}
// with the classic "start ≤ end" cross-field invariant.
func intervalSpec(t *testing.T) *Spec {
	t.Helper()
	spec, err := NewSpec("Interval",
		[]FieldDecl{
			Field[int]("start", Required()),
			Field[int]("end", Required()),
			Field[string]("label", Default("")),
		},
		WithInvariant("start<=end", func(s Snapshot) error {
			start, _ := As[int](s, "start")
			end, _ := As[int](s, "end")
			if start > end {
				return fmt.Errorf("start %d exceeds end %d", start, end)
			}
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("intervalSpec: %v", err)
	}
	return spec
}

// TestFreezeIsolation verifies the copy-then-validate guarantee: mutating the
// source state after Freeze never reaches the snapshot.
func TestFreezeIsolation(t *testing.T) {
	t.Parallel()

	spec := intervalSpec(t)
	state := map[string]any{"start": 1, "end": 5}
	snap := spec.Freeze(state)

	// Mutate the live state after freezing.
	state["start"] = 99
	delete(state, "end")

	if v, _ := snap.Get("start"); v != 1 {
		t.Errorf("snapshot start: expected frozen 1, got %v", v)
	}
	if v, _ := snap.Get("end"); v != 5 {
		t.Errorf("snapshot end: expected frozen 5, got %v", v)
	}
}

// TestFreezeDefaults verifies defaults apply only to unassigned fields.
func TestFreezeDefaults(t *testing.T) {
	t.Parallel()

	spec := intervalSpec(t)

	// 1. Unassigned optional field takes its default.
	snap := spec.Freeze(map[string]any{"start": 0, "end": 0})
	if v, ok := snap.Get("label"); !ok || v != "" {
		t.Errorf("default: expected present empty label, got (%v, %t)", v, ok)
	}

	// 2. Assigned field keeps its value.
	snap2 := spec.Freeze(map[string]any{"label": "x"})
	if v, _ := snap2.Get("label"); v != "x" {
		t.Errorf("assigned: expected label %q, got %v", "x", v)
	}
}

// TestMissingRequired verifies the missing list is the exact complement of
// the assigned required set, in declaration order.
func TestMissingRequired(t *testing.T) {
	t.Parallel()

	spec := intervalSpec(t)

	cases := []struct {
		name  string
		state map[string]any
		want  []string
	}{
		{"none assigned", map[string]any{}, []string{"start", "end"}},
		{"start only", map[string]any{"start": 1}, []string{"end"}},
		{"end only", map[string]any{"end": 1}, []string{"start"}},
		{"all assigned", map[string]any{"start": 1, "end": 2}, nil},
	}
	for _, tc := range cases {
		got := spec.MissingRequired(spec.Freeze(tc.state))
		if fmt.Sprint(got) != fmt.Sprint(tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

// TestBrokenInvariants verifies invariants run against the snapshot and all
// failures are collected base-first.
func TestBrokenInvariants(t *testing.T) {
	t.Parallel()

	base := intervalSpec(t)
	child, err := base.Extend("Tagged",
		[]FieldDecl{Field[string]("tag", Required())},
		WithInvariant("tag nonempty", func(s Snapshot) error {
			if tag, _ := As[string](s, "tag"); tag == "" {
				return errors.New("empty tag")
			}
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("extend: %v", err)
	}

	// Both the base invariant and the derived one fail; base reported first.
	snap := child.Freeze(map[string]any{"start": 9, "end": 1, "tag": ""})
	faults := child.BrokenInvariants(snap)
	if len(faults) != 2 {
		t.Fatalf("expected 2 faults, got %d: %v", len(faults), faults)
	}
	if faults[0].Rule != "start<=end" || faults[1].Rule != "tag nonempty" {
		t.Errorf("expected base-first order, got [%s %s]", faults[0].Rule, faults[1].Rule)
	}
}

// TestValueIdentity verifies Get/Equal/Hash/String on sealed values.
func TestValueIdentity(t *testing.T) {
	t.Parallel()

	spec := intervalSpec(t)
	seal := func(start, end int, label string) *Value {
		state := map[string]any{"start": start, "end": end}
		if label != "" {
			state["label"] = label
		}
		return spec.Seal(spec.Freeze(state))
	}

	a := seal(1, 5, "")
	a2 := seal(1, 5, "")
	b := seal(1, 5, "b")

	// 1. Accessors.
	if v, ok := a.Get("start"); !ok || v != 1 {
		t.Errorf("Get(start): expected 1, got (%v, %t)", v, ok)
	}
	if _, ok := a.Get("nope"); ok {
		t.Errorf("Get(nope): expected absent")
	}

	// 2. Equality: deep copies equal, distinct field values unequal.
	if !a.Equal(a2) || !a2.Equal(a) {
		t.Errorf("Equal: expected deep copies equal both ways")
	}
	if a.Equal(b) {
		t.Errorf("Equal: expected label difference to separate values")
	}
	if a.Equal(nil) {
		t.Errorf("Equal(nil): expected false")
	}

	// 3. Hash consistency: equal values hash equal.
	if a.Hash() != a2.Hash() {
		t.Errorf("Hash: expected equal values to hash equal")
	}

	// 4. Values from a different spec instance are never equal, even with
	//    identical fields — spec identity anchors comparability.
	other := intervalSpec(t)
	o := other.Seal(other.Freeze(map[string]any{"start": 1, "end": 5}))
	if a.Equal(o) {
		t.Errorf("Equal: expected values of distinct specs unequal")
	}

	// 5. Diagnostic rendering follows canonical field order.
	if got := a.String(); got != "Interval{start=1, end=5, label=}" {
		t.Errorf("String: got %q", got)
	}
}

// TestHashFollowsReferences verifies the equality/hash-consistency law over
// reference-typed fields: Equal follows pointers to their pointees, so Hash
// must too — never the addresses.
func TestHashFollowsReferences(t *testing.T) {
	t.Parallel()

	spec, err := NewSpec("Box", []FieldDecl{
		Field[*int]("n"),
		Field[[]string]("tags"),
		Field[map[string]int]("counts"),
	})
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	seal := func(state map[string]any) *Value {
		return spec.Seal(spec.Freeze(state))
	}

	// 1. Distinct pointers to equal pointees: Equal, so hashes must agree.
	x, y := 7, 7
	a := seal(map[string]any{"n": &x})
	b := seal(map[string]any{"n": &y})
	if !a.Equal(b) {
		t.Fatalf("Equal: expected pointees to be compared")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash: equal values hash differently: %d vs %d", a.Hash(), b.Hash())
	}

	// 2. Distinct pointees separate both relations.
	z := 8
	c := seal(map[string]any{"n": &z})
	if a.Equal(c) {
		t.Errorf("Equal: expected distinct pointees unequal")
	}

	// 3. A nil pointer and a zero pointee are distinct, as under DeepEqual.
	zero := 0
	nilV := seal(map[string]any{"n": (*int)(nil)})
	zeroV := seal(map[string]any{"n": &zero})
	if nilV.Equal(zeroV) {
		t.Errorf("Equal: nil pointer must differ from zero pointee")
	}
	if nilV.Hash() == zeroV.Hash() {
		t.Errorf("Hash: nil pointer and zero pointee should not share a digest")
	}

	// 4. Separately allocated but deep-equal composites agree on both.
	d := seal(map[string]any{"tags": []string{"a", "b"}, "counts": map[string]int{"a": 1, "b": 2}})
	e := seal(map[string]any{"tags": []string{"a", "b"}, "counts": map[string]int{"b": 2, "a": 1}})
	if !d.Equal(e) {
		t.Fatalf("Equal: expected deep-equal composites equal")
	}
	if d.Hash() != e.Hash() {
		t.Errorf("Hash: deep-equal composites hash differently: %d vs %d", d.Hash(), e.Hash())
	}
}

// TestSnapshotAs verifies the typed accessor's presence and type guards.
func TestSnapshotAs(t *testing.T) {
	t.Parallel()

	spec := intervalSpec(t)
	snap := spec.Freeze(map[string]any{"start": 3})

	if v, ok := As[int](snap, "start"); !ok || v != 3 {
		t.Errorf("As[int]: expected (3, true), got (%v, %t)", v, ok)
	}
	if _, ok := As[string](snap, "start"); ok {
		t.Errorf("As[string] on int field: expected miss")
	}
	if _, ok := As[int](snap, "end"); ok {
		t.Errorf("As on absent field: expected miss")
	}
}
