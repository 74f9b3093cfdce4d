// SPDX-License-Identifier: MIT
// Package: lvlforge/core
//
// methods_value.go — Snapshot (frozen read-only state) and Value (the sealed,
// immutable product) with their identity operations.
//
// Policy:
//   - Neither type carries a mutator; both are safe to share across goroutines.
//   - Equal and Hash honor the equality/hash-consistency contract:
//     Equal(a,b) ⇒ Hash(a) == Hash(b). The lawcheck package proves this
//     empirically in this repository's tests.

package core

import (
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
)

// Snapshot is a frozen, read-only view over field state, produced by
// Spec.Freeze. Invariant functions receive Snapshots so that checks can never
// observe (or race with) live builder mutation.
type Snapshot struct {
	spec   *Spec          // declaring spec, for field resolution
	fields map[string]any // frozen name → value; owned by the Snapshot
}

// Spec returns the declaring Spec.
// Complexity: O(1).
func (s Snapshot) Spec() *Spec { return s.spec }

// Get returns the frozen value of a field and whether it is present.
// Absent optional fields (no assignment, no default) report ok == false.
// Complexity: O(1).
func (s Snapshot) Get(name string) (any, bool) {
	v, ok := s.fields[name]

	return v, ok
}

// Len reports how many fields are present in the snapshot.
// Complexity: O(1).
func (s Snapshot) Len() int { return len(s.fields) }

// As resolves a field of the snapshot as type T, for type-safe invariant
// bodies. ok is false when the field is absent or holds a different type.
// Complexity: O(1).
func As[T any](s Snapshot, name string) (T, bool) {
	var zero T
	raw, ok := s.fields[name]
	if !ok {
		return zero, false
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// Value is the immutable product of a successful build. Once sealed, no method
// changes observable state; instances are freely shareable concurrently.
//
// Field values are stored as supplied: if a caller stages a mutable reference
// (slice, map, pointer) and keeps mutating it after Build, immutability is on
// the caller. Prefer value-semantics field types.
type Value struct {
	spec   *Spec          // declaring spec
	fields map[string]any // sealed name → value; never exposed by reference
}

// Spec returns the Spec the value was built against.
// Complexity: O(1).
func (v *Value) Spec() *Spec { return v.spec }

// Get returns a field's value and whether it is present.
// Absent optional fields report ok == false.
// Complexity: O(1).
func (v *Value) Get(name string) (any, bool) {
	raw, ok := v.fields[name]

	return raw, ok
}

// Snapshot re-exposes the sealed state as a read-only Snapshot, e.g. to feed
// the same invariant functions used at build time.
// Complexity: O(1) — the underlying map is shared, which is safe because
// neither type mutates it.
func (v *Value) Snapshot() Snapshot {
	return Snapshot{spec: v.spec, fields: v.fields}
}

// Equal reports whether two values were built against the same Spec and agree
// on every declared field (deep equality per field, absence included).
// Equal is reflexive, symmetric and transitive; nil receivers/operands are
// never equal to non-nil ones.
// Complexity: O(F · deep-equal cost) time, O(1) space.
func (v *Value) Equal(o *Value) bool {
	// A nil Value equals nothing; identity short-circuits the field walk.
	if v == nil || o == nil {
		return false
	}
	if v == o {
		return true
	}
	// Spec identity anchors comparability: values of unrelated (or merely
	// look-alike) specs are never equal.
	if v.spec != o.spec {
		return false
	}

	for _, f := range v.spec.Fields() {
		a, aok := v.fields[f.name]
		b, bok := o.fields[f.name]
		if aok != bok {
			return false
		}
		if aok && !reflect.DeepEqual(a, b) {
			return false
		}
	}

	return true
}

// absentMarker feeds the hash for declared-but-absent optional fields so that
// "absent" and "present with zero value" hash differently, mirroring Equal.
const absentMarker = "\x00absent"

// nilMarker feeds the hash for nil references so that nil and a zero pointee
// hash differently, mirroring reflect.DeepEqual.
const nilMarker = "\x00nil"

// Hash returns an FNV-1a digest over the spec name and the spec-ordered field
// values. Equal values always hash equal; unequal values may collide.
//
// The digest folds in a canonical walk of every field (hashValue), so it
// agrees with Equal's reflect.DeepEqual semantics: pointers are followed to
// their pointees, never hashed by address.
// Complexity: O(F · field size) time, O(depth) space for the walk.
func (v *Value) Hash() uint64 {
	h := fnv.New64a()
	// Spec name separates hash domains of unrelated value types.
	_, _ = h.Write([]byte(v.spec.name))

	for _, f := range v.spec.Fields() {
		_, _ = h.Write([]byte(f.name))
		if raw, ok := v.fields[f.name]; ok {
			_, _ = h.Write([]byte{'='})
			hashValue(h, reflect.ValueOf(raw))
		} else {
			_, _ = h.Write([]byte(absentMarker))
		}
	}

	return h.Sum64()
}

// hashValue folds one value into the digest by walking the same structure
// reflect.DeepEqual compares: pointers and interfaces are dereferenced,
// composites recurse element-wise, and map entries are combined commutatively
// so iteration order cannot leak into the digest. Basic kinds are read via
// the reflect accessors, which also reach unexported struct fields.
func hashValue(w io.Writer, rv reflect.Value) {
	// An invalid Value is the untyped nil of an empty interface.
	if !rv.IsValid() {
		_, _ = io.WriteString(w, nilMarker)
		return
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			_, _ = io.WriteString(w, nilMarker)
			return
		}
		// Follow the reference: DeepEqual compares pointees, so must we.
		hashValue(w, rv.Elem())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			_, _ = io.WriteString(w, nilMarker)
			return
		}
		_, _ = fmt.Fprintf(w, "[%d:", rv.Len())
		for i := 0; i < rv.Len(); i++ {
			hashValue(w, rv.Index(i))
			_, _ = io.WriteString(w, ",")
		}
		_, _ = io.WriteString(w, "]")
	case reflect.Map:
		if rv.IsNil() {
			_, _ = io.WriteString(w, nilMarker)
			return
		}
		// Sum of per-entry digests: commutative, so the randomized map
		// iteration order never reaches the outer digest.
		var acc uint64
		for iter := rv.MapRange(); iter.Next(); {
			entry := fnv.New64a()
			hashValue(entry, iter.Key())
			_, _ = io.WriteString(entry, "=>")
			hashValue(entry, iter.Value())
			acc += entry.Sum64()
		}
		_, _ = fmt.Fprintf(w, "map(%d;%d)", rv.Len(), acc)
	case reflect.Struct:
		_, _ = io.WriteString(w, "{")
		for i := 0; i < rv.NumField(); i++ {
			hashValue(w, rv.Field(i))
			_, _ = io.WriteString(w, ";")
		}
		_, _ = io.WriteString(w, "}")
	case reflect.String:
		_, _ = fmt.Fprintf(w, "s%q", rv.String())
	case reflect.Bool:
		_, _ = fmt.Fprintf(w, "b%t", rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, _ = fmt.Fprintf(w, "i%d", rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, _ = fmt.Fprintf(w, "u%d", rv.Uint())
	case reflect.Float32, reflect.Float64:
		_, _ = fmt.Fprintf(w, "f%g", rv.Float())
	case reflect.Complex64, reflect.Complex128:
		_, _ = fmt.Fprintf(w, "c%g", rv.Complex())
	default:
		// Chan/Func/UnsafePointer: DeepEqual compares these by reference
		// identity (equal only when identical or both nil), so the
		// reference itself is the canonical form.
		_, _ = fmt.Fprintf(w, "r%x", rv.Pointer())
	}
}

// String renders the value for diagnostics as "SpecName{a=1, b=two}", fields
// in canonical order, absent fields omitted.
// Complexity: O(F · format cost).
func (v *Value) String() string {
	out := v.spec.name + "{"
	first := true
	for _, f := range v.spec.Fields() {
		raw, ok := v.fields[f.name]
		if !ok {
			continue
		}
		if !first {
			out += ", "
		}
		out += fmt.Sprintf("%s=%v", f.name, raw)
		first = false
	}

	return out + "}"
}
