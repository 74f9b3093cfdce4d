// SPDX-License-Identifier: MIT
// Package: lvlforge/core
//
// types.go — Spec, FieldDecl, Invariant declarations, functional options,
// sentinel errors, and the NewSpec constructor.
//
// Design contract (strict):
//   • A Spec is immutable once NewSpec/Extend returns; no method mutates it.
//   • Field typing is captured as reflect.Type at declaration via Field[T].
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     NewSpec/Extend return sentinel errors for declaration-level faults.
//   • No hidden globals; every knob flows through FieldDecl/Spec values.
//
// AI-Hints (practical):
//   • Declare fields with Field[T](name, opts...) — the type parameter is the
//     single source of truth for assignability checks at staging time.
//   • Use WithInvariant for cross-field rules; they run only against frozen
//     Snapshots, never against live builder state.
//   • Extend(base) composes hierarchies; derived validation is base-first.

package core

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for spec declaration.
var (
	// ErrEmptySpecName indicates NewSpec/Extend was given an empty spec name.
	// Usage: if errors.Is(err, ErrEmptySpecName) { /* name the spec */ }.
	ErrEmptySpecName = errors.New("core: spec name is empty")

	// ErrEmptyFieldName indicates a FieldDecl carries an empty field name.
	// Usage: if errors.Is(err, ErrEmptyFieldName) { /* name the field */ }.
	ErrEmptyFieldName = errors.New("core: field name is empty")

	// ErrDuplicateField indicates two declarations share one field name,
	// including a derived field shadowing a base field in Extend.
	// Usage: if errors.Is(err, ErrDuplicateField) { /* rename the field */ }.
	ErrDuplicateField = errors.New("core: duplicate field name")

	// ErrDefaultType indicates a declared default value is not assignable to
	// the field's declared type.
	// Usage: if errors.Is(err, ErrDefaultType) { /* fix the default */ }.
	ErrDefaultType = errors.New("core: default value type mismatch")

	// ErrRequiredDefault indicates a field was declared both Required and with
	// a Default; a default would make the presence check vacuous.
	// Usage: if errors.Is(err, ErrRequiredDefault) { /* drop one flag */ }.
	ErrRequiredDefault = errors.New("core: required field cannot carry a default")
)

// InvariantFn is a cross-field check evaluated against a frozen Snapshot.
// It MUST be pure: read fields via the Snapshot, return nil on success or a
// descriptive error on violation, and never retain the Snapshot.
type InvariantFn func(Snapshot) error

// invariant pairs a human-readable rule name with its check function.
type invariant struct {
	name string      // rule label, surfaced in validation reports
	fn   InvariantFn // the check itself
}

// FieldDecl declares one typed field of a Spec.
//
// Construct with Field[T](name, opts...); the zero FieldDecl is invalid and
// rejected by NewSpec via ErrEmptyFieldName.
type FieldDecl struct {
	name      string       // unique field name within the Spec hierarchy
	typ       reflect.Type // declared type, from the Field[T] type parameter
	required  bool         // presence enforced at Build
	writeOnce bool         // second assignment during staging is rejected
	def       any          // declared default value (hasDef guards validity)
	hasDef    bool         // whether def was explicitly declared
}

// Name returns the declared field name.
// Complexity: O(1).
func (f FieldDecl) Name() string { return f.name }

// Type returns the declared reflect.Type of the field.
// Complexity: O(1).
func (f FieldDecl) Type() reflect.Type { return f.typ }

// IsRequired reports whether Build fails when the field is never assigned.
// Complexity: O(1).
func (f FieldDecl) IsRequired() bool { return f.required }

// IsWriteOnce reports whether reassignment during staging is rejected.
// Complexity: O(1).
func (f FieldDecl) IsWriteOnce() bool { return f.writeOnce }

// DefaultValue returns the declared default and whether one was declared.
// Complexity: O(1).
func (f FieldDecl) DefaultValue() (any, bool) { return f.def, f.hasDef }

// Accepts reports whether v may be assigned to this field: the dynamic type
// must be assignable to the declared type, and nil is accepted only by
// nilable declared types.
// Complexity: O(1).
func (f FieldDecl) Accepts(v any) bool { return assignableTo(v, f.typ) }

// FieldOption customizes one FieldDecl at declaration time.
type FieldOption func(*FieldDecl)

// Required marks the field as mandatory: Build fails with a validation error
// enumerating every such field left unassigned.
// Complexity: O(1).
func Required() FieldOption {
	return func(f *FieldDecl) { f.required = true }
}

// WriteOnce marks the field as single-assignment: a second Set during staging
// is a validation fault instead of last-write-wins.
// Complexity: O(1).
func WriteOnce() FieldOption {
	return func(f *FieldDecl) { f.writeOnce = true }
}

// Default declares the value an optional field assumes when never assigned.
// The value's assignability to the field type is verified by NewSpec, not here,
// so that the fault surfaces as a sentinel error rather than a panic.
// Complexity: O(1).
func Default(v any) FieldOption {
	return func(f *FieldDecl) { f.def, f.hasDef = v, true }
}

// Field declares a field of type T. The type parameter is captured as the
// field's declared type; interface types (e.g. Field[io.Reader]) are honored
// via assignability rather than dynamic-type identity.
// Complexity: O(len(opts)) time, O(1) space.
func Field[T any](name string, opts ...FieldOption) FieldDecl {
	// Capture T even when T is an interface type: TypeOf on a *T pointer
	// preserves the static type, then Elem() recovers T itself.
	f := FieldDecl{name: name, typ: reflect.TypeOf((*T)(nil)).Elem()}
	// Apply options in order; last-wins semantics.
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// SpecOption customizes a Spec at construction time.
type SpecOption func(*Spec)

// WithInvariant attaches a named cross-field invariant to the Spec.
// Panics on empty name or nil fn to surface programmer error early;
// invariants are declaration-time wiring, never runtime input.
// Complexity: O(1).
func WithInvariant(name string, fn InvariantFn) SpecOption {
	if name == "" {
		// Fail fast: option constructors validate and panic.
		panic("core: WithInvariant(\"\")")
	}
	if fn == nil {
		panic("core: WithInvariant(nil fn)")
	}
	return func(s *Spec) {
		// Append preserves declaration order for deterministic reports.
		s.invariants = append(s.invariants, invariant{name: name, fn: fn})
	}
}

// Spec declares the shape of an immutable value: an ordered field list, named
// cross-field invariants, and an optional base Spec for hierarchies.
//
// A Spec is immutable after NewSpec/Extend returns and safe for concurrent use.
type Spec struct {
	name       string         // spec label, used in error context
	base       *Spec          // parent spec in a hierarchy; nil at the root
	fields     []FieldDecl    // own fields, declaration order (excludes base)
	byName     map[string]int // own-field name → index into fields
	invariants []invariant    // own invariants, declaration order
}

// NewSpec constructs a root Spec from the given field declarations and options.
//
// Declaration faults return sentinel errors (branch with errors.Is):
//   - ErrEmptySpecName / ErrEmptyFieldName — missing names.
//   - ErrDuplicateField — two fields share a name.
//   - ErrDefaultType — a Default value is not assignable to the field type.
//   - ErrRequiredDefault — Required and Default declared together.
//
// Complexity: O(F) time and space for F field declarations.
func NewSpec(name string, fields []FieldDecl, opts ...SpecOption) (*Spec, error) {
	return newSpec(name, nil, fields, opts...)
}

// Extend derives a child Spec that inherits every base field and invariant.
// Derived fields may not shadow base names (ErrDuplicateField); validation of
// values built against the derived Spec always runs base checks first.
// Complexity: O(F + depth of the base chain) per derived field for the shadow
// check; O(F) space.
func (s *Spec) Extend(name string, fields []FieldDecl, opts ...SpecOption) (*Spec, error) {
	return newSpec(name, s, fields, opts...)
}

// newSpec centralizes construction so NewSpec and Extend validate identically.
func newSpec(name string, base *Spec, fields []FieldDecl, opts ...SpecOption) (*Spec, error) {
	// Reject anonymous specs up front; the name prefixes every error report.
	if name == "" {
		return nil, ErrEmptySpecName
	}

	s := &Spec{
		name:   name,
		base:   base,
		fields: make([]FieldDecl, 0, len(fields)),
		byName: make(map[string]int, len(fields)),
	}

	// Validate and index every declaration in order.
	for _, f := range fields {
		if f.name == "" {
			return nil, fmt.Errorf("%s: %w", name, ErrEmptyFieldName)
		}
		// Duplicate against own fields and the whole base chain (no shadowing).
		if _, dup := s.byName[f.name]; dup {
			return nil, fmt.Errorf("%s: field %q: %w", name, f.name, ErrDuplicateField)
		}
		if base != nil {
			if _, shadows := base.Lookup(f.name); shadows {
				return nil, fmt.Errorf("%s: field %q shadows base: %w", name, f.name, ErrDuplicateField)
			}
		}
		// A default on a required field would never be observable.
		if f.required && f.hasDef {
			return nil, fmt.Errorf("%s: field %q: %w", name, f.name, ErrRequiredDefault)
		}
		// Defaults must be assignable to the declared type (nil default is
		// only valid for nilable declared types).
		if f.hasDef && !f.Accepts(f.def) {
			return nil, fmt.Errorf("%s: field %q: default %v: %w", name, f.name, f.def, ErrDefaultType)
		}

		s.byName[f.name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	// Apply spec options (invariants) in order.
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// assignableTo reports whether the dynamic type of v may be stored in a field
// declared as typ. A nil v is assignable only to nilable declared types.
// Complexity: O(1).
func assignableTo(v any, typ reflect.Type) bool {
	if v == nil {
		// Untyped nil: acceptable for pointer-like and interface fields only.
		switch typ.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return true
		default:
			return false
		}
	}

	return reflect.TypeOf(v).AssignableTo(typ)
}
