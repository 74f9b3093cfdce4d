// SPDX-License-Identifier: MIT
// Package: lvlforge/builder
//
// types.go — Core[B] (the embeddable F-bounded builder engine), the Generic
// convenience builder, and their constructors.
//
// Design contract (strict):
//   • One engine: Core[B] owns the staging state (BuilderState) exclusively;
//     nothing else mutates it.
//   • Self-type binding: Init(spec, self) records the most-derived builder
//     value so every fluent setter can return B without casts.
//   • Single-use: a successful Build consumes the builder; the staging state
//     is discarded, not recycled.
//   • No internal locking: staging is single-writer by design (see doc.go).
//
// AI-Hints (practical):
//   • Embed Core[*MyBuilder] (directly or via a parameterized mixin) and call
//     Init(spec, b) in your constructor; forgetting Init surfaces as
//     ErrUnbound from TrySet/Build and as a fail-fast panic from the fluent
//     Set, never as a silent no-op.
//   • Use Generic/New for quick schema-driven staging without a named type.

package builder

import (
	"github.com/katalvlaran/lvlforge/core"
)

// Core is the generic builder engine. The type parameter B is the concrete,
// most-derived builder type embedding this Core (the self-type), so fluent
// setters return B and hierarchy chaining needs no casts.
//
// The zero Core is unbound; call Init before use. Core instances are not safe
// for concurrent mutation — one owning goroutine per builder.
type Core[B any] struct {
	spec     *core.Spec     // the value shape being staged; nil until Init
	self     B              // the most-derived builder, returned by setters
	state    map[string]any // BuilderState: field name → staged value
	staged   []Fault        // assignment-time rejections, kept for Build's batch
	bound    bool           // Init has run
	consumed bool           // a successful Build already happened
}

// Init binds the engine to its spec and to the most-derived builder value,
// creating the empty staging state. It returns self so constructors can bind
// and hand out the builder in one expression.
//
// Panics on a nil spec: wiring a builder is declaration-time programmer work,
// held to the same fail-fast standard as option constructors. Re-binding an
// already-bound engine also panics — the staging state is single-owner.
// Complexity: O(1).
func (c *Core[B]) Init(spec *core.Spec, self B) B {
	if spec == nil {
		panic("builder: Init(nil spec)")
	}
	if c.bound {
		panic("builder: Init called twice")
	}

	c.spec = spec
	c.self = self
	c.state = make(map[string]any)
	c.bound = true

	return self
}

// Generic is a ready-bound builder for schema-driven staging when declaring a
// dedicated builder type is not worth it. All chaining returns *Generic.
type Generic struct {
	Core[*Generic]
}

// New returns a Generic builder bound to spec.
// Complexity: O(1). Panics only on nil spec (via Init).
func New(spec *core.Spec) *Generic {
	g := &Generic{}

	return g.Init(spec, g)
}
