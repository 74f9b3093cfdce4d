// Package lvlforge is your in-memory workbench for forging immutable
// values — declare a schema once, build instances fluently, and prove
// that their identity contracts actually hold.
//
// 🚀 What is lvlforge?
//
//	A modern, generics-first, zero-dependency library that brings together:
//		• Schema primitives: declare typed fields, defaults & cross-field invariants
//		• Fluent builders: hierarchy-safe, self-typed chaining without casts
//		• Snapshot validation: invariants always checked against frozen state
//		• Law checking: empirical verification of equality / hash / ordering contracts
//
// ✨ Why choose lvlforge?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable products, batched validation reports
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – derive builders that inherit every setter at the derived type
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — Spec, FieldDecl, Value: the immutable value model & invariants
//	builder/  — Core[B]: the generic, F-bounded fluent builder over a core.Spec
//	lawcheck/ — CheckEquality / CheckHashConsistency / CheckOrdering verifiers
//
// Quick sketch:
//
//	spec ──▶ builder.Set(...).Set(...) ──▶ Build() ──▶ immutable Value
//	                                                      │
//	                              lawcheck.CheckEquality ◀─┘ (prove the contract)
//
// Dive into the package docs for full contracts, error taxonomies, and
// complexity notes on every exported operation.
//
//	go get github.com/katalvlaran/lvlforge
package lvlforge
