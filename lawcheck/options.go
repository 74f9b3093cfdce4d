// SPDX-License-Identifier: MIT
// Package: lvlforge/lawcheck
//
// options.go — functional options for the check entry points.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the checks themselves never panic.
//   • No hidden globals; everything flows through config, passed by value.

package lawcheck

// Option customizes one check invocation by mutating a config instance
// before the check begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// unlimitedCounterexamples disables the recording cap (the default).
const unlimitedCounterexamples = 0

// config aggregates all knobs used by the checks.
// It is passed by VALUE to check internals (immutable to callers).
type config struct {
	// maxCounterexamples caps recorded counterexamples per law;
	// unlimitedCounterexamples means record every one.
	maxCounterexamples int
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order (last-wins).
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{maxCounterexamples: unlimitedCounterexamples}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// room reports whether another counterexample may still be recorded given n
// already recorded. Violations are always counted regardless.
func (c config) room(n int) bool {
	return c.maxCounterexamples == unlimitedCounterexamples || n < c.maxCounterexamples
}

// WithMaxCounterexamples caps how many counterexamples each LawResult records
// (total violation counts are unaffected). Panics if n < 1; use the default
// for unlimited recording.
// Complexity: O(1).
func WithMaxCounterexamples(n int) Option {
	if n < 1 {
		// Fail fast: option constructors validate and panic.
		panic("lawcheck: WithMaxCounterexamples(n<1)")
	}
	return func(c *config) {
		c.maxCounterexamples = n
	}
}
