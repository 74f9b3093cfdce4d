// Package lawcheck_test — cross-package coverage: the builder's sealed
// core.Value instances are themselves lawful citizens of the verifier.
package lawcheck_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlforge/builder"
	"github.com/katalvlaran/lvlforge/core"
	"github.com/katalvlaran/lvlforge/lawcheck"
)

// buildPeople seals a sample of Person values, including an exact deep copy
// of the first one and a deliberate nil for the non-nullity probe.
func buildPeople(t *testing.T) (*core.Spec, []*core.Value) {
	t.Helper()

	spec, err := core.NewSpec("Person", []core.FieldDecl{
		core.Field[string]("name", core.Required()),
		core.Field[int]("age", core.Required()),
		core.Field[string]("nickname", core.Default("")),
	})
	require.NoError(t, err)

	seal := func(name string, age int) *core.Value {
		v, berr := builder.New(spec).Set("name", name).Set("age", age).Build()
		require.NoError(t, berr)
		return v
	}

	sample := []*core.Value{
		seal("Ann", 30),
		seal("Ann", 30), // deep copy: distinct instance, identical fields
		seal("Bob", 25),
		seal("Cleo", 41),
		nil, // null form, exempt from the non-nullity quantifier
	}

	return spec, sample
}

// valueEq adapts (*core.Value).Equal to the verifier's relation shape,
// tolerating the nil elements the sample deliberately carries.
func valueEq(a, b *core.Value) bool {
	if a == nil {
		return b == nil
	}
	return a.Equal(b)
}

// TestValueEqualityIsLawful runs the full equivalence battery over sealed
// values: reflexivity, symmetry, transitivity, and non-nullity (applicable,
// since *core.Value has a null form).
func TestValueEqualityIsLawful(t *testing.T) {
	t.Parallel()

	_, sample := buildPeople(t)

	rep, err := lawcheck.CheckEquality(sample, valueEq)
	require.NoError(t, err)
	require.True(t, rep.Passed(), "value equality should satisfy every law: %+v", rep.Laws)

	nn, ok := rep.Law(lawcheck.NonNullity)
	require.True(t, ok)
	require.Equal(t, lawcheck.Passed, nn.Status, "pointer values must not equal nil")
}

// TestValueHashIsConsistent verifies the deep copy hashes identically to its
// original, per the equality/hash-consistency law.
func TestValueHashIsConsistent(t *testing.T) {
	t.Parallel()

	_, sample := buildPeople(t)
	// Drop the nil element: hashing the null form is the caller's concern.
	sample = sample[:4]

	rep, err := lawcheck.CheckHashConsistency(sample, valueEq, (*core.Value).Hash)
	require.NoError(t, err)
	require.True(t, rep.Passed())
}

// TestValueOrderingAgreesWithEquality orders values by (name, age) and
// verifies the total-order laws plus consistency with value equality.
func TestValueOrderingAgreesWithEquality(t *testing.T) {
	t.Parallel()

	_, sample := buildPeople(t)
	sample = sample[:4] // ordering a null form is the caller's concern

	byNameAge := func(a, b *core.Value) int {
		an, _ := core.As[string](a.Snapshot(), "name")
		bn, _ := core.As[string](b.Snapshot(), "name")
		if c := strings.Compare(an, bn); c != 0 {
			return c
		}
		aa, _ := core.As[int](a.Snapshot(), "age")
		ba, _ := core.As[int](b.Snapshot(), "age")
		return aa - ba
	}

	rep, err := lawcheck.CheckOrdering(sample, byNameAge, valueEq)
	require.NoError(t, err)
	require.True(t, rep.Passed())
	// (name, age) determines equality here — nickname sits at its default
	// in every sample element — so no consistency warnings either.
	require.Empty(t, rep.Warnings)
}

// TestChecksRunConcurrently verifies the purity guarantee: independent checks
// over disjoint samples race nothing.
func TestChecksRunConcurrently(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			sample := []int{seed, seed + 1, seed + 2, seed + 2}
			rep, err := lawcheck.CheckEquality(sample, func(a, b int) bool { return a == b })
			if err != nil || !rep.Passed() {
				t.Errorf("goroutine %d: unexpected outcome (%v, %v)", seed, rep.Passed(), err)
			}
		}(g)
	}
	wg.Wait()
}
