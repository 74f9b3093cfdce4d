// SPDX-License-Identifier: MIT
// Package: lvlforge/lawcheck
//
// helpers.go — guarded callback invocation, relation-matrix precomputation,
// and null-form detection shared by the three checks.
//
// Policy:
//   - Every caller-supplied function runs under a recover guard: a panic is
//     converted into *CallbackError tagged with the triggering indices, and
//     the check aborts with that error (the partial report is discarded).
//   - Relation matrices are built once per check (O(n²) callbacks) so the
//     O(n³) quantifier scans are pure lookups.

package lawcheck

import (
	"reflect"
)

// guardEq invokes eq(x, y) under a recover guard.
// idx tags the sample positions for CallbackError; a synthetic null operand
// is tagged with nullIndex.
func guardEq[T any](check string, eq EqualFn[T], x, y T, idx ...int) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackError{Check: check, Indices: append([]int(nil), idx...), Recovered: r}
		}
	}()

	return eq(x, y), nil
}

// guardCmp invokes cmp(x, y) under a recover guard.
func guardCmp[T any](check string, cmp CompareFn[T], x, y T, idx ...int) (c int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackError{Check: check, Indices: append([]int(nil), idx...), Recovered: r}
		}
	}()

	return cmp(x, y), nil
}

// guardHash invokes hash(x) under a recover guard.
func guardHash[T any](check string, hash HashFn[T], x T, idx ...int) (h uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackError{Check: check, Indices: append([]int(nil), idx...), Recovered: r}
		}
	}()

	return hash(x), nil
}

// eqMatrix evaluates eq over every ordered sample pair: m[i][j] = eq(s[i], s[j]).
// Complexity: O(n²) callbacks, O(n²) space.
func eqMatrix[T any](check string, sample []T, eq EqualFn[T]) ([][]bool, error) {
	n := len(sample)
	m := make([][]bool, n)
	for i := 0; i < n; i++ {
		m[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			ok, err := guardEq(check, eq, sample[i], sample[j], i, j)
			if err != nil {
				return nil, err
			}
			m[i][j] = ok
		}
	}

	return m, nil
}

// cmpMatrix evaluates sign(cmp) over every ordered sample pair.
// Only the sign is retained; magnitudes carry no lawful meaning.
// Complexity: O(n²) callbacks, O(n²) space.
func cmpMatrix[T any](check string, sample []T, cmp CompareFn[T]) ([][]int, error) {
	n := len(sample)
	m := make([][]int, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		for j := 0; j < n; j++ {
			c, err := guardCmp(check, cmp, sample[i], sample[j], i, j)
			if err != nil {
				return nil, err
			}
			m[i][j] = sign(c)
		}
	}

	return m, nil
}

// sign normalizes a three-way comparison result to -1, 0, or +1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// nullIndex tags a synthetic null operand in CallbackError/Counterexample
// index lists (it is not a sample position).
const nullIndex = -1

// nilableKind reports whether type T has a null-like absence representation
// (so the non-nullity law is meaningful for it).
func nilableKind[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// isNull reports whether a concrete instance of a nilable type is itself the
// null form (such elements are exempt from the non-nullity quantifier).
func isNull[T any](x T) bool {
	rv := reflect.ValueOf(&x).Elem()
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
