package harness

import (
	"fmt"
	"math"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"

	"github.com/weiihann/fntest/tuple"
)

// DeepEqual is the default comparator. Byte slices are compared by content,
// everything else with reflect.DeepEqual semantics.
func DeepEqual[T any](a, b T) bool {
	return assert.ObjectsAreEqual(a, b)
}

// Equal compares with ==.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// SliceEqual compares slices element by element with eq.
func SliceEqual[T any](eq Comparator[T]) Comparator[[]T] {
	return func(a, b []T) bool {
		if len(a) != len(b) {
			return false
		}

		for i := range a {
			if !eq(a[i], b[i]) {
				return false
			}
		}

		return true
	}
}

// MapEqual compares maps key by key, values with eq.
func MapEqual[K comparable, V any](eq Comparator[V]) Comparator[map[K]V] {
	return func(a, b map[K]V) bool {
		if len(a) != len(b) {
			return false
		}

		for k, va := range a {
			vb, ok := b[k]
			if !ok || !eq(va, vb) {
				return false
			}
		}

		return true
	}
}

// FloatEqual accepts floats within tolerance of each other. NaN equals NaN.
func FloatEqual(tolerance float64) Comparator[float64] {
	return func(a, b float64) bool {
		if math.IsNaN(a) || math.IsNaN(b) {
			return math.IsNaN(a) && math.IsNaN(b)
		}

		return a == b || math.Abs(a-b) <= tolerance
	}
}

// TextEqual compares strings after NFC normalization, so precomposed and
// decomposed forms of the same text are equal.
func TextEqual(a, b string) bool {
	return norm.NFC.String(a) == norm.NFC.String(b)
}

// Sprint is the default result stringifier.
func Sprint[T any](v T) string {
	return fmt.Sprint(v)
}

// BundleString is the default argument stringifier.
func BundleString[A tuple.Bundle](args A) string {
	return tuple.String(args)
}

var spewConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// SpewString renders v with pointers followed, for results that hold
// pointers or nested structures.
func SpewString[T any](v T) string {
	return spewConfig.Sprintf("%+v", v)
}
