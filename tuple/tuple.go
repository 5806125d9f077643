// Package tuple holds fixed-arity argument bundles and the adapters that
// unpack them positionally into ordinary Go functions.
//
// A bundle's arity is part of its type: T2[int, string] always carries
// exactly two values, so a function adapted with Apply2 can only ever be
// handed a bundle of the matching shape.
package tuple

import (
	"fmt"
	"strings"
)

// Bundle is implemented by every tuple type in this package.
type Bundle interface {
	// Len returns the static arity of the bundle.
	Len() int
	// Values returns the elements in positional order.
	Values() []any
}

// T0 is the empty bundle, for functions without parameters.
type T0 struct{}

// T1 bundles a single argument.
type T1[A any] struct {
	V1 A
}

// T2 bundles two arguments.
type T2[A, B any] struct {
	V1 A
	V2 B
}

// T3 bundles three arguments.
type T3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// T4 bundles four arguments.
type T4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// T5 bundles five arguments.
type T5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

func Of0() T0 { return T0{} }

func Of1[A any](a A) T1[A] { return T1[A]{a} }

func Of2[A, B any](a A, b B) T2[A, B] { return T2[A, B]{a, b} }

func Of3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{a, b, c}
}

func Of4[A, B, C, D any](a A, b B, c C, d D) T4[A, B, C, D] {
	return T4[A, B, C, D]{a, b, c, d}
}

func Of5[A, B, C, D, E any](a A, b B, c C, d D, e E) T5[A, B, C, D, E] {
	return T5[A, B, C, D, E]{a, b, c, d, e}
}

func (T0) Len() int { return 0 }

func (T0) Values() []any { return nil }

func (T1[A]) Len() int { return 1 }

func (t T1[A]) Values() []any { return []any{t.V1} }

func (T2[A, B]) Len() int { return 2 }

func (t T2[A, B]) Values() []any { return []any{t.V1, t.V2} }

func (T3[A, B, C]) Len() int { return 3 }

func (t T3[A, B, C]) Values() []any { return []any{t.V1, t.V2, t.V3} }

func (T4[A, B, C, D]) Len() int { return 4 }

func (t T4[A, B, C, D]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4}
}

func (T5[A, B, C, D, E]) Len() int { return 5 }

func (t T5[A, B, C, D, E]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5}
}

// String renders a bundle as "( v1, v2, ... )" using fmt's default
// formatting for each element.
func String(b Bundle) string {
	var sb strings.Builder

	sb.WriteString("( ")

	for i, v := range b.Values() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}

	sb.WriteString(" )")

	return sb.String()
}
