package tuple

// Func is a function that takes its arguments as a single bundle. Every
// function handed to the harness is reduced to this shape by one of the
// Apply adapters.
type Func[A, R any] func(args A) (R, error)

func Apply0[R any](f func() R) Func[T0, R] {
	return func(T0) (R, error) {
		return f(), nil
	}
}

func Apply1[A, R any](f func(A) R) Func[T1[A], R] {
	return func(t T1[A]) (R, error) {
		return f(t.V1), nil
	}
}

func Apply2[A, B, R any](f func(A, B) R) Func[T2[A, B], R] {
	return func(t T2[A, B]) (R, error) {
		return f(t.V1, t.V2), nil
	}
}

func Apply3[A, B, C, R any](f func(A, B, C) R) Func[T3[A, B, C], R] {
	return func(t T3[A, B, C]) (R, error) {
		return f(t.V1, t.V2, t.V3), nil
	}
}

func Apply4[A, B, C, D, R any](
	f func(A, B, C, D) R,
) Func[T4[A, B, C, D], R] {
	return func(t T4[A, B, C, D]) (R, error) {
		return f(t.V1, t.V2, t.V3, t.V4), nil
	}
}

func Apply5[A, B, C, D, E, R any](
	f func(A, B, C, D, E) R,
) Func[T5[A, B, C, D, E], R] {
	return func(t T5[A, B, C, D, E]) (R, error) {
		return f(t.V1, t.V2, t.V3, t.V4, t.V5), nil
	}
}

// ApplyErr0 through ApplyErr5 adapt functions that report failure through
// a trailing error. A non-nil error is treated like a panic: Call turns it
// into a *Fault.

func ApplyErr0[R any](f func() (R, error)) Func[T0, R] {
	return func(T0) (R, error) {
		return f()
	}
}

func ApplyErr1[A, R any](f func(A) (R, error)) Func[T1[A], R] {
	return func(t T1[A]) (R, error) {
		return f(t.V1)
	}
}

func ApplyErr2[A, B, R any](f func(A, B) (R, error)) Func[T2[A, B], R] {
	return func(t T2[A, B]) (R, error) {
		return f(t.V1, t.V2)
	}
}

func ApplyErr3[A, B, C, R any](
	f func(A, B, C) (R, error),
) Func[T3[A, B, C], R] {
	return func(t T3[A, B, C]) (R, error) {
		return f(t.V1, t.V2, t.V3)
	}
}

func ApplyErr4[A, B, C, D, R any](
	f func(A, B, C, D) (R, error),
) Func[T4[A, B, C, D], R] {
	return func(t T4[A, B, C, D]) (R, error) {
		return f(t.V1, t.V2, t.V3, t.V4)
	}
}

func ApplyErr5[A, B, C, D, E, R any](
	f func(A, B, C, D, E) (R, error),
) Func[T5[A, B, C, D, E], R] {
	return func(t T5[A, B, C, D, E]) (R, error) {
		return f(t.V1, t.V2, t.V3, t.V4, t.V5)
	}
}
