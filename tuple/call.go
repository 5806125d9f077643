package tuple

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Fault is a failure raised by a function under test, either a recovered
// panic or a non-nil error returned through an ApplyErr adapter. Its message
// is the message of the original failure.
type Fault struct {
	// Value is the recovered panic value or the returned error.
	Value any
	// Panicked is false when the fault came from a returned error.
	Panicked bool

	err error
}

// NewFault wraps a recovered panic value (panicked) or a returned error.
func NewFault(value any, panicked bool) *Fault {
	f := &Fault{Value: value, Panicked: panicked}

	if err, ok := value.(error); ok {
		f.err = errors.WithStack(err)
	} else {
		f.err = errors.Errorf("%v", value)
	}

	return f
}

func (f *Fault) Error() string {
	return f.err.Error()
}

// Unwrap exposes the original error, so errors.Is and errors.As see through
// the fault.
func (f *Fault) Unwrap() error {
	return f.err
}

// TypeName returns the dynamic type of the fault value when it is an error,
// and "unknown" for any other panic value.
func (f *Fault) TypeName() string {
	if _, ok := f.Value.(error); ok {
		return fmt.Sprintf("%T", f.Value)
	}

	return "unknown"
}

// StackTrace returns the frames captured where the fault was intercepted.
func (f *Fault) StackTrace() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	if st, ok := f.err.(stackTracer); ok {
		return st.StackTrace()
	}

	return nil
}

// Call invokes f with args and measures the wall-clock duration of the call.
// A panic inside f, or an error returned by it, comes back as a *Fault with
// the zero result; the duration is zero in that case.
func Call[A, R any](f Func[A, R], args A) (result R, elapsed time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			result, elapsed, err = zero, 0, NewFault(r, true)
		}
	}()

	start := time.Now()
	result, err = f(args)
	elapsed = time.Since(start)

	if err != nil {
		var zero R

		return zero, 0, NewFault(err, false)
	}

	return result, elapsed, nil
}
