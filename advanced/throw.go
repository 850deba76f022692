package advanced

import "github.com/pkg/errors"

var (
	ErrEmptyGraph   = errors.New("dual graph is empty")
	ErrInvalidPoint = errors.New("point coordinates must be finite")
)

// A broken invariant means the dual graph is corrupt or isn't Delaunay, and
// any answer we gave would silently corrupt whatever is built on it. So these
// are panics, not errors. The library never recovers them; only the outermost
// layer of a program should, in order to report them.
type InvariantViolation struct {
	Err error
}

func (v InvariantViolation) Error() string {
	return "invariant violation: " + v.Err.Error()
}

func (v InvariantViolation) Unwrap() error {
	return v.Err
}

// Panic with an InvariantViolation.
func fatalf(format string, args ...interface{}) {
	panic(InvariantViolation{Err: errors.Errorf(format, args...)})
}

// HandleInvariantPanicRecover converts a recovered InvariantViolation into an
// error. Any other panic is passed on.
func HandleInvariantPanicRecover(r interface{}) error {
	if r != nil {
		if violation, ok := r.(InvariantViolation); ok {
			return violation
		}
		panic(r)
	}
	return nil
}
