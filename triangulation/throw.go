package triangulation

import (
	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/pkg/errors"
)

// Same convention as the advanced package: a broken triangulation panics with
// an InvariantViolation rather than returning an error.
func fatalf(format string, args ...interface{}) {
	panic(advanced.InvariantViolation{Err: errors.Errorf(format, args...)})
}
