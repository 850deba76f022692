package voronoi

import (
	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/pkg/errors"
)

func fatalf(format string, args ...interface{}) {
	panic(advanced.InvariantViolation{Err: errors.Errorf(format, args...)})
}
