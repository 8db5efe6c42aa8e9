package solve

import (
	"errors"
	"fmt"

	"github.com/chazu/wayfarer/pkg/geometry"
)

// ErrorKind is the error taxonomy surfaced from Solve, following the
// original's app/exception.py Kinds.
type ErrorKind int

const (
	EndpointsCoincide ErrorKind = iota
	OutOfBounds
	EndpointUnsafe
	UnsupportedPair
	NoPath
	MalformedRaster
)

func (k ErrorKind) String() string {
	switch k {
	case EndpointsCoincide:
		return "EndpointsCoincide"
	case OutOfBounds:
		return "OutOfBounds"
	case EndpointUnsafe:
		return "EndpointUnsafe"
	case UnsupportedPair:
		return "UnsupportedPair"
	case NoPath:
		return "NoPath"
	case MalformedRaster:
		return "MalformedRaster"
	default:
		return "Unknown"
	}
}

// CoreError is returned from Solve for every failure mode in the error
// taxonomy except NoPath, which per spec.md §7's propagation policy is
// "returned as a normal result with empty path" — Solve reports it by
// returning a populated PathResult (cells + visited, empty path) with a
// nil error, not a CoreError.
type CoreError struct {
	Kind  ErrorKind
	Point *geometry.Vector2D
	msg   string
}

func (e *CoreError) Error() string { return e.msg }

func newError(kind ErrorKind, msg string) *CoreError {
	return &CoreError{Kind: kind, msg: msg}
}

func newPointError(kind ErrorKind, point geometry.Vector2D, msg string) *CoreError {
	p := point
	return &CoreError{Kind: kind, Point: &p, msg: fmt.Sprintf("%s: (%d,%d)", msg, p.X, p.Y)}
}

// KindOf extracts the ErrorKind from err, if it is (or wraps) a
// *CoreError.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CoreError
	if !errors.As(err, &ce) {
		return 0, false
	}
	return ce.Kind, true
}
