package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors through every topology mutation would bury the geometry
// under error plumbing. Recoverable failures (degenerate input, a cut that
// misses) are returned as errors. Invariant violations are programming errors,
// so they panic with an InvariantError, and the public API recovers the panic
// into an error.

// ShatterError is implemented by every error raised by this package. Only
// panics carrying a ShatterError are recovered by HandlePanicRecover.
type ShatterError interface {
	error
	shatterError()
}

// ConfigurationError reports input that can never succeed without being
// fixed: a super-triangle that is not exactly three points, a malformed mesh
// index buffer, an invalid option.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "configuration error: " + e.Reason }

// DegenerateGeometryError reports geometry that cannot be handled with the
// current tolerance: collinear circumcircle input, a zero length clip line, a
// point coincident with an existing node. The pipeline skips the offending
// insertion or cut.
type DegenerateGeometryError struct {
	Reason string
}

func (e *DegenerateGeometryError) Error() string { return "degenerate geometry: " + e.Reason }

// NoIntersectionError is raised when a clip line that should cross an edge
// does not produce an intersection point.
type NoIntersectionError struct {
	Reason string
}

func (e *NoIntersectionError) Error() string { return "no intersection: " + e.Reason }

// DegenerateTriangleError is raised when three edges do not bound a triangle.
type DegenerateTriangleError struct {
	Reason string
}

func (e *DegenerateTriangleError) Error() string { return "degenerate triangle: " + e.Reason }

// InvariantError means the topology is corrupt. It is only ever panicked.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string { return "invariant violated: " + e.Reason }

func (*ConfigurationError) shatterError()      {}
func (*DegenerateGeometryError) shatterError() {}
func (*NoIntersectionError) shatterError()     {}
func (*DegenerateTriangleError) shatterError() {}
func (*InvariantError) shatterError()          {}

func configurationErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&ConfigurationError{Reason: fmt.Sprintf(format, args...)})
}

func degenerateGeometryErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&DegenerateGeometryError{Reason: fmt.Sprintf(format, args...)})
}

func noIntersectionErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&NoIntersectionError{Reason: fmt.Sprintf(format, args...)})
}

func degenerateTriangleErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&DegenerateTriangleError{Reason: fmt.Sprintf(format, args...)})
}

// Panic with an InvariantError.
func fatalf(format string, args ...interface{}) {
	panic(errors.WithStack(&InvariantError{Reason: fmt.Sprintf(format, args...)}))
}

// IsRecoverable reports whether err should make the pipeline skip one
// insertion or cut rather than abort.
func IsRecoverable(err error) bool {
	var degenerate *DegenerateGeometryError
	var noIntersection *NoIntersectionError
	return errors.As(err, &degenerate) || errors.As(err, &noIntersection)
}

// HandlePanicRecover converts a recovered ShatterError panic into an error.
// Any other panic value is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		var shatterErr ShatterError
		if errors.As(err, &shatterErr) {
			return err
		}
	}
	panic(r)
}
