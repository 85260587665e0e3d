package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")

	ErrNotAxisAligned = errors.New("line is not horizontal or vertical")
	ErrBelowMinimum   = errors.New("value must be greater than or equal to -1")
	ErrInvalidSymbol  = errors.New("symbol must be a single printable narrow character")
	ErrCanvasTooLarge = errors.New("canvas exceeds the maximum cell count")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"

	KindUnknownShape ErrorKind = "unknown_shape"
	KindArity        ErrorKind = "arity"
	KindConstruction ErrorKind = "construction"
	KindNoCanvas     ErrorKind = "no_canvas"
	KindOutOfCanvas  ErrorKind = "out_of_canvas"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownShapeError reports a command key that maps to no shape.
type UnknownShapeError struct {
	Key string
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("unknown shape %q (expected one of C, L, R, B)", e.Key)
}

// ArityError reports a command with the wrong number of parameters.
type ArityError struct {
	Shape ShapeKind
	Min   int
	Max   int
	Got   int
}

func (e *ArityError) Error() string {
	expected := fmt.Sprintf("%d", e.Max)
	if e.Min != e.Max {
		expected = fmt.Sprintf("%d or %d", e.Min, e.Max)
	}
	return fmt.Sprintf("invalid %s input data - expected %s params, but %d were given", e.Shape, expected, e.Got)
}

// ConstructionError reports a parameter that failed conversion or validation.
type ConstructionError struct {
	Shape ShapeKind
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct %s: %v", e.Shape, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

// NoCanvasError reports a drawing command issued before any canvas exists.
type NoCanvasError struct {
	Shape ShapeKind
}

func (e *NoCanvasError) Error() string {
	return fmt.Sprintf("cannot draw %s: no canvas, create one first with C <width> <height>", e.Shape)
}

// OutOfCanvasError reports a grid access outside the canvas.
type OutOfCanvasError struct {
	Shape ShapeKind
	Point Point
}

func (e *OutOfCanvasError) Error() string {
	return fmt.Sprintf("%s point %s is out of canvas", e.Shape, e.Point)
}

// CommandError ties a shape error to the input line that caused it.
type CommandError struct {
	Line    int
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ErrorKindOf classifies err. Unrecognized errors are KindExecution.
func ErrorKindOf(err error) ErrorKind {
	var (
		unknown *UnknownShapeError
		arity   *ArityError
		constr  *ConstructionError
		noCanv  *NoCanvasError
		outside *OutOfCanvasError
		oe      *OpError
	)
	switch {
	case errors.As(err, &unknown):
		return KindUnknownShape
	case errors.As(err, &arity):
		return KindArity
	case errors.As(err, &constr):
		return KindConstruction
	case errors.As(err, &noCanv):
		return KindNoCanvas
	case errors.As(err, &outside):
		return KindOutOfCanvas
	case errors.As(err, &oe):
		return oe.Kind
	default:
		return KindExecution
	}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	return ErrorKindOf(err) == kind
}
