package fastmat

import "fmt"

// ShapeKind distinguishes the ways a shape invariant can be violated.
type ShapeKind int

const (
	// ShapeMismatch marks a dimension mismatch between two operands.
	ShapeMismatch ShapeKind = iota
	// NonSquare marks a non-square input where a square one was required.
	NonSquare
	// NotPowerOfTwoMultipleOfF marks a side length that is not n = F * 2^k.
	NotPowerOfTwoMultipleOfF
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeMismatch:
		return "shape mismatch"
	case NonSquare:
		return "non-square"
	case NotPowerOfTwoMultipleOfF:
		return "size is not a power-of-two multiple of F"
	default:
		return "unknown shape error"
	}
}

// ShapeError reports a violated shape invariant: a dimension mismatch
// between operands, a non-square input to the Z-order transform, or a side
// length that is not a power-of-two multiple of the fragment size F.
//
// ShapeError is always returned synchronously at the start of an operation;
// it never fires mid-computation (spec §7).
type ShapeError struct {
	Kind ShapeKind
	Msg  string
}

func (e *ShapeError) Error() string {
	if e.Msg == "" {
		return "fastmat: " + e.Kind.String()
	}
	return fmt.Sprintf("fastmat: %s: %s", e.Kind, e.Msg)
}

func shapeErrorf(kind ShapeKind, format string, args ...interface{}) *ShapeError {
	return &ShapeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// BoundsError reports an out-of-range coordinate access on a LinearMatrix.
// This is a contract violation by the caller, not a recoverable condition;
// Get/Set panic with a BoundsError rather than returning one (spec §7).
type BoundsError struct {
	X, Y, W, H int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("fastmat: coordinate (%d,%d) out of bounds for %dx%d matrix", e.X, e.Y, e.W, e.H)
}

// IOError wraps a failure from the external codec (MarshalBinary /
// UnmarshalBinary) or a driver reading/writing a blob. The core
// multiplication and layout routines never produce an IOError.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("fastmat: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
