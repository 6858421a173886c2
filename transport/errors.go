package transport

import "errors"

// Sentinel errors. Every message is prefixed with "transport: ..." and
// callers match them with errors.Is; context is attached with %w.
var (
	// ErrEmptyProblem indicates a problem without suppliers or consumers.
	ErrEmptyProblem = errors.New("transport: problem must have at least one supplier and one consumer")

	// ErrShapeMismatch indicates that supply/demand/label lengths disagree with the cost matrix.
	ErrShapeMismatch = errors.New("transport: shape mismatch between supply, demand, labels and costs")

	// ErrNegativeValue indicates a negative supply, demand or cost entry.
	ErrNegativeValue = errors.New("transport: values must be non-negative")

	// ErrNaNInf indicates a NaN or ±Inf supply, demand or cost entry.
	ErrNaNInf = errors.New("transport: values must be finite")

	// ErrUnbalanced is returned by NorthWest when total supply differs from total demand.
	ErrUnbalanced = errors.New("transport: problem is not balanced")
)
