package parserkit

import "errors"

// Common errors used throughout the parserkit package
var (
	// ErrNilCursor indicates a parse context was created without a cursor.
	ErrNilCursor = errors.New("cursor must not be nil")
	// ErrNilAlternative indicates a choice combinator was constructed with a nil alternative.
	ErrNilAlternative = errors.New("alternative must not be nil")
	// ErrNilConversion indicates a covariant choice was constructed without a conversion function.
	ErrNilConversion = errors.New("conversion function must not be nil")
	// ErrCursorType indicates a terminal parser was driven with a cursor kind it does not understand.
	ErrCursorType = errors.New("cursor type does not match parser input kind")
)
