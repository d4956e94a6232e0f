package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidArgument indicates a caller passed a value outside an operation's contract,
	// such as a non-positive frame width or a missing collaborator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedMode indicates a mode outside the fixed mode set.
	ErrUnsupportedMode = errors.New("unsupported mode")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrEndOfInput indicates the transcript source has no more utterances.
	ErrEndOfInput = errors.New("end of input")
)
