// Package errs defines the sentinel errors returned by the fastpfor packages.
//
// Errors are wrapped at the failure site with fmt.Errorf("%w: ...") so the
// message carries word offsets and expected/actual sizes while callers can
// still match the class with errors.Is.
package errs

import "errors"

// Structural corruption.
var (
	ErrInvalidAlignedLength   = errors.New("invalid aligned length")
	ErrInvalidPageHeader      = errors.New("invalid page header")
	ErrInvalidBitWidth        = errors.New("invalid bit width")
	ErrInvalidExceptionStream = errors.New("invalid exception stream")
	ErrInvalidTailValue       = errors.New("invalid variable-byte tail value")
)

// Truncation.
var (
	ErrTruncatedData = errors.New("truncated data")
)

// Consistency.
var (
	ErrPayloadSizeMismatch    = errors.New("page payload size mismatch")
	ErrMissingExceptionStream = errors.New("missing exception stream")
	ErrTailCountMismatch      = errors.New("variable-byte tail count mismatch")
)

// Caller input and configuration.
var (
	ErrInvalidByteRange  = errors.New("invalid byte range")
	ErrInvalidValueCount = errors.New("invalid value count")
	ErrInvalidPageSize   = errors.New("invalid page size")
)

// ErrExceptionCountMismatch reports an encoder defect: the planner and the
// block packer disagree on the number of exceptions in a block.
var ErrExceptionCountMismatch = errors.New("exception count mismatch")
