package atom

import "errors"

// Errors
var (
	ErrNotFound      = errors.New("atom tag not found")
	ErrTruncated     = errors.New("truncated atom")
	ErrShortRecord   = errors.New("atom shorter than its layout")
	ErrInvalidTag    = errors.New("atom tag must be 4 bytes")
	ErrUnknownField  = errors.New("unknown field")
	ErrCodecMismatch = errors.New("value does not match field codec")
	ErrFieldOverflow = errors.New("value wider than field")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidValue  = errors.New("invalid field value")
)
