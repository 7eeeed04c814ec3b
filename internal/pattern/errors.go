// Package pattern decodes and encodes standalone cell rectangles in the
// binary dump and RLE text formats, converts images into patterns, and
// rotates patterns by quarter turns.
package pattern

import (
	"errors"
	"fmt"

	"life-sim/internal/core"
)

var (
	// ErrTruncated reports input that ends before the declared payload.
	ErrTruncated = errors.New("truncated pattern data")
	// ErrBadHeader reports a missing or malformed header.
	ErrBadHeader = errors.New("malformed pattern header")
	// ErrDimensions reports non-positive or oversized dimensions.
	ErrDimensions = core.ErrDimensions
	// ErrUnknownFormat reports a file whose format cannot be determined.
	ErrUnknownFormat = errors.New("unknown pattern format")
)

// DecodeError describes where decoding failed.
type DecodeError struct {
	Format Format
	// Pos is a byte offset for binary input and a 1-based line for text.
	Pos int
	Err error
}

func (e *DecodeError) Error() string {
	switch e.Format {
	case FormatRLE:
		return fmt.Sprintf("decode %s: line %d: %v", e.Format, e.Pos, e.Err)
	case FormatBinary:
		return fmt.Sprintf("decode %s: offset %d: %v", e.Format, e.Pos, e.Err)
	default:
		return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }
