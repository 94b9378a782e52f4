package objects

import (
	"errors"
	"fmt"
)

// ErrNotTree is returned when tree entries are requested from an object
// whose header declares a different kind.
var ErrNotTree = errors.New("object is not a tree")

// DecompressionError reports input that could not be inflated.
// The underlying zlib error is preserved as the cause.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("failed to decompress object: %v", e.Err)
}

func (e *DecompressionError) Unwrap() error {
	return e.Err
}

// MalformedHeaderError reports a header that could not be split into a
// kind token and a decimal size before the NUL terminator.
type MalformedHeaderError struct {
	Reason string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("malformed object header: %s", e.Reason)
}

// UnrecognizedKindError reports a header kind token outside the four
// known object kinds. The raw token is preserved for display.
type UnrecognizedKindError struct {
	Token string
}

func (e *UnrecognizedKindError) Error() string {
	return fmt.Sprintf("unrecognized object kind %q", e.Token)
}

// SizeMismatchError reports disagreement between the size declared in
// the header and the actual payload length. Signals a truncated or
// corrupted object.
type SizeMismatchError struct {
	Declared int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("object size mismatch: header declares %d bytes, payload has %d", e.Declared, e.Actual)
}

// TruncatedTreeError reports leftover bytes after the last complete
// tree entry. Only surfaced in strict parsing; lenient parsing drops
// the tail silently.
type TruncatedTreeError struct {
	// Offset is the payload position where the partial entry begins.
	Offset int
}

func (e *TruncatedTreeError) Error() string {
	return fmt.Sprintf("truncated tree entry at payload offset %d", e.Offset)
}
