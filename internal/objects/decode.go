package objects

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/klauspost/compress/zlib"

	"gitprobe/internal/constants"
)

// Decode inflates a compressed loose object, validates its header and
// returns the typed result. Pure function of its input: no I/O, no
// shared state, safe to call from any number of goroutines.
//
// Wire format after inflation: "<kind> <size>\x00<payload>", where
// <kind> is one of blob/tree/commit/tag and <size> is the decimal
// payload length.
func Decode(compressed []byte) (*RawObject, error) {
	data, err := inflate(compressed)
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}

	nullByteIndex := bytes.IndexByte(data, constants.NullByte)
	if nullByteIndex == -1 {
		return nil, &MalformedHeaderError{Reason: "no header terminator"}
	}

	kind, declaredSize, err := parseHeader(data[:nullByteIndex])
	if err != nil {
		return nil, err
	}

	payload := data[nullByteIndex+1:]
	if len(payload) != declaredSize {
		return nil, &SizeMismatchError{Declared: declaredSize, Actual: len(payload)}
	}

	return &RawObject{
		kind:    kind,
		size:    declaredSize,
		payload: payload,
	}, nil
}

func inflate(compressed []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var buffer bytes.Buffer
	if _, err := buffer.ReadFrom(reader); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// parseHeader splits "<kind> <size>" on the first space and validates
// both tokens. An unknown kind token is rejected rather than passed
// through: the four-kind vocabulary is part of the format, and letting
// a corrupt header pose as a valid object helps nobody.
func parseHeader(header []byte) (ObjectKind, int, error) {
	spaceIndex := bytes.IndexByte(header, ' ')
	if spaceIndex == -1 {
		return "", 0, &MalformedHeaderError{Reason: "no space between kind and size"}
	}

	kind := ObjectKind(header[:spaceIndex])
	if !kind.IsValid() {
		return "", 0, &UnrecognizedKindError{Token: string(header[:spaceIndex])}
	}

	// ParseUint rejects signs, so "+5" and "-5" both fail here; the
	// size token is bare decimal digits only. bitSize 63 keeps the
	// value representable as a non-negative int.
	sizeToken := string(header[spaceIndex+1:])
	size, err := strconv.ParseUint(sizeToken, 10, 63)
	if err != nil {
		return "", 0, &MalformedHeaderError{Reason: fmt.Sprintf("invalid size token %q", sizeToken)}
	}

	return kind, int(size), nil
}
