package objects

import (
	"bytes"
	"fmt"
)

// ObjectKind identifies the typed payload of a decoded object.
// The loose object format knows exactly four kinds; any other header
// token is a decode error, not a fifth variant.
type ObjectKind string

const (
	KindBlob   ObjectKind = "blob"
	KindTree   ObjectKind = "tree"
	KindCommit ObjectKind = "commit"
	KindTag    ObjectKind = "tag"
)

func (k ObjectKind) IsValid() bool {
	switch k {
	case KindBlob, KindTree, KindCommit, KindTag:
		return true
	default:
		return false
	}
}

// RawObject is a decompressed object after header validation but before
// any kind-specific interpretation. Constructed only by Decode, which
// guarantees len(payload) == declared size, so a RawObject violating
// that invariant never exists.
type RawObject struct {
	kind    ObjectKind
	size    int
	payload []byte
}

func (o *RawObject) Kind() ObjectKind {
	return o.kind
}

// Size returns the size declared in the object header.
// Always equal to len(Payload()).
func (o *RawObject) Size() int {
	return o.size
}

// Payload returns a copy of the object content after the header
// terminator. For blobs, commits and tags this is the complete content;
// for trees it is the binary entry stream consumed by ParseTree.
// Copied so a caller writing into the result cannot mutate the object.
func (o *RawObject) Payload() []byte {
	return bytes.Clone(o.payload)
}

func (o *RawObject) IsTree() bool {
	return o.kind == KindTree
}

func (o *RawObject) String() string {
	return fmt.Sprintf("RawObject{kind: %s, size: %d bytes}", o.kind, o.size)
}
