package objects

import (
	"bytes"
	"encoding/hex"
	"strings"

	"gitprobe/internal/constants"
)

// EntryKind is the classification of a tree entry's mode token.
// A closed lookup over the small fixed vocabulary of mode markers,
// sufficient for display; not a permission-bit decode.
type EntryKind int

const (
	EntryUnknown EntryKind = iota
	EntryDirectory
	EntryRegularFile
	EntryExecutable
	EntrySymlink
	EntrySubmodule
)

func (k EntryKind) String() string {
	switch k {
	case EntryDirectory:
		return "directory"
	case EntryRegularFile:
		return "regular file"
	case EntryExecutable:
		return "executable file"
	case EntrySymlink:
		return "symbolic link"
	case EntrySubmodule:
		return "submodule"
	default:
		return "unknown"
	}
}

// ObjectKind returns the kind of object the entry's hash points to.
// Unknown modes default to blob, the safest assumption for display.
func (k EntryKind) ObjectKind() ObjectKind {
	switch k {
	case EntryDirectory:
		return KindTree
	case EntrySubmodule:
		return KindCommit
	default:
		return KindBlob
	}
}

// classifyMode maps a mode token to its entry kind. Exact token match,
// case-sensitive; unlisted tokens classify as unknown, never reject.
// "040000" is accepted alongside the canonical "40000" because some
// writers zero-pad the directory mode.
func classifyMode(mode string) EntryKind {
	switch mode {
	case constants.ModeDirectory, constants.ModeDirectoryPadded:
		return EntryDirectory
	case constants.ModeRegularFile:
		return EntryRegularFile
	case constants.ModeExecutable:
		return EntryExecutable
	case constants.ModeSymlink:
		return EntrySymlink
	case constants.ModeSubmodule:
		return EntrySubmodule
	default:
		return EntryUnknown
	}
}

// TreeEntry is one line of a tree object's directory listing.
// Immutable value produced by ParseTree; holds no reference back to the
// tree it came from, and its hash is an address into the store, not a
// resolved object.
type TreeEntry struct {
	mode      string
	kind      EntryKind
	nameBytes []byte
	hash      string
}

// Mode returns the raw mode token, preserved verbatim even when it is
// outside the known vocabulary.
func (e *TreeEntry) Mode() string {
	return e.mode
}

func (e *TreeEntry) Kind() EntryKind {
	return e.kind
}

// NameBytes returns the entry name exactly as stored. Names are raw
// bytes on disk and may not be valid UTF-8.
func (e *TreeEntry) NameBytes() []byte {
	return bytes.Clone(e.nameBytes)
}

// Name returns a best-effort display string for the entry name.
// Invalid UTF-8 sequences are replaced, never rejected.
func (e *TreeEntry) Name() string {
	return strings.ToValidUTF8(string(e.nameBytes), "�")
}

// Hash returns the entry's object address as 40 lowercase hex characters.
func (e *TreeEntry) Hash() string {
	return e.hash
}

func (e *TreeEntry) IsDirectory() bool {
	return e.kind == EntryDirectory
}

// ParseTree walks a tree payload and returns its entries in stored
// order. Each entry is "<mode> <name>\x00<20 raw hash bytes>" with no
// other delimiters.
//
// In lenient mode (strict=false) a trailing partial entry is silently
// dropped and no error is ever returned: entries found before the
// malformed tail are still useful for display. In strict mode the same
// entries are returned together with a TruncatedTreeError naming the
// offset where the partial entry begins.
func ParseTree(payload []byte, strict bool) ([]TreeEntry, error) {
	var entries []TreeEntry
	cursor := 0

	for cursor < len(payload) {
		entry, next, ok := parseEntry(payload, cursor)
		if !ok {
			if strict {
				return entries, &TruncatedTreeError{Offset: cursor}
			}
			return entries, nil
		}
		entries = append(entries, entry)
		cursor = next
	}

	return entries, nil
}

// parseEntry reads one entry starting at cursor. Returns ok=false when
// any required field cannot be fully read.
func parseEntry(payload []byte, cursor int) (TreeEntry, int, bool) {
	spaceIndex := bytes.IndexByte(payload[cursor:], ' ')
	if spaceIndex == -1 {
		return TreeEntry{}, 0, false
	}
	mode := string(payload[cursor : cursor+spaceIndex])
	cursor += spaceIndex + 1

	nullIndex := bytes.IndexByte(payload[cursor:], constants.NullByte)
	if nullIndex == -1 {
		return TreeEntry{}, 0, false
	}
	name := bytes.Clone(payload[cursor : cursor+nullIndex])
	cursor += nullIndex + 1

	if len(payload)-cursor < constants.HashByteLength {
		return TreeEntry{}, 0, false
	}
	hash := hex.EncodeToString(payload[cursor : cursor+constants.HashByteLength])
	cursor += constants.HashByteLength

	entry := TreeEntry{
		mode:      mode,
		kind:      classifyMode(mode),
		nameBytes: name,
		hash:      hash,
	}
	return entry, cursor, true
}
