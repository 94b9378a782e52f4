package testutils

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"

	"gitprobe/internal/constants"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character object hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepo creates a temporary directory with a .git/objects structure
// and returns the repository path. The store root for tests is
// <repoPath>/.git/objects.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	objectsDir := filepath.Join(repoPath, constants.GitDir, constants.ObjectsDir)

	if err := os.MkdirAll(objectsDir, 0755); err != nil {
		t.Fatalf("Failed to create %s/%s: %v", constants.GitDir, constants.ObjectsDir, err)
	}

	return repoPath
}

// ObjectsRoot returns the objects directory for a repository created by
// SetupTestRepo.
func ObjectsRoot(repoPath string) string {
	return filepath.Join(repoPath, constants.GitDir, constants.ObjectsDir)
}

// EncodeObject builds the uncompressed loose-object bytes for a kind
// and payload: "<kind> <size>\0<payload>".
func EncodeObject(kind string, payload []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", kind, len(payload))
	return append([]byte(header), payload...)
}

// Compress deflates raw object bytes the way the store expects to find
// them on disk.
func Compress(t *testing.T, data []byte) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("Failed to compress test object: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to flush test object compression: %v", err)
	}

	return buffer.Bytes()
}

// WriteRawObject places arbitrary bytes at the store path for hash,
// creating the two-character fan-out directory. The bytes are written
// as-is, so corrupt inputs can be planted too.
func WriteRawObject(t *testing.T, objectsRoot, hash string, data []byte) {
	t.Helper()

	objectDir := filepath.Join(objectsRoot, hash[:constants.HashDirPrefixLength])
	if err := os.MkdirAll(objectDir, 0755); err != nil {
		t.Fatalf("Failed to create object directory: %v", err)
	}

	objectFile := filepath.Join(objectDir, hash[constants.HashDirPrefixLength:])
	if err := os.WriteFile(objectFile, data, 0644); err != nil {
		t.Fatalf("Failed to write test object: %v", err)
	}
}

// StoreObject compresses and stores an object under a random hash,
// returning the hash. Addresses are random because gitprobe treats the
// hash as an identifier, not a checksum to recompute.
func StoreObject(t *testing.T, objectsRoot, kind string, payload []byte) string {
	t.Helper()

	hash := RandomHash()
	WriteRawObject(t, objectsRoot, hash, Compress(t, EncodeObject(kind, payload)))
	return hash
}

// TreeEntrySpec describes one entry for BuildTreePayload.
type TreeEntrySpec struct {
	Mode string
	Name string
	// HexHash is the 40-character entry address; stored as 20 raw bytes.
	HexHash string
}

// BuildTreePayload concatenates well-formed tree entries in the given
// order: "<mode> <name>\0<20 raw hash bytes>" each.
func BuildTreePayload(t *testing.T, entries ...TreeEntrySpec) []byte {
	t.Helper()

	var buf bytes.Buffer
	for _, entry := range entries {
		buf.WriteString(entry.Mode)
		buf.WriteByte(' ')
		buf.WriteString(entry.Name)
		buf.WriteByte(0)

		hashBytes, err := hex.DecodeString(entry.HexHash)
		if err != nil || len(hashBytes) != constants.HashByteLength {
			t.Fatalf("Invalid test entry hash %q", entry.HexHash)
		}
		buf.Write(hashBytes)
	}

	return buf.Bytes()
}
