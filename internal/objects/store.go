package objects

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"gitprobe/utils"
)

// ObjectStore reads loose objects from a content-addressed directory.
// Read-only: it never creates, rewrites or deletes anything.
//
// The root is the objects directory itself, passed in explicitly so
// tests can point the store at arbitrary synthetic layouts. Stateless
// between calls; safe for concurrent use.
type ObjectStore struct {
	root string
	log  *zap.Logger
}

func NewObjectStore(root string, log *zap.Logger) *ObjectStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &ObjectStore{
		root: root,
		log:  log,
	}
}

// objectPath fans the hash out into <root>/<first 2 chars>/<rest>.
func (store *ObjectStore) objectPath(hash string) string {
	return filepath.Join(store.root, hash[:2], hash[2:])
}

// ReadRaw returns the compressed bytes of the object addressed by hash.
// A missing or unreadable file surfaces as a wrapped os error, which is
// deliberately distinct from the decode error types: the caller can
// tell "could not get bytes" from "bytes were bad".
func (store *ObjectStore) ReadRaw(hash string) ([]byte, error) {
	if !utils.IsValidHash(hash) {
		return nil, fmt.Errorf("invalid object hash %q", hash)
	}

	compressed, err := os.ReadFile(store.objectPath(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", hash, err)
	}

	store.log.Debug("read loose object",
		zap.String("hash", utils.AbbrevHash(hash)),
		zap.Int("compressed_bytes", len(compressed)))

	return compressed, nil
}

// Load reads and decodes the object addressed by hash.
func (store *ObjectStore) Load(hash string) (*RawObject, error) {
	compressed, err := store.ReadRaw(hash)
	if err != nil {
		return nil, err
	}

	obj, err := Decode(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decode object %s: %w", hash, err)
	}

	store.log.Debug("decoded object",
		zap.String("hash", utils.AbbrevHash(hash)),
		zap.String("kind", string(obj.Kind())),
		zap.Int("size", obj.Size()))

	return obj, nil
}

// LoadTree loads the object at hash and parses its entry stream.
// Returns ErrNotTree when the object decodes to a different kind.
func (store *ObjectStore) LoadTree(hash string, strict bool) (*RawObject, []TreeEntry, error) {
	obj, err := store.Load(hash)
	if err != nil {
		return nil, nil, err
	}

	if !obj.IsTree() {
		return nil, nil, fmt.Errorf("object %s is a %s: %w", hash, obj.Kind(), ErrNotTree)
	}

	entries, err := ParseTree(obj.Payload(), strict)
	if err != nil {
		return obj, entries, fmt.Errorf("failed to parse tree %s: %w", hash, err)
	}

	return obj, entries, nil
}

// Exists checks if an object exists in storage.
func (store *ObjectStore) Exists(hash string) bool {
	if !utils.IsValidHash(hash) {
		return false
	}
	_, err := os.Stat(store.objectPath(hash))
	return err == nil
}
