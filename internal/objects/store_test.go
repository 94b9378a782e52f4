package objects

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitprobe/testutils"
)

func newTestStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepo(t)
	objectsRoot := testutils.ObjectsRoot(repoPath)
	return NewObjectStore(objectsRoot, nil), objectsRoot
}

func TestObjectStore_Load(t *testing.T) {
	store, objectsRoot := newTestStore(t)

	content := []byte("stored content\n")
	hash := testutils.StoreObject(t, objectsRoot, "blob", content)

	obj, err := store.Load(hash)
	require.NoError(t, err)

	assert.Equal(t, KindBlob, obj.Kind())
	assert.Equal(t, len(content), obj.Size())
	assert.Equal(t, content, obj.Payload())
}

func TestObjectStore_ReadNonExistent(t *testing.T) {
	store, _ := newTestStore(t)

	fakeHash := "0000000000000000000000000000000000000000"
	_, err := store.Load(fakeHash)

	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// I/O failures must stay distinguishable from decode failures.
	var decompErr *DecompressionError
	assert.False(t, errors.As(err, &decompErr))
}

func TestObjectStore_InvalidHashRejected(t *testing.T) {
	store, _ := newTestStore(t)

	for _, hash := range []string{
		"",
		"abc",
		"ABCDEF0123456789ABCDEF0123456789ABCDEF01",         // uppercase
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",         // non-hex
		"../../../../etc/passwd/0000000000000000000000000", // traversal attempt
	} {
		_, err := store.ReadRaw(hash)
		assert.Error(t, err, "hash %q should be rejected", hash)
	}
}

func TestObjectStore_LoadCorrupt(t *testing.T) {
	store, objectsRoot := newTestStore(t)

	hash := testutils.RandomHash()
	testutils.WriteRawObject(t, objectsRoot, hash, []byte("definitely not deflate"))

	_, err := store.Load(hash)

	var decompErr *DecompressionError
	require.ErrorAs(t, err, &decompErr)
}

func TestObjectStore_LoadTree(t *testing.T) {
	store, objectsRoot := newTestStore(t)

	blobHash := testutils.RandomHash()
	payload := testutils.BuildTreePayload(t,
		testutils.TreeEntrySpec{Mode: "100644", Name: "main.go", HexHash: blobHash},
		testutils.TreeEntrySpec{Mode: "40000", Name: "internal", HexHash: testutils.RandomHash()},
	)
	treeHash := testutils.StoreObject(t, objectsRoot, "tree", payload)

	obj, entries, err := store.LoadTree(treeHash, false)
	require.NoError(t, err)

	assert.Equal(t, KindTree, obj.Kind())
	require.Len(t, entries, 2)
	assert.Equal(t, "main.go", entries[0].Name())
	assert.Equal(t, blobHash, entries[0].Hash())
	assert.True(t, entries[1].IsDirectory())
}

func TestObjectStore_LoadTree_NotATree(t *testing.T) {
	store, objectsRoot := newTestStore(t)

	hash := testutils.StoreObject(t, objectsRoot, "blob", []byte("plain content"))

	_, _, err := store.LoadTree(hash, false)
	assert.ErrorIs(t, err, ErrNotTree)
}

func TestObjectStore_LoadTree_StrictTruncation(t *testing.T) {
	store, objectsRoot := newTestStore(t)

	payload := testutils.BuildTreePayload(t,
		testutils.TreeEntrySpec{Mode: "100644", Name: "kept.txt", HexHash: testutils.RandomHash()},
	)
	damaged := append(payload, 'x')
	treeHash := testutils.StoreObject(t, objectsRoot, "tree", damaged)

	// Lenient load succeeds with the intact entry.
	_, entries, err := store.LoadTree(treeHash, false)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Strict load surfaces the damage but still reports what parsed.
	_, entries, err = store.LoadTree(treeHash, true)
	var truncErr *TruncatedTreeError
	require.ErrorAs(t, err, &truncErr)
	assert.Len(t, entries, 1)
}

func TestObjectStore_Exists(t *testing.T) {
	store, objectsRoot := newTestStore(t)

	hash := testutils.RandomHash()
	assert.False(t, store.Exists(hash))
	assert.False(t, store.Exists("not-a-hash"))

	testutils.WriteRawObject(t, objectsRoot, hash, []byte("bytes"))
	assert.True(t, store.Exists(hash))
}
