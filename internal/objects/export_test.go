package objects

import (
	"bytes"
	"errors"
	"testing"

	"github.com/KostasZigo/gogitobj/testutils"
	"github.com/KostasZigo/gogitobj/utils"
)

// Well known identifiers shared with any SHA-1 based object database.
const (
	helloBlobHash = "ce013625030ba8dba906f756967f9e9ca394464a" // "hello\n"
	emptyBlobHash = "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
	emptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"
)

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedID, err := HashObject(utils.BlobObjectType, content)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.ID() != expectedID {
		t.Fatalf("Expected hash [%s], got [%s]", expectedID, blob.ID())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if !bytes.Equal(blob.Content(), expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// assertErrorIs verifies err wraps target.
func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected error wrapping [%v], got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("Expected error wrapping [%v], got [%v]", target, err)
	}
}

// filledID returns an id with every byte set to b.
func filledID(b byte) ObjectID {
	var id ObjectID
	for i := range id {
		id[i] = b
	}
	return id
}

// mustParseID parses a hex id and fails test on error.
func mustParseID(t *testing.T, hash string) ObjectID {
	t.Helper()

	id, err := ParseObjectID(hash)
	if err != nil {
		t.Fatalf("Failed to parse id %s: %v", hash, err)
	}
	return id
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, mode FileMode, name string, id ObjectID) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(mode, name, id)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// setupStore creates a repository with .gogit/objects and a store rooted at .gogit.
func setupStore(t *testing.T, opts ...StoreOption) (*ObjectStore, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	return NewObjectStore(testutils.GogitDir(repoPath), opts...), repoPath
}

// writeOrFail stores payload and fails test on error.
func writeOrFail(t *testing.T, store *ObjectStore, objectType utils.ObjectType, payload []byte) ObjectID {
	t.Helper()

	id, err := store.Write(objectType, payload)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", objectType, err)
	}
	return id
}
