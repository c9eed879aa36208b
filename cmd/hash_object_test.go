package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/KostasZigo/gogitobj/internal/constants"
	"github.com/KostasZigo/gogitobj/internal/objects"
	"github.com/KostasZigo/gogitobj/testutils"
	"github.com/KostasZigo/gogitobj/utils"
	"github.com/agiledragon/gomonkey/v2"
)

const helloBlobHash = "ce013625030ba8dba906f756967f9e9ca394464a"

func expectedBlobHash(t *testing.T, content []byte) string {
	t.Helper()

	id, err := objects.HashObject(utils.BlobObjectType, content)
	if err != nil {
		t.Fatalf("Failed to compute hash: %v", err)
	}
	return id.String()
}

// TestHashObjectCommand_Success_NoStorage verifies hash computation without storage.
func TestHashObjectCommand_Success_NoStorage(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	testFileName := "test.txt"
	testFileContent := []byte("hello world\nHave a nice day")
	testutils.CreateTestFile(t, repoPath, testFileName, testFileContent)

	// Execute hash-object command without -w flag
	stdout, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, testFileName)
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.HashObjectCmdName, err)
	}

	outputHash := strings.TrimSpace(stdout)
	expectedHash := expectedBlobHash(t, testFileContent)
	if expectedHash != outputHash {
		t.Fatalf("Expected hash %s, got %s", expectedHash, outputHash)
	}

	// Verify object was NOT created (no -w flag)
	testutils.AssertFileNotExists(t, testutils.ObjectPath(repoPath, outputHash))
}

// TestHashObjectCommand_KnownHash verifies the well-known id of "hello\n".
func TestHashObjectCommand_KnownHash(t *testing.T) {
	repoPath := t.TempDir()
	changeToRepoDir(t, repoPath)
	testutils.CreateTestFile(t, repoPath, "hello.txt", []byte("hello\n"))

	stdout, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, "hello.txt")
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.HashObjectCmdName, err)
	}

	if stdout != helloBlobHash+"\n" {
		t.Errorf("Expected output %q, got %q", helloBlobHash+"\n", stdout)
	}
}

// TestHashObjectCommand_Success_WithStorage verifies hash computation with storage.
func TestHashObjectCommand_Success_WithStorage(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)

	testFileName := "test.txt"
	testFileContent := []byte("hello world\nHave a nice day")
	testutils.CreateTestFile(t, repoPath, testFileName, testFileContent)

	changeToRepoDir(t, repoPath)

	stdout, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, testFileName, "-w")
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.HashObjectCmdName, err)
	}

	expectedHash := expectedBlobHash(t, testFileContent)
	outputHash := strings.TrimSpace(stdout)
	if expectedHash != outputHash {
		t.Fatalf("Expected hash %s, got %s", expectedHash, outputHash)
	}

	testutils.AssertFileExists(t, testutils.ObjectPath(repoPath, outputHash))

	// Verify object can be read back
	blob, err := openTestStore(repoPath).ReadBlob(expectedHash)
	if err != nil {
		t.Fatalf("Failed to read stored blob: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Errorf("Stored blob hash mismatch: expected %q, got %q", expectedHash, blob.Hash())
	}
	if !bytes.Equal(blob.Content(), testFileContent) {
		t.Errorf("Stored blob content mismatch: expected %q, got %q", testFileContent, blob.Content())
	}
}

// TestHashObjectCommand_Stdin verifies hashing of standard input.
func TestHashObjectCommand_Stdin(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	testRootCmd := createTestRootCmd(hashObjectCmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)
	testRootCmd.SetIn(strings.NewReader("hello\n"))
	testRootCmd.SetArgs([]string{constants.HashObjectCmdName, "--stdin", "-w"})

	if err := testRootCmd.Execute(); err != nil {
		t.Fatalf("%s --stdin failed: %v", constants.HashObjectCmdName, err)
	}

	if got := strings.TrimSpace(stdout.String()); got != helloBlobHash {
		t.Errorf("Expected hash %s, got %s", helloBlobHash, got)
	}
	testutils.AssertFileExists(t, testutils.ObjectPath(repoPath, helloBlobHash))
}

// TestHashObjectCommand_StdinWithPath verifies --stdin rejects a filepath.
func TestHashObjectCommand_StdinWithPath(t *testing.T) {
	_, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, "--stdin", "a.txt")

	assertErrorContains(t, err, fmt.Sprintf("%s command takes no filepath with --stdin, received 1", constants.HashObjectCmdName))
}

// TestHashObject_FileNotFound verifies error for non-existent file.
func TestHashObject_FileNotFound(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	dummyFileName := "dummy.txt"
	_, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, dummyFileName)

	assertErrorContains(t, err, fmt.Sprintf("failed to read file %s", dummyFileName))
}

// TestHashObjectCommand_NoArguments verifies error when no arguments provided.
func TestHashObjectCommand_NoArguments(t *testing.T) {
	_, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName)

	assertErrorContains(t, err, fmt.Sprintf("%s command requires exactly 1 argument (filepath), received 0", constants.HashObjectCmdName))
}

// TestHashObjectCommand_TooManyArguments verifies error when too many arguments provided.
func TestHashObjectCommand_TooManyArguments(t *testing.T) {
	_, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, "a.txt", "b.txt")

	assertErrorContains(t, err, fmt.Sprintf("%s command requires exactly 1 argument (filepath), received 2", constants.HashObjectCmdName))
}

// TestHashObjectCommand_FileNotInRepository verifies error when file outside repository.
func TestHashObjectCommand_FileNotInRepository(t *testing.T) {
	repoPath := t.TempDir()
	changeToRepoDir(t, repoPath)

	testFileName := "test.txt"
	testutils.CreateTestFile(t, repoPath, testFileName, []byte("Pikachu I choose you !"))

	// File not in repo error only appears if we are storing the blob
	_, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, testFileName, "-w")

	assertErrorContains(t, err, fmt.Sprintf("%s directory not found", constants.Gogit))
}

// TestHashObjectCommand_StoreFailure verifies error handling when storage fails.
func TestHashObjectCommand_StoreFailure(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	testFileName := "test.txt"
	testutils.CreateTestFile(t, repoPath, testFileName, []byte("Charmander user Ember !"))

	mockError := errors.New("failed to store blob to .gogit/objects")
	patches := gomonkey.ApplyMethod(&objects.ObjectStore{}, "Write",
		func(_ *objects.ObjectStore, _ utils.ObjectType, _ []byte) (objects.ObjectID, error) {
			return objects.ZeroID, mockError
		})
	defer patches.Reset()

	_, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, testFileName, "-w")

	assertErrorContains(t, err, "failed to store object: "+mockError.Error())
}

// TestHashObjectCommand_NewBlobFromFileFailure verifies error handling when blob creation fails.
func TestHashObjectCommand_NewBlobFromFileFailure(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	testFileName := "test.txt"
	testutils.CreateTestFile(t, repoPath, testFileName, []byte("Charmander user Ember !"))

	mockError := errors.New("failed to create new blob from file")
	patches := gomonkey.ApplyFunc(objects.NewBlobFromFile,
		func(_ string) (*objects.Blob, error) {
			return nil, mockError
		})
	defer patches.Reset()

	_, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, testFileName, "-w")

	assertErrorContains(t, err, mockError.Error())
}

// TestHashObjectCommand_MultipleFiles_SameContent verifies content-addressable storage.
func TestHashObjectCommand_MultipleFiles_SameContent(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	content := []byte("identical content\n")
	testutils.CreateTestFile(t, repoPath, "file1.txt", content)
	testutils.CreateTestFile(t, repoPath, "file2.txt", content)

	stdout1, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, "-w", "file1.txt")
	if err != nil {
		t.Fatalf("Failed to hash file1: %v", err)
	}
	stdout2, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, "-w", "file2.txt")
	if err != nil {
		t.Fatalf("Failed to hash file2: %v", err)
	}

	hash1 := strings.TrimSpace(stdout1)
	hash2 := strings.TrimSpace(stdout2)
	if hash1 != hash2 {
		t.Errorf("Identical content should produce same hash: %s != %s", hash1, hash2)
	}

	testutils.AssertFileExists(t, testutils.ObjectPath(repoPath, hash1))
}

// TestHashObjectCommand_EmptyFile verifies hash computation for empty file.
func TestHashObjectCommand_EmptyFile(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	testutils.CreateTestFile(t, repoPath, "empty.txt", []byte{})

	stdout, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, "-w", "empty.txt")
	if err != nil {
		t.Fatalf("%s should succeed for empty file: %v", constants.HashObjectCmdName, err)
	}

	const emptyBlobHash = "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"
	if outputHash := strings.TrimSpace(stdout); outputHash != emptyBlobHash {
		t.Errorf("Expected empty file hash %s, got %s", emptyBlobHash, outputHash)
	}
}

// TestHashObjectCommand_LargeFile verifies hash computation for large file.
func TestHashObjectCommand_LargeFile(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	largeContent := bytes.Repeat([]byte("A"), 1024*1024) // 1MB of 'A's
	testutils.CreateTestFile(t, repoPath, "large.bin", largeContent)

	stdout, err := executeCmd(t, hashObjectCmd, constants.HashObjectCmdName, "-w", "large.bin")
	if err != nil {
		t.Fatalf("%s should succeed for large file: %v", constants.HashObjectCmdName, err)
	}

	outputHash := strings.TrimSpace(stdout)
	if len(outputHash) != constants.HashStringLength {
		t.Errorf("Expected 40-char hash, got: %s", outputHash)
	}
	if expectedHash := expectedBlobHash(t, largeContent); expectedHash != outputHash {
		t.Fatalf("Expected hash %s, got %s", expectedHash, outputHash)
	}

	// The stored object must decompress past the initial size hint
	blob, err := openTestStore(repoPath).ReadBlob(outputHash)
	if err != nil {
		t.Fatalf("Failed to read large blob back: %v", err)
	}
	if !bytes.Equal(blob.Content(), largeContent) {
		t.Error("Large blob content mismatch")
	}
}
