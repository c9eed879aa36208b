package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/KostasZigo/gogitobj/internal/objects"
	"github.com/KostasZigo/gogitobj/testutils"
	"github.com/KostasZigo/gogitobj/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createTestRootCmd creates fresh root command with the given subcommand.
// Flags of the subcommand are reset because cobra keeps them in package variables.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	resetFlags(cmd)

	testRootCmd := &cobra.Command{Use: "gogit"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// resetFlags restores every flag of cmd to its default value.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	})
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// executeCmd runs cmd under a fresh root with args and returns its stdout.
func executeCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	testRootCmd := createTestRootCmd(cmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)
	testRootCmd.SetArgs(args)

	err := testRootCmd.Execute()
	return stdout.String(), err
}

// assertErrorContains verifies err is non-nil and mentions expected.
func assertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected error containing [%s], got nil", expected)
	}
	if !strings.Contains(err.Error(), expected) {
		t.Fatalf("Expected error message to contain [%s] but got error message [%s]", expected, err.Error())
	}
}

// changeToRepoDir changes working directory to repo path and registers cleanup.
func changeToRepoDir(t *testing.T, repoPath string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(repoPath); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", repoPath, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}

// openTestStore opens the object store of the repository at repoPath.
func openTestStore(repoPath string) *objects.ObjectStore {
	return objects.NewObjectStore(testutils.GogitDir(repoPath))
}

// storeObject writes payload into the repository at repoPath and returns its hash.
func storeObject(t *testing.T, repoPath string, objectType utils.ObjectType, payload []byte) string {
	t.Helper()

	id, err := openTestStore(repoPath).Write(objectType, payload)
	if err != nil {
		t.Fatalf("Failed to store %s: %v", objectType, err)
	}
	return id.String()
}

// filledID returns an id with every byte set to b.
func filledID(b byte) objects.ObjectID {
	var id objects.ObjectID
	for i := range id {
		id[i] = b
	}
	return id
}

// storeSampleTree stores a tree with a.txt (blob) and sub (tree) entries.
func storeSampleTree(t *testing.T, repoPath string) string {
	t.Helper()

	fileEntry, err := objects.NewTreeEntry(objects.ModeRegularFile, "a.txt", filledID(0x00))
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
	dirEntry, err := objects.NewTreeEntry(objects.ModeDirectory, "sub", filledID(0x01))
	if err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}

	payload := objects.SerializeEntries([]objects.TreeEntry{*fileEntry, *dirEntry})
	return storeObject(t, repoPath, utils.TreeObjectType, payload)
}
