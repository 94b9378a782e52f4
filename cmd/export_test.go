package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitprobe/testutils"
)

// createTestRootCmd creates fresh root command with the given subcommand.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	testRootCmd := &cobra.Command{Use: "gitprobe"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// captureStdout returns command stdout output as buffer.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as buffer.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
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

// setupRepoWithObjects creates a synthetic repository, moves the test
// into it, and returns its objects root.
func setupRepoWithObjects(t *testing.T) string {
	t.Helper()

	repoPath := testutils.SetupTestRepo(t)
	changeToRepoDir(t, repoPath)
	return testutils.ObjectsRoot(repoPath)
}

// resetCatFileFlags restores cat-file flag defaults; package-level flag
// variables keep their values between tests otherwise.
func resetCatFileFlags(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		typeOnlyFlag = false
		sizeOnlyFlag = false
		catFileCmd.Flags().VisitAll(func(f *pflag.Flag) {
			f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
}

// resetLsTreeFlags restores ls-tree flag defaults.
func resetLsTreeFlags(t *testing.T) {
	t.Helper()

	t.Cleanup(func() {
		strictFlag = false
	})
}
