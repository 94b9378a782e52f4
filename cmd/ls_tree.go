package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitprobe/utils"
)

var lsTreeCmd = &cobra.Command{
	Use:   "ls-tree <hash>",
	Short: "List the entries of a tree object",
	Long: `List the entries of the tree object addressed by a 40-character content
hash, one entry per line in "<mode> <type> <hash>\t<name>" form.

By default a damaged trailing entry is dropped silently and the remaining
entries are listed; with --strict the damage is reported as an error instead.

Examples:
  # List a tree, tolerating a damaged tail
  gitprobe ls-tree 4b825dc642cb6eb9a060e54bf8d69288fbee4904

  # Fail on any malformed trailing data
  gitprobe ls-tree --strict 4b825dc642cb6eb9a060e54bf8d69288fbee4904`,
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runLsTree,
}

var strictFlag bool

func init() {
	rootCmd.AddCommand(lsTreeCmd)

	lsTreeCmd.Flags().BoolVar(&strictFlag, "strict", false, "Report malformed trailing data as an error")
}

// runLsTree lists one tree object in git's line-oriented format.
func runLsTree(cmd *cobra.Command, args []string) error {
	hash := args[0]
	if !utils.IsValidHash(hash) {
		return fmt.Errorf("invalid object hash %q: expected 40 lowercase hex characters", hash)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	_, entries, err := store.LoadTree(hash, strictFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := range entries {
		entry := &entries[i]
		fmt.Fprintf(out, "%s %s %s\t%s\n",
			entry.Mode(),
			entry.Kind().ObjectKind(),
			entry.Hash(),
			entry.Name())
	}

	return nil
}
