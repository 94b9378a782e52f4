package cmd

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"gitprobe/internal/objects"
	"gitprobe/utils"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file <hash>",
	Short: "Decode and display an object from the store",
	Long: `Decode the object addressed by a 40-character content hash and display it.
Blobs, commits and tags print their payload as text; trees print their entry
listing as a table.

Examples:
  # Show a decoded object with its header block
  gitprobe cat-file 8ab686eafeb1f44702738c8b0f24f2567c36da6d

  # Show only the object type
  gitprobe cat-file -t 8ab686eafeb1f44702738c8b0f24f2567c36da6d`,
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runCatFile,
}

var (
	typeOnlyFlag bool
	sizeOnlyFlag bool
)

func init() {
	rootCmd.AddCommand(catFileCmd)

	catFileCmd.Flags().BoolVarP(&typeOnlyFlag, "type", "t", false, "Print only the object type")
	catFileCmd.Flags().BoolVarP(&sizeOnlyFlag, "size", "s", false, "Print only the object size")
	catFileCmd.MarkFlagsMutuallyExclusive("type", "size")
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument (hash), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// runCatFile loads, decodes and renders a single object.
func runCatFile(cmd *cobra.Command, args []string) error {
	hash := args[0]
	if !utils.IsValidHash(hash) {
		return fmt.Errorf("invalid object hash %q: expected 40 lowercase hex characters", hash)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	obj, err := store.Load(hash)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch {
	case typeOnlyFlag:
		fmt.Fprintln(out, obj.Kind())
	case sizeOnlyFlag:
		fmt.Fprintln(out, obj.Size())
	default:
		renderObject(out, obj, hash)
	}

	return nil
}

// renderObject prints the header block followed by the typed payload.
func renderObject(out io.Writer, obj *objects.RawObject, hash string) {
	fmt.Fprintf(out, "Object Type: %s\n", obj.Kind())
	fmt.Fprintf(out, "Size:        %d\n", obj.Size())
	fmt.Fprintf(out, "Hash:        %s\n", hash)
	fmt.Fprintln(out)

	if !obj.IsTree() {
		out.Write(obj.Payload())
		return
	}

	// Trees are binary; render the parsed listing instead of raw bytes.
	// Lenient parse: a damaged tail should not hide the good entries.
	entries, _ := objects.ParseTree(obj.Payload(), false)
	renderTreeTable(out, entries)
}

// renderTreeTable prints tree entries as a column-aligned table.
func renderTreeTable(out io.Writer, entries []objects.TreeEntry) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Mode", "Type", "Hash", "Name"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for i := range entries {
		entry := &entries[i]
		table.Append([]string{
			entry.Mode(),
			entry.Kind().String(),
			entry.Hash(),
			entry.Name(),
		})
	}

	table.Render()
}
