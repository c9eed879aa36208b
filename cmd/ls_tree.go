package cmd

import (
	"errors"
	"fmt"

	"github.com/KostasZigo/gogitobj/internal/objects"
	"github.com/spf13/cobra"
)

var lsTreeCmd = &cobra.Command{
	Use:   "ls-tree [--name-only] <tree>",
	Short: "List the contents of a tree object",
	Long: `List the entries of a tree object in the order they are stored.

Each line has the form "<mode> <type> <hash>    <name>", where directories
are shown with mode 040000 and type tree. With --name-only only names are printed.`,
	SilenceUsage: true,
	Args:         exactArgs(1, "tree"),
	RunE:         runLsTree,
}

var nameOnlyFlag bool

func init() {
	rootCmd.AddCommand(lsTreeCmd)

	lsTreeCmd.Flags().BoolVar(&nameOnlyFlag, "name-only", false, "List only entry names")
}

func runLsTree(cmd *cobra.Command, args []string) error {
	store, err := openObjectStore()
	if err != nil {
		return err
	}

	hash := args[0]
	tree, err := store.ReadTree(hash)
	if errors.Is(err, objects.ErrUnexpectedType) {
		return fmt.Errorf("not a tree object: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to read tree %s: %w", hash, err)
	}

	out := cmd.OutOrStdout()
	for _, entry := range tree.Entries() {
		if nameOnlyFlag {
			fmt.Fprintln(out, entry.Name())
			continue
		}
		fmt.Fprintln(out, entry.Format())
	}
	return nil
}
