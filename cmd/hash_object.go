package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogitobj/internal/objects"
	"github.com/KostasZigo/gogitobj/utils"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object [-w] (--stdin | <filepath>)",
	Short: "Compute object hash and optionally create and store a blob from a file",
	Long: `Compute the object hash (SHA-1 hash) for a file's content.
Optionally write the resulting object's blob into the objects folder.

Examples:
  # Compute hash without storing
  gogit hash-object myfile.txt

  # Compute hash and store in .gogit/objects
  gogit hash-object -w myfile.txt

  # Hash standard input
  echo hello | gogit hash-object --stdin`,
	SilenceUsage: true,
	Args:         hashObjectArgs,
	RunE:         runHashObject,
}

var (
	writeFlag bool
	stdinFlag bool
)

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	// Add flag using Cobra's flag system
	hashObjectCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the object into the objects folder")
	hashObjectCmd.Flags().BoolVar(&stdinFlag, "stdin", false, "Read the object from standard input instead of a file")
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int, argName string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument (%s), received %d", cmd.Name(), n, argName, len(args))
		}
		return nil
	}
}

// hashObjectArgs takes no path with --stdin and exactly one otherwise.
func hashObjectArgs(cmd *cobra.Command, args []string) error {
	if stdinFlag {
		if len(args) != 0 {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command takes no filepath with --stdin, received %d", cmd.Name(), len(args))
		}
		return nil
	}
	return exactArgs(1, "filepath")(cmd, args)
}

// runHashObject computes hash and optionally stores blob object.
func runHashObject(cmd *cobra.Command, args []string) error {
	// Create blob from file's contents
	blob, err := readBlob(cmd, args)
	if err != nil {
		return err
	}

	if writeFlag {
		store, err := openObjectStore()
		if err != nil {
			return err
		}

		if _, err := store.Write(utils.BlobObjectType, blob.Content()); err != nil {
			return fmt.Errorf("failed to store object: %w", err)
		}
	}

	// Print hash to stdout
	fmt.Fprintln(cmd.OutOrStdout(), blob.Hash())
	return nil
}

func readBlob(cmd *cobra.Command, args []string) (*objects.Blob, error) {
	if stdinFlag {
		return objects.NewBlobFromReader(cmd.InOrStdin())
	}
	return objects.NewBlobFromFile(args[0])
}
