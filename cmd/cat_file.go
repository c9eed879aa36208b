package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogitobj/internal/objects"
	"github.com/KostasZigo/gogitobj/utils"
	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file (-p | -t | -s | -e) <object>",
	Short: "Show content, type or size of a stored object",
	Long: `Read an object from .gogit/objects and print one of its properties.

  -p  pretty-print: raw content for blobs, one line per entry for trees
  -t  object type (blob or tree)
  -s  payload size in bytes
  -e  exit with zero status if the object exists and is readable, print nothing`,
	SilenceUsage: true,
	Args:         exactArgs(1, "object"),
	RunE:         runCatFile,
}

var (
	prettyFlag bool
	typeFlag   bool
	sizeFlag   bool
	existsFlag bool
)

func init() {
	rootCmd.AddCommand(catFileCmd)

	flags := catFileCmd.Flags()
	flags.BoolVarP(&prettyFlag, "pretty", "p", false, "Pretty-print the object content")
	flags.BoolVarP(&typeFlag, "type", "t", false, "Show the object type")
	flags.BoolVarP(&sizeFlag, "size", "s", false, "Show the object size")
	flags.BoolVarP(&existsFlag, "exists", "e", false, "Only check that the object exists and is valid")

	catFileCmd.MarkFlagsMutuallyExclusive("pretty", "type", "size", "exists")
	catFileCmd.MarkFlagsOneRequired("pretty", "type", "size", "exists")
}

// runCatFile reads the object once and prints the property selected by flag.
func runCatFile(cmd *cobra.Command, args []string) error {
	store, err := openObjectStore()
	if err != nil {
		return err
	}

	hash := args[0]
	objectType, payload, err := store.Read(hash)
	if err != nil {
		return fmt.Errorf("failed to read object %s: %w", hash, err)
	}

	out := cmd.OutOrStdout()
	switch {
	case existsFlag:
		return nil
	case typeFlag:
		fmt.Fprintln(out, objectType)
	case sizeFlag:
		fmt.Fprintln(out, len(payload))
	case prettyFlag:
		return prettyPrint(cmd, objectType, payload)
	}
	return nil
}

func prettyPrint(cmd *cobra.Command, objectType utils.ObjectType, payload []byte) error {
	out := cmd.OutOrStdout()

	switch objectType {
	case utils.BlobObjectType:
		_, err := out.Write(payload)
		return err
	case utils.TreeObjectType:
		entries, err := objects.ParseEntries(payload)
		if err != nil {
			return fmt.Errorf("failed to parse tree: %w", err)
		}
		for _, entry := range entries {
			fmt.Fprintln(out, entry.Format())
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", objects.ErrUnknownObjectType, objectType)
	}
}
