package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmOutput string

var rmCmd = &cobra.Command{
	Use:   "rm <file> <title> [title...]",
	Short: "Remove a section and everything nested under it",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, titles := args[0], args[1:]
		doc, err := loadDocument(file)
		if err != nil {
			return err
		}
		parent, err := resolveSection(doc, titles[:len(titles)-1])
		if err != nil {
			return err
		}
		if !parent.Delete(titles[len(titles)-1]) {
			return fmt.Errorf("%w: %s", ErrSectionNotFound, formatPath(titles))
		}
		if err := saveDocument(cmd.OutOrStdout(), file, rmOutput, doc); err != nil {
			return err
		}
		if rmOutput != stdoutPath {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Section removed: %s\n", formatPath(titles))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().StringVarP(&rmOutput, "output", "o", "", "write to this path instead of the input file (- for stdout)")
}
