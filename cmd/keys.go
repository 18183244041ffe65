package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <file> [title...]",
	Short: "List the section titles directly under a path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		section, err := resolveSection(doc, args[1:])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		keys := section.Keys()
		if len(keys) == 0 {
			fmt.Fprintln(out, "(no sections)")
			return nil
		}
		for _, k := range keys {
			fmt.Fprintln(out, k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
