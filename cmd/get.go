package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getBody bool

var getCmd = &cobra.Command{
	Use:   "get <file> <title> [title...]",
	Short: "Print a section and everything nested under it",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		section, err := resolveSection(doc, args[1:])
		if err != nil {
			return err
		}
		if getBody {
			fmt.Fprint(cmd.OutOrStdout(), section.Body())
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), section.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getBody, "body", false, "omit the section's own header line")
}
