package cmd

import (
	"github.com/spf13/cobra"
)

var (
	fmtWrite  bool
	fmtOutput string
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Re-serialize a document, normalizing skipped header levels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		out := fmtOutput
		switch {
		case out != "":
		case fmtWrite:
			out = args[0]
		default:
			out = stdoutPath
		}
		return saveDocument(cmd.OutOrStdout(), args[0], out, doc)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the input file in place")
	fmtCmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "write to this path")
}
