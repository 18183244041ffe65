package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	setContent string
	setFrom    string
	setOutput  string
)

var setCmd = &cobra.Command{
	Use:   "set <file> <title> [title...]",
	Short: "Replace a section's content, creating the section if needed",
	Long: `Replace the content of the last title in the path. Headers in the new
content are nested under that section. Content comes from --content, --from or
stdin. Every title but the last must already exist.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, titles := args[0], args[1:]
		content, err := readContent(cmd.InOrStdin(), setContent, setFrom, cmd.Flags().Changed("content"))
		if err != nil {
			return err
		}
		doc, err := loadDocument(file)
		if err != nil {
			return err
		}
		parent, err := resolveSection(doc, titles[:len(titles)-1])
		if err != nil {
			return err
		}
		if err := parent.Set(titles[len(titles)-1], content); err != nil {
			return fmt.Errorf("set %s: %w", formatPath(titles), err)
		}
		if err := saveDocument(cmd.OutOrStdout(), file, setOutput, doc); err != nil {
			return err
		}
		if setOutput != stdoutPath {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Section updated: %s\n", formatPath(titles))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().StringVar(&setContent, "content", "", "new section content")
	setCmd.Flags().StringVar(&setFrom, "from", "", "read new section content from a file")
	setCmd.Flags().StringVarP(&setOutput, "output", "o", "", "write to this path instead of the input file (- for stdout)")
	setCmd.MarkFlagsMutuallyExclusive("content", "from")
}
