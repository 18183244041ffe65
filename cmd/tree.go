package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/mdtree-cli/internal/markdown"
	"github.com/KaramelBytes/mdtree-cli/internal/utils"
	"github.com/spf13/cobra"
)

var treeTokens bool

var treeCmd = &cobra.Command{
	Use:   "tree <file> [title...]",
	Short: "Print the section outline",
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
		showTokens := effectiveConfig().ShowTokens
		if cmd.Flags().Changed("tokens") {
			showTokens = treeTokens
		}
		out := cmd.OutOrStdout()
		if len(section.Keys()) == 0 {
			fmt.Fprintln(out, "(no sections)")
			return nil
		}
		base := section.Level()
		section.Walk(func(n *markdown.Document) bool {
			if n == section {
				return true
			}
			indent := strings.Repeat("  ", n.Level()-base-1)
			if showTokens {
				fmt.Fprintf(out, "%s- %s (h%d, ~%d tokens)\n", indent, n.Title(), n.Level(), utils.CountTokens(n.String()))
			} else {
				fmt.Fprintf(out, "%s- %s (h%d)\n", indent, n.Title(), n.Level())
			}
			return true
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVar(&treeTokens, "tokens", false, "show estimated token counts per section")
}
