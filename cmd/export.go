package cmd

import (
	"github.com/KaramelBytes/mdtree-cli/internal/export"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <file> [title...]",
	Short: "Print the section tree as JSON or YAML",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := effectiveConfig().ExportFormat
		if cmd.Flags().Changed("format") {
			name = exportFormat
		}
		format, err := export.ParseFormat(name)
		if err != nil {
			return err
		}
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		section, err := resolveSection(doc, args[1:])
		if err != nil {
			return err
		}
		return export.Encode(cmd.OutOrStdout(), section, format)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format (json or yaml)")
}
