package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/mdtree-cli/internal/export"
	"github.com/KaramelBytes/mdtree-cli/internal/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	renderExts   []string
	renderUnsafe bool
	renderIDs    bool
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render <file> [title...]",
	Short: "Render a document or section to HTML",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		opts := export.RenderOptions{
			Extensions: c.RenderExtensions,
			Unsafe:     c.RenderUnsafe,
			HeadingIDs: renderIDs,
		}
		if cmd.Flags().Changed("ext") {
			opts.Extensions = renderExts
		}
		if cmd.Flags().Changed("unsafe") {
			opts.Unsafe = renderUnsafe
		}
		for _, e := range opts.Extensions {
			if !export.KnownExtension(e) {
				log.Warn().Str("extension", e).Msg("ignoring unknown render extension")
			}
		}

		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		section, err := resolveSection(doc, args[1:])
		if err != nil {
			return err
		}
		html, err := export.RenderHTML(section, opts)
		if err != nil {
			return err
		}
		if renderOutput == "" || renderOutput == stdoutPath {
			_, err = cmd.OutOrStdout().Write(html)
			return err
		}
		if c.CreateDirs {
			if err := utils.EnsureDir(filepath.Dir(renderOutput)); err != nil {
				return fmt.Errorf("ensure dir: %w", err)
			}
		}
		return utils.SafeWriteFile(renderOutput, html)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringSliceVar(&renderExts, "ext", nil, "goldmark extensions (gfm, table, strikethrough, linkify, tasklist, definition, footnote)")
	renderCmd.Flags().BoolVar(&renderUnsafe, "unsafe", false, "pass raw HTML through")
	renderCmd.Flags().BoolVar(&renderIDs, "ids", false, "add id attributes to headings")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write HTML to this path")
}
