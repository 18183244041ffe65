package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/mdtree-cli/internal/config"
	"github.com/KaramelBytes/mdtree-cli/internal/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set mdtree configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "create_dirs: %t\n", c.CreateDirs)
		fmt.Fprintf(out, "export_format: %s\n", c.ExportFormat)
		fmt.Fprintf(out, "render_extensions: %s\n", strings.Join(c.RenderExtensions, ","))
		fmt.Fprintf(out, "render_unsafe: %t\n", c.RenderUnsafe)
		fmt.Fprintf(out, "show_tokens: %t\n", c.ShowTokens)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "create_dirs", "render_unsafe", "show_tokens":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %v", key, val)
			}
			switch key {
			case "create_dirs":
				cfg.CreateDirs = b
			case "render_unsafe":
				cfg.RenderUnsafe = b
			default:
				cfg.ShowTokens = b
			}
		case "export_format":
			f, err := export.ParseFormat(val)
			if err != nil {
				return err
			}
			cfg.ExportFormat = string(f)
		case "render_extensions":
			var exts []string
			for _, e := range strings.Split(val, ",") {
				e = strings.ToLower(strings.TrimSpace(e))
				if e == "" {
					continue
				}
				if !export.KnownExtension(e) {
					return fmt.Errorf("unknown render extension: %s", e)
				}
				exts = append(exts, e)
			}
			cfg.RenderExtensions = exts
		case "log_level":
			if _, err := zerolog.ParseLevel(val); err != nil {
				return fmt.Errorf("invalid log_level: %s", val)
			}
			cfg.LogLevel = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
