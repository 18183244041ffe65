package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/mdtree-cli/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "mdtree",
	Short: "mdtree: read and edit Markdown sections like nested keys",
	Long: `mdtree parses a Markdown document into a tree keyed by header titles.
Sections can be listed, read, replaced, removed and exported, and the document
is written back with header levels normalized to the tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.mdtree/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = defaultConfig()
	}
	cfg = c
	setupLogging()
}

func defaultConfig() *cfgpkg.Global {
	return &cfgpkg.Global{
		CreateDirs:       true,
		ExportFormat:     "json",
		RenderExtensions: []string{"gfm"},
		LogLevel:         "warn",
	}
}

// effectiveConfig returns the loaded config or the built-in defaults.
func effectiveConfig() *cfgpkg.Global {
	if cfg == nil {
		return defaultConfig()
	}
	return cfg
}

func setupLogging() {
	level := zerolog.WarnLevel
	if name := effectiveConfig().LogLevel; name != "" {
		if l, err := zerolog.ParseLevel(name); err == nil {
			level = l
		} else {
			fmt.Fprintf(os.Stderr, "⚠ Warning: unknown log_level %q, using warn\n", name)
		}
	}
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
}
