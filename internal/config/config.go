package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// CreateDirs makes writes create missing parent directories.
	CreateDirs bool `mapstructure:"create_dirs" yaml:"create_dirs"`
	// ExportFormat is the default for `mdtree export` (json or yaml).
	ExportFormat string `mapstructure:"export_format" yaml:"export_format"`
	// Rendering (goldmark)
	RenderExtensions []string `mapstructure:"render_extensions" yaml:"render_extensions"`
	RenderUnsafe     bool     `mapstructure:"render_unsafe" yaml:"render_unsafe"`
	// Outline view
	ShowTokens bool `mapstructure:"show_tokens" yaml:"show_tokens"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultPath returns ~/.mdtree/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".mdtree", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.mdtree/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults; CLI flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("MDTREE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("create_dirs", true)
	v.SetDefault("export_format", "json")
	v.SetDefault("render_extensions", []string{"gfm"})
	v.SetDefault("render_unsafe", false)
	v.SetDefault("show_tokens", false)
	v.SetDefault("log_level", "warn")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(path))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		// a missing file is fine; a malformed one is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
