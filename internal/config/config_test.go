package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/mdtree-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.CreateDirs || c.ExportFormat != "json" || c.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if len(c.RenderExtensions) != 1 || c.RenderExtensions[0] != "gfm" {
		t.Errorf("render extensions: got %q", c.RenderExtensions)
	}
}

func TestSaveThenLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "config.yaml")
	in := &config.Global{
		CreateDirs:       false,
		ExportFormat:     "yaml",
		RenderExtensions: []string{"table", "footnote"},
		ShowTokens:       true,
		LogLevel:         "debug",
	}
	if err := config.Save(in, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.CreateDirs || out.ExportFormat != "yaml" || !out.ShowTokens || out.LogLevel != "debug" {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if len(out.RenderExtensions) != 2 || out.RenderExtensions[1] != "footnote" {
		t.Errorf("render extensions: got %q", out.RenderExtensions)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MDTREE_EXPORT_FORMAT", "yaml")
	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.ExportFormat != "yaml" {
		t.Errorf("got %q, want yaml", c.ExportFormat)
	}
}

func TestLoadMalformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("create_dirs: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(p); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
