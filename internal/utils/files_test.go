package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/mdtree-cli/internal/utils"
)

func TestSafeWriteFileReplacesAndKeepsMode(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(p, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := utils.SafeWriteFile(p, []byte("new")); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "new" {
		t.Fatalf("got %q, want %q", b, "new")
	}
	info, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode: got %v, want 0600", info.Mode().Perm())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp file left behind: %d entries", len(entries))
	}
}

func TestSafeWriteFileMissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope", "doc.md")
	if err := utils.SafeWriteFile(p, []byte("x")); err == nil {
		t.Fatalf("expected error writing into a missing directory")
	}
}

func TestEnsureDirAndPrettyJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := utils.EnsureDir(dir); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory %s", dir)
	}
	b, err := utils.PrettyJSON(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "{\n  \"a\": 1\n}" {
		t.Errorf("got %q", b)
	}
}
