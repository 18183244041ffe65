package mdfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/mdtree-cli/internal/markdown"
	"github.com/KaramelBytes/mdtree-cli/internal/utils"
)

// ErrSourceNotFound indicates the path does not resolve to a readable file.
var ErrSourceNotFound = errors.New("markdown source not found")

// WriteOptions controls how Write persists a document.
type WriteOptions struct {
	// CreateDirs creates missing parent directories before writing.
	CreateDirs bool
}

// CanParse reports whether filename has a Markdown extension.
func CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}

// Read loads the file at path and parses it into a section tree.
func Read(path string) (*markdown.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("stat markdown: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	doc, err := markdown.Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Write serializes doc and atomically writes it to path.
func Write(path string, doc *markdown.Document, opts WriteOptions) error {
	if doc == nil {
		return errors.New("document is nil")
	}
	if opts.CreateDirs {
		if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
			return fmt.Errorf("ensure dir: %w", err)
		}
	}
	return utils.SafeWriteFile(path, []byte(doc.String()))
}
