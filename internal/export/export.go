package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/mdtree-cli/internal/markdown"
	"github.com/KaramelBytes/mdtree-cli/internal/utils"
)

// Format names a structured export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat indicates an unknown export format name.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat resolves a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s (use json or yaml)", ErrUnsupportedFormat, name)
	}
}

// Node is the structured form of a section tree.
type Node struct {
	Title    string `json:"title,omitempty" yaml:"title,omitempty"`
	Level    int    `json:"level" yaml:"level"`
	Content  string `json:"content" yaml:"content"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree converts doc and its descendants into Nodes.
func Tree(doc *markdown.Document) Node {
	n := Node{
		Title:   doc.Title(),
		Level:   doc.Level(),
		Content: doc.Content(),
	}
	for _, c := range doc.Children() {
		n.Children = append(n.Children, Tree(c))
	}
	return n
}

// Encode writes the structured tree of doc to w.
func Encode(w io.Writer, doc *markdown.Document, format Format) error {
	tree := Tree(doc)
	switch format {
	case FormatJSON:
		b, err := utils.PrettyJSON(tree)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return fmt.Errorf("write json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
