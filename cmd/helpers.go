package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KaramelBytes/mdtree-cli/internal/markdown"
	"github.com/KaramelBytes/mdtree-cli/internal/mdfile"
	"github.com/rs/zerolog/log"
)

// ErrSectionNotFound indicates a title path that does not resolve.
var ErrSectionNotFound = errors.New("section not found")

// stdoutPath as an output path prints instead of writing a file.
const stdoutPath = "-"

func loadDocument(path string) (*markdown.Document, error) {
	if !mdfile.CanParse(path) {
		log.Warn().Str("path", path).Msg("file does not have a Markdown extension")
	}
	doc, err := mdfile.Read(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("sections", countSections(doc)).Msg("parsed document")
	return doc, nil
}

// resolveSection digs through titles and names the first missing step.
func resolveSection(doc *markdown.Document, titles []string) (*markdown.Document, error) {
	cur := doc
	for i, t := range titles {
		next := cur.Get(t)
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, formatPath(titles[:i+1]))
		}
		cur = next
	}
	return cur, nil
}

// saveDocument writes doc to out, or back to src when out is empty.
func saveDocument(w io.Writer, src, out string, doc *markdown.Document) error {
	if out == stdoutPath {
		_, err := io.WriteString(w, doc.String())
		return err
	}
	if out == "" {
		out = src
	}
	if err := mdfile.Write(out, doc, mdfile.WriteOptions{CreateDirs: effectiveConfig().CreateDirs}); err != nil {
		return err
	}
	log.Debug().Str("path", out).Msg("wrote document")
	return nil
}

// readContent picks the replacement text from --content, --from or stdin.
func readContent(stdin io.Reader, content, from string, contentSet bool) (string, error) {
	switch {
	case contentSet:
		return content, nil
	case from != "":
		b, err := os.ReadFile(from)
		if err != nil {
			return "", fmt.Errorf("read content file: %w", err)
		}
		return string(b), nil
	default:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
}

func formatPath(titles []string) string {
	return strings.Join(titles, " > ")
}

func countSections(doc *markdown.Document) int {
	n := 0
	doc.Walk(func(d *markdown.Document) bool {
		if !d.IsRoot() {
			n++
		}
		return true
	})
	return n
}
