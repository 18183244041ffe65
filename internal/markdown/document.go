// Package markdown parses Markdown into a tree of sections keyed by header
// title and writes the tree back out as text.
//
// A Document is not safe for concurrent mutation; callers sharing a tree
// across goroutines must serialize access themselves.
package markdown

import (
	"fmt"
	"iter"
	"strings"
)

// Document is a node in the section tree. The root has an empty title and
// level 0; every other node corresponds to one ATX header.
type Document struct {
	title    string
	content  string
	children []*Document
	// parent is a back-reference only; ownership runs parent -> children.
	parent *Document
}

// Parse builds a section tree from Markdown text.
func Parse(text string) (*Document, error) {
	return build(text, nil)
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(text string) *Document {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// build parses text as a standalone document. The returned root hangs off
// anchor without being one of its children, so its sections are depth-checked
// at the level they will occupy once grafted below anchor.
func build(text string, anchor *Document) (*Document, error) {
	root := &Document{parent: anchor}
	if err := root.parse(text, Scan(text), 0, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// parse fills d from text[start:]. sections are the headers that follow start,
// in document order. headerLevel is the ATX level d was written at (0 for a
// root): any header at or above it ends d, because it opens a sibling or an
// ancestor.
func (d *Document) parse(text string, sections []Section, start, headerLevel int) error {
	if len(sections) == 0 {
		d.content = text[start:]
		return nil
	}
	d.content = text[start:sections[0].HeaderStart]

	lastChildLevel := lowestChildPrecedence
	for i, s := range sections {
		if s.Level <= headerLevel {
			break
		}
		if s.Level > lastChildLevel {
			// descendant of the previous child, captured by its own parse
			continue
		}
		child := &Document{title: s.Title, parent: d}
		d.children = append(d.children, child)
		if lvl := child.Level(); lvl > MaxLevel {
			return &DepthError{Title: s.Title, Level: lvl}
		}
		if err := child.parse(text, sections[i+1:], s.ContentStart, s.Level); err != nil {
			return err
		}
		lastChildLevel = s.Level
	}
	return nil
}

// Title returns the section title; empty for the root.
func (d *Document) Title() string { return d.title }

// Content returns the text owned directly by this node: everything between
// its header line and its first child header.
func (d *Document) Content() string { return d.content }

// Parent returns the enclosing node, or nil for the root.
func (d *Document) Parent() *Document { return d.parent }

// IsRoot reports whether d has no parent.
func (d *Document) IsRoot() bool { return d.parent == nil }

// Level is 0 for the root and one more than the parent otherwise. It is always
// derived from the parent chain, so re-parenting a subtree re-levels it.
func (d *Document) Level() int {
	if d.parent == nil {
		return 0
	}
	return d.parent.Level() + 1
}

// Children returns a copy of the direct children in order.
func (d *Document) Children() []*Document {
	out := make([]*Document, len(d.children))
	copy(out, d.children)
	return out
}

// Keys returns the titles of the direct children in order. Titles may repeat.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.children))
	for _, c := range d.children {
		keys = append(keys, c.title)
	}
	return keys
}

// All iterates over direct children as (title, child) pairs in order.
func (d *Document) All() iter.Seq2[string, *Document] {
	return func(yield func(string, *Document) bool) {
		for _, c := range d.children {
			if !yield(c.title, c) {
				return
			}
		}
	}
}

// Walk visits d and its descendants depth-first in document order. Returning
// false from fn skips the node's subtree.
func (d *Document) Walk(fn func(*Document) bool) {
	if !fn(d) {
		return
	}
	for _, c := range d.children {
		c.Walk(fn)
	}
}

// Get returns the first direct child titled title, or nil. A trailing carriage
// return on a stored title is ignored, so CRLF documents match plain titles.
func (d *Document) Get(title string) *Document {
	for _, c := range d.children {
		if titleMatches(c.title, title) {
			return c
		}
	}
	return nil
}

// Dig follows titles one Get at a time and returns nil as soon as a step is
// missing.
func (d *Document) Dig(title string, more ...string) *Document {
	cur := d.Get(title)
	for _, t := range more {
		if cur == nil {
			return nil
		}
		cur = cur.Get(t)
	}
	return cur
}

// Set replaces the content of the first direct child titled title, or appends
// a new child with that title and content when none exists.
func (d *Document) Set(title, content string) error {
	if child := d.Get(title); child != nil {
		return child.SetContent(content)
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	child := &Document{title: title, parent: d}
	if lvl := child.Level(); lvl > MaxLevel {
		return &DepthError{Title: title, Level: lvl}
	}
	if err := child.SetContent(content); err != nil {
		return err
	}
	d.children = append(d.children, child)
	return nil
}

// SetContent parses text as a standalone document and grafts its result under
// d, replacing d's own content and children. Headers in text are re-leveled
// relative to d. If any grafted section would exceed MaxLevel, d is left
// unchanged.
func (d *Document) SetContent(text string) error {
	fresh, err := build(text, d.parent)
	if err != nil {
		return err
	}
	for _, c := range fresh.children {
		c.parent = d
	}
	d.children = fresh.children
	d.content = fresh.content
	return nil
}

// SetTitle renames d. The root cannot be titled.
func (d *Document) SetTitle(title string) error {
	if d.IsRoot() {
		return fmt.Errorf("%w: root has no title", ErrInvalidTitle)
	}
	if err := validateTitle(title); err != nil {
		return err
	}
	d.title = title
	return nil
}

// Delete removes the first direct child titled title and reports whether one
// was found.
func (d *Document) Delete(title string) bool {
	for i, c := range d.children {
		if titleMatches(c.title, title) {
			d.children = append(d.children[:i], d.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// String serializes d, including its own header line.
func (d *Document) String() string {
	return d.Serialize(true)
}

// Body serializes d without its own header line.
func (d *Document) Body() string {
	return d.Serialize(false)
}

// Serialize writes the header line (unless d is the root or includeTitle is
// false), the own content and every child in order. A newline is appended
// when the text does not already end with one.
func (d *Document) Serialize(includeTitle bool) string {
	var sb strings.Builder
	d.write(&sb, includeTitle)
	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Document) write(sb *strings.Builder, includeTitle bool) {
	if includeTitle && !d.IsRoot() {
		// a header must start its own line even after unterminated content
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("#", d.Level()))
		sb.WriteByte(' ')
		sb.WriteString(d.title)
		sb.WriteByte('\n')
	}
	sb.WriteString(d.content)
	for _, c := range d.children {
		c.write(sb, true)
	}
}

// Equal reports whether d and other serialize to the same text.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.String() == other.String()
}

func titleMatches(stored, title string) bool {
	return stored == title || strings.TrimSuffix(stored, "\r") == title
}

func validateTitle(title string) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: empty", ErrInvalidTitle)
	case strings.ContainsAny(title, "\r\n"):
		return fmt.Errorf("%w: %q spans multiple lines", ErrInvalidTitle, title)
	case strings.TrimLeft(title, " \t") != title:
		return fmt.Errorf("%w: %q starts with whitespace", ErrInvalidTitle, title)
	}
	return nil
}
