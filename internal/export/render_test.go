package export_test

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/mdtree-cli/internal/export"
	"github.com/KaramelBytes/mdtree-cli/internal/markdown"
)

func TestRenderHTMLSection(t *testing.T) {
	d := markdown.MustParse("# Guide\nIntro.\n## Install\nRun `make`.\n")
	out, err := export.RenderHTML(d.Dig("Guide", "Install"), export.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h2>Install</h2>") {
		t.Errorf("expected h2 heading, got %s", html)
	}
	if !strings.Contains(html, "<code>make</code>") {
		t.Errorf("expected inline code, got %s", html)
	}
	if strings.Contains(html, "Guide") {
		t.Errorf("only the selected section should render, got %s", html)
	}
}

func TestRenderHTMLOptions(t *testing.T) {
	d := markdown.MustParse("# Table\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n<div>raw</div>\n")

	out, err := export.RenderHTML(d, export.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<table>") {
		t.Errorf("expected gfm table, got %s", out)
	}
	if strings.Contains(string(out), "<div>raw</div>") {
		t.Errorf("raw html should be omitted by default, got %s", out)
	}

	out, err = export.RenderHTML(d, export.RenderOptions{Extensions: []string{"strikethrough"}, Unsafe: true, HeadingIDs: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<table>") {
		t.Errorf("table extension not requested, got %s", out)
	}
	if !strings.Contains(string(out), "<div>raw</div>") {
		t.Errorf("expected raw html with Unsafe, got %s", out)
	}
	if !strings.Contains(string(out), `<h1 id="table">`) {
		t.Errorf("expected heading id, got %s", out)
	}
}

func TestKnownExtension(t *testing.T) {
	if !export.KnownExtension(" GFM ") || export.KnownExtension("mermaid") {
		t.Errorf("unexpected extension lookup result")
	}
}
