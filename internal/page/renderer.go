package page

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PageRenderer serializes a Page to bytes.
type PageRenderer interface {
	Render(p Page) ([]byte, error)
}

// RendererFor returns the renderer for a format name. Unknown names fall
// back to plain text.
func RendererFor(format string) PageRenderer {
	switch strings.ToLower(format) {
	case "json":
		return &JSONRenderer{}
	case "markdown", "md":
		return &MarkdownRenderer{}
	default:
		return &PlainRenderer{}
	}
}

// JSONRenderer renders a Page as indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(p Page) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// MarkdownRenderer renders a Page as Markdown with the snippet in a fenced
// code block tagged with its language.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(p Page) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s %s\n\n", p.Title, p.Icon)
	for _, c := range p.Captions {
		fmt.Fprintf(&sb, "_%s_\n\n", c)
	}

	fmt.Fprintf(&sb, "## %s\n\n", p.Tip.Title)
	fmt.Fprintf(&sb, "> ✅ %s\n\n", p.Tip.Advice)

	fmt.Fprintf(&sb, "```%s\n", p.Tip.Language)
	sb.WriteString(p.Tip.Snippet)
	if !strings.HasSuffix(p.Tip.Snippet, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\n")

	sb.WriteString("---\n\n")
	for _, f := range p.Footer {
		fmt.Fprintf(&sb, "_%s_\n\n", f)
	}
	return []byte(sb.String()), nil
}

// PlainRenderer renders a Page as terminal-friendly plain text.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(p Page) ([]byte, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", p.Title, p.Icon)
	for _, c := range p.Captions {
		sb.WriteString(c + "\n")
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s  (%d/%d)\n\n", p.Tip.Title, p.Index+1, p.Total)
	fmt.Fprintf(&sb, "  ✓ %s\n\n", p.Tip.Advice)
	sb.WriteString(indent(p.Tip.Snippet, "    "))
	sb.WriteString("\n\n")

	sb.WriteString(strings.Repeat("─", 40) + "\n")
	for _, f := range p.Footer {
		sb.WriteString(f + "\n")
	}
	return []byte(sb.String()), nil
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
