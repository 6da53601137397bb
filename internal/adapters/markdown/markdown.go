// Package markdown renders announcement Markdown to HTML.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// renderer is configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var renderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Render converts md to an HTML fragment.
// POST: raw HTML in md is never passed through
func Render(md string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderOrEscape is Render that falls back to the escaped source on error.
func RenderOrEscape(md string) string {
	html, err := Render(md)
	if err != nil {
		return template.HTMLEscapeString(md)
	}
	return html
}
