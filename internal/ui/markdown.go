package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// RenderMarkdown renders release notes for the terminal. Styled output uses
// glamour's dark theme; unstyled output uses the notty theme. Any renderer
// failure falls back to plain word wrapping.
func RenderMarkdown(input string, width int, styled bool) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	fallback := func(s string) string {
		return wordwrap.String(s, width)
	}

	style := "notty"
	if styled {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback(input)
	}
	out, err := renderer.Render(input)
	if err != nil {
		return fallback(input)
	}
	return strings.Trim(out, "\n")
}

// WrapText word-wraps plain text to width columns.
func WrapText(s string, width int) string {
	return wordwrap.String(s, width)
}

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
