package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormat reports whether f is a supported --output value.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

const markdownWidth = 76

// Printer centralizes output formatting for commands.
// - Respects --output (text|json|yaml)
// - Uses ColorConfig for styling when printing text
// - Honors --quiet for non-error lines
type Printer struct {
	format string
	out    io.Writer
	quiet  bool
	Colors *ColorConfig
}

func NewPrinter(format string) Printer {
	return Printer{format: format, out: os.Stdout, Colors: NewColorConfig()}
}

// WithWriter returns a copy of p writing to w.
func (p Printer) WithWriter(w io.Writer) Printer {
	p.out = w
	return p
}

// Format returns the configured output format.
func (p Printer) Format() string {
	if p.format == "" {
		return FormatText
	}
	return p.format
}

// Structured reports whether output is machine-readable.
func (p Printer) Structured() bool {
	f := p.Format()
	return f == FormatJSON || f == FormatYAML
}

func (p Printer) writer() io.Writer {
	if p.out == nil {
		return os.Stdout
	}
	return p.out
}

// Textf prints formatted text (always text path).
func (p Printer) Textf(format string, a ...any) { fmt.Fprintf(p.writer(), format, a...) }

// JSON pretty-prints a JSON value.
func (p Printer) JSON(v any) {
	enc := json.NewEncoder(p.writer())
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// YAML prints v as a YAML document.
func (p Printer) YAML(v any) {
	enc := yaml.NewEncoder(p.writer())
	enc.SetIndent(2)
	_ = enc.Encode(v)
	_ = enc.Close()
}

// Structure emits v in the configured machine-readable format.
func (p Printer) Structure(v any) {
	if p.Format() == FormatYAML {
		p.YAML(v)
		return
	}
	p.JSON(v)
}

// Success prints a success line with themed prefix.
func (p Printer) Success(msg string) {
	if p.quiet {
		return
	}
	c := p.Colors
	space := " "
	if len(msg) > 0 && (msg[0] == ' ' || msg[0] == '\t') {
		space = ""
	}
	if c.EmojiEnabled {
		fmt.Fprintf(p.writer(), "%s%s%s\n", c.Success("✓"), space, msg)
	} else {
		fmt.Fprintf(p.writer(), "%s%s%s\n", c.Success("[OK]"), space, msg)
	}
}

// Info prints an informational line.
func (p Printer) Info(msg string) {
	if p.quiet {
		return
	}
	c := p.Colors
	if c.EmojiEnabled {
		fmt.Fprintln(p.writer(), c.Info("ℹ"), msg)
	} else {
		fmt.Fprintln(p.writer(), c.Info("[INFO]"), msg)
	}
}

// Warn prints a warning line.
func (p Printer) Warn(msg string) {
	c := p.Colors
	if c.EmojiEnabled {
		fmt.Fprintln(p.writer(), c.Warning("!"), msg)
	} else {
		fmt.Fprintln(p.writer(), c.Warning("[WARN]"), msg)
	}
}

// KeyValueLine prints a key-value pair with proper formatting
func (p Printer) KeyValueLine(key, value, colorType string) {
	if p.quiet {
		return
	}
	var coloredValue string
	switch colorType {
	case "blue":
		coloredValue = p.Colors.Apply(p.Colors.Theme.Info, value)
	case "yellow":
		coloredValue = p.Colors.Apply(p.Colors.Theme.Warning, value)
	case "green":
		coloredValue = p.Colors.Apply(p.Colors.Theme.Success, value)
	case "dim":
		coloredValue = p.Colors.Apply(p.Colors.Theme.Description, value)
	default:
		coloredValue = p.Colors.Value(value)
	}
	fmt.Fprintf(p.writer(), "%s %s\n", p.Colors.Label(key+":"), coloredValue)
}

// Markdown prints release notes rendered for the terminal.
func (p Printer) Markdown(text string) {
	if p.quiet {
		return
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return
	}
	fmt.Fprintln(p.writer(), RenderMarkdown(text, markdownWidth, p.Colors.Enabled))
}
