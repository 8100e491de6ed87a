package ui

import (
	"os"
	"strings"
)

// ANSI codes for terminal output
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Underline = "\033[4m"

	Cyan = "\033[36m"

	BrightBlack  = "\033[90m"
	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightCyan   = "\033[96m"
)

// Theme defines the color scheme for different UI elements
type Theme struct {
	Success string
	Warning string
	Error   string
	Info    string

	Header      string
	SubHeader   string
	Label       string
	Value       string
	Description string
	Separator   string
	Version     string
}

// DefaultTheme returns the default color theme
func DefaultTheme() *Theme {
	return &Theme{
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
		Info:    BrightCyan,

		Header:      Bold + BrightCyan,
		SubHeader:   Bold + Cyan,
		Label:       Bold,
		Value:       "",
		Description: BrightBlack,
		Separator:   BrightBlack,
		Version:     Bold + BrightGreen,
	}
}

// ColorConfig manages color output settings
type ColorConfig struct {
	Enabled      bool
	EmojiEnabled bool
	Theme        *Theme
}

// NewColorConfig creates a color configuration honoring NO_COLOR and dumb terminals.
func NewColorConfig() *ColorConfig {
	noColor := os.Getenv("NO_COLOR") != ""
	term := os.Getenv("TERM")

	return &ColorConfig{
		Enabled:      !noColor && term != "dumb" && term != "",
		EmojiEnabled: true,
		Theme:        DefaultTheme(),
	}
}

// Apply applies a color to text if colors are enabled
func (c *ColorConfig) Apply(color, text string) string {
	if !c.Enabled || color == "" {
		return text
	}
	return color + text + Reset
}

func (c *ColorConfig) Success(text string) string { return c.Apply(c.Theme.Success, text) }

func (c *ColorConfig) Warning(text string) string { return c.Apply(c.Theme.Warning, text) }

func (c *ColorConfig) Error(text string) string { return c.Apply(c.Theme.Error, text) }

func (c *ColorConfig) Info(text string) string { return c.Apply(c.Theme.Info, text) }

func (c *ColorConfig) Header(text string) string { return c.Apply(c.Theme.Header, text) }

func (c *ColorConfig) SubHeader(text string) string { return c.Apply(c.Theme.SubHeader, text) }

func (c *ColorConfig) Label(text string) string { return c.Apply(c.Theme.Label, text) }

func (c *ColorConfig) Value(text string) string { return c.Apply(c.Theme.Value, text) }

func (c *ColorConfig) Description(text string) string { return c.Apply(c.Theme.Description, text) }

// Version highlights a version string.
func (c *ColorConfig) Version(text string) string { return c.Apply(c.Theme.Version, text) }

// Separator returns a colored separator line
func (c *ColorConfig) Separator(width int) string {
	return c.Apply(c.Theme.Separator, strings.Repeat("─", width))
}

// StatusIcon returns a colored status icon (respects emoji settings)
func (c *ColorConfig) StatusIcon(status string) string {
	if !c.EmojiEnabled {
		switch strings.ToLower(status) {
		case "success", "up_to_date":
			return c.Success("[OK]")
		case "warning", "update_available":
			return c.Warning("[NEW]")
		case "error", "invalid":
			return c.Error("[ERR]")
		default:
			return c.Info("[INFO]")
		}
	}

	switch strings.ToLower(status) {
	case "success", "up_to_date":
		return c.Success("✓")
	case "warning", "update_available":
		return c.Warning("↑")
	case "error", "invalid":
		return c.Error("✗")
	default:
		return c.Info("ℹ")
	}
}
