package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), true, false).
	BorderForeground(lipgloss.Color("214")).
	Padding(0, 2)

// UpdateBanner renders the "new version" notice printed after a check.
// With colors disabled the border is still drawn but unstyled.
func UpdateBanner(c *ColorConfig, current, latest, url string) string {
	body := fmt.Sprintf("Update available: %s → %s", current, c.Version(latest))
	if url != "" {
		body += "\n" + c.Description(url)
	}
	style := bannerStyle
	if !c.Enabled {
		style = style.UnsetBorderForeground()
	}
	return style.Render(body)
}
