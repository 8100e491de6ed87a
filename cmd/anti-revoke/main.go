package main

import "github.com/antirevoke/anti-revoke/internal/ui"

func main() {
	// Must run before any lipgloss or bubbletea code touches the terminal.
	ui.InitTerminal()

	Execute()
}
