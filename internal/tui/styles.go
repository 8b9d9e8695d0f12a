package tui

import "github.com/charmbracelet/lipgloss"

// Colors shared by non-interactive renderers. The confirm component keeps
// its own copies since it sits below this package.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorMuted   = lipgloss.Color("240") // Dark gray
)
