package style

import "github.com/charmbracelet/lipgloss"

// Palette used by boxed messages.
var (
	Text  = lipgloss.Color("#cdd6f4")
	Mauve = lipgloss.Color("#cba6f7")
	Peach = lipgloss.Color("#fab387")

	AccentColor  = Mauve
	WarningColor = Peach
)
