package preview

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = "86"
	colorSelect = "205"
	colorMuted  = "241"
)

var styles = struct {
	Title    lipgloss.Style
	Filter   lipgloss.Style
	Active   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Lightbox lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)),
	Filter:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(colorMuted)),
	Active:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true).Foreground(lipgloss.Color(colorAccent)),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSelect)),
	Normal:   lipgloss.NewStyle(),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	Lightbox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorSelect)).
		Padding(1, 2),
}
