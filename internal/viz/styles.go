package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// heatRamp maps normalized magnitude buckets to terminal colors, cold to hot.
var heatRamp = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
}
