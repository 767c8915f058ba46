package cli

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorCyan = lipgloss.Color("36")  // Teal - primary actions
	colorGray = lipgloss.Color("245") // Gray - secondary text
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for the viewer header.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for key hints and position indicators.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleStatus for the viewer footer line.
	styleStatus = lipgloss.NewStyle().Foreground(colorGray)
)
