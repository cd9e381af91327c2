package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passforge/internal/model"
)

const meterCells = 20

var (
	scoreColors = map[int]lipgloss.Color{
		0: "#ff3b30", // red
		1: "#ff9500", // orange
		2: "#ffcc00", // yellow
		3: "#34c759", // green
		4: "#30b0c7", // teal
	}
	unknownColor = lipgloss.Color("#e5e5ea")
	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4a4a4a"))
)

// fillPercent maps a 0-4 score to 20, 40, 60, 80 or 100 percent.
func fillPercent(score int) int {
	p := (score + 1) * 20
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// renderMeter draws a colored bar followed by "Strength: <label>".
func renderMeter(s model.StrengthResponse) string {
	color, ok := scoreColors[s.Score]
	if !ok {
		color = unknownColor
	}

	filled := fillPercent(s.Score) * meterCells / 100
	barStyle := lipgloss.NewStyle().Foreground(color)
	labelStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return barStyle.Render(strings.Repeat("█", filled)) +
		trackStyle.Render(strings.Repeat("░", meterCells-filled)) +
		" " + labelStyle.Render("Strength: "+s.Label)
}
