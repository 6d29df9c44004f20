package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/soundfeed/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, padX)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func authorStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func metaStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func emptyBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
}
