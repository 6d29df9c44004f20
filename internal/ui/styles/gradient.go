package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient colors each grapheme of text along a from→to blend.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return paint(clusters, from, to, bold)
}

// GradientFill renders cells copies of fill, blended from→to, for the
// played part of a progress bar. The blend spans total cells so the colors
// stay put while the fill grows.
func GradientFill(fill string, cells, total int, from, to lipgloss.Color) string {
	if cells <= 0 {
		return ""
	}
	total = max(total, cells)
	colors := blend(total, from, to)

	var b strings.Builder
	for i := range cells {
		b.WriteString(lipgloss.NewStyle().Foreground(hex(colors[i])).Render(fill))
	}
	return b.String()
}

func paint(clusters []string, from, to lipgloss.Color, bold bool) string {
	if len(clusters) == 0 {
		return ""
	}
	colors := blend(len(clusters), from, to)

	var b strings.Builder
	for i, c := range clusters {
		style := lipgloss.NewStyle().Foreground(hex(colors[i]))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(c))
	}
	return b.String()
}

// blend interpolates in HCL so the steps look even.
func blend(n int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	if n < 2 {
		return []colorful.Color{c1}
	}
	c2 := toColorful(to)
	out := make([]colorful.Color, n)
	for i := range n {
		out[i] = c1.BlendHcl(c2, float64(i)/float64(n-1)).Clamped()
	}
	return out
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	// ANSI palette indexes have no fixed RGB value.
	col, _ := colorful.MakeColor(color.Gray{Y: 128})
	return col
}

func hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}
