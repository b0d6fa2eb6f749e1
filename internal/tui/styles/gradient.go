package styles

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// RenderThemeGradient renders text with the current theme's primary
// gradient. Used for titles and the picker highlight.
func RenderThemeGradient(text string, bold bool) string {
	theme := CurrentTheme()
	return ApplyGradient(text, theme.Primary, theme.Secondary, bold)
}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, color1, color2 color.Color, bold bool) string {
	if text == "" {
		return ""
	}

	// Handle Unicode properly
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, string(gr.Runes()))
	}
	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(color1).Bold(bold).Render(text)
	}

	var output strings.Builder
	colors := blendColors(len(clusters), color1, color2)
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(colors[i]).Bold(bold)
		fmt.Fprint(&output, style.Render(cluster))
	}
	return output.String()
}

// blendColors creates a gradient between two colors in HCL space for
// perceptually uniform blending.
func blendColors(steps int, color1, color2 color.Color) []color.Color {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []color.Color{color1}
	}

	c1, _ := colorful.MakeColor(color1)
	c2, _ := colorful.MakeColor(color2)

	colors := make([]color.Color, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		colors[i] = c1.BlendHcl(c2, t)
	}
	return colors
}
