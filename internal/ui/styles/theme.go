package styles

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/spectra/internal/config"
)

// Theme holds the colors passed to the widgets.
type Theme struct {
	Accent   color.Color // pushed tab button
	Current  color.Color // playing row
	Spectrum color.Color // spectrum bars
	Volume   color.Color // volume bar fill
	Seek     color.Color // seek bar fill
	Pad      color.Color // center of the position pad

	styles *Styles
}

// Styles contains the lipgloss styles used by the terminal help output.
type Styles struct {
	Title   lipgloss.Style // Section headings
	Key     lipgloss.Style // Key names
	Desc    lipgloss.Style // Binding descriptions
	Heading lipgloss.Style // Program name
}

// FromConfig parses the configured hex colors.
func FromConfig(c config.ColorsConfig) (*Theme, error) {
	t := &Theme{}
	fields := []struct {
		key string
		hex string
		dst *color.Color
	}{
		{"accent", c.Accent, &t.Accent},
		{"current", c.Current, &t.Current},
		{"spectrum", c.Spectrum, &t.Spectrum},
		{"volume", c.Volume, &t.Volume},
		{"seek", c.Seek, &t.Seek},
		{"pad", c.Pad, &t.Pad},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %w", f.key, err)
		}
		*f.dst = col
	}
	return t, nil
}

// Default returns the theme built from the default configuration.
func Default() *Theme {
	t, err := FromConfig(config.Default().Colors)
	if err != nil {
		panic(err)
	}
	return t
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Underline(true),
		Key:     lipgloss.NewStyle().Foreground(Lipgloss(t.Accent)).Bold(true),
		Desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c0c0")),
		Heading: lipgloss.NewStyle().Bold(true),
	}
}

// Lipgloss converts c to a lipgloss hex color.
func Lipgloss(c color.Color) lipgloss.Color {
	return lipgloss.Color(colorToHex(c))
}
