package output

import "github.com/charmbracelet/lipgloss"

// Palette is the purple → cyan gradient used by the banner and console
// output, plus status colors. The zero value renders plain text.
type Palette struct {
	Purple  lipgloss.Style
	Magenta lipgloss.Style
	Pink    lipgloss.Style
	Cyan    lipgloss.Style
	Blue    lipgloss.Style
	Teal    lipgloss.Style
	Green   lipgloss.Style
	Yellow  lipgloss.Style
	Red     lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
}

// NewPalette returns the colored palette, or plain styles when color is false.
func NewPalette(color bool) Palette {
	if !color {
		plain := lipgloss.NewStyle()
		return Palette{
			Purple: plain, Magenta: plain, Pink: plain, Cyan: plain, Blue: plain, Teal: plain,
			Green: plain, Yellow: plain, Red: plain, Bold: plain, Dim: plain,
		}
	}
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Palette{
		Purple:  fg("135").Bold(true),
		Magenta: fg("201"),
		Pink:    fg("213"),
		Cyan:    fg("51"),
		Blue:    fg("39"),
		Teal:    fg("44"),
		Green:   fg("46"),
		Yellow:  fg("226"),
		Red:     fg("9").Bold(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
	}
}

// Gradient returns the banner styles top to bottom.
func (p Palette) Gradient() []lipgloss.Style {
	return []lipgloss.Style{p.Purple, p.Purple, p.Magenta, p.Pink, p.Cyan, p.Blue, p.Teal}
}
