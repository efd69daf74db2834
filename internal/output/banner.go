package output

import (
	"fmt"
	"io"
	"strings"
)

var bannerArt = []string{
	"███████╗██████╗  █████╗ ██████╗ ██╗  ██╗███████╗███╗   ██╗████████╗██╗ ██████╗",
	"██╔════╝██╔══██╗██╔══██╗██╔══██╗██║ ██╔╝██╔════╝████╗  ██║╚══██╔══╝██║██╔════╝",
	"███████╗██████╔╝███████║██████╔╝█████╔╝ █████╗  ██╔██╗ ██║   ██║   ██║██║",
	"╚════██║██╔═══╝ ██╔══██║██╔══██╗██╔═██╗ ██╔══╝  ██║╚██╗██║   ██║   ██║██║",
	"███████║██║     ██║  ██║██║  ██║██║  ██╗███████╗██║ ╚████║   ██║   ██║╚██████╗",
	"╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝ ╚═════╝",
	strings.Repeat("═", 76),
}

const bannerIndent = "    "

// Banner is the text shown under the logo.
type Banner struct {
	Tagline string // e.g., "Production-Ready AI Agents | Pydantic AI | Test-Driven"
	Version string
	Year    int
}

// RenderBanner writes the logo in the palette's gradient followed by the
// tagline and version line.
func RenderBanner(w io.Writer, p Palette, b Banner) error {
	var sb strings.Builder
	sb.WriteString("\n")

	gradient := p.Gradient()
	for i, line := range bannerArt {
		style := gradient[min(i, len(gradient)-1)]
		sb.WriteString(bannerIndent + style.Render(line) + "\n")
	}
	sb.WriteString("\n")

	if b.Tagline != "" {
		sb.WriteString(bannerIndent + p.Dim.Render(b.Tagline) + "\n")
	}
	meta := "v" + strings.TrimPrefix(b.Version, "v")
	if b.Year > 0 {
		meta += fmt.Sprintf(" | %d", b.Year)
	}
	sb.WriteString(bannerIndent + p.Dim.Render(meta) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
