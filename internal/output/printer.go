package output

import (
	"fmt"
	"io"
)

// Printer writes human-readable progress to w and warnings to errW.
type Printer struct {
	w       io.Writer
	errW    io.Writer
	palette Palette
}

// NewPrinter returns a Printer writing to w. Warnings go to w too until
// WithStderr is called.
func NewPrinter(w io.Writer, palette Palette) *Printer {
	return &Printer{w: w, errW: w, palette: palette}
}

// WithStderr sends warnings to w.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// Palette returns the printer's styles.
func (p *Printer) Palette() Palette {
	return p.palette
}

// Step prints a completed action, e.g. "✓ Created docs/".
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.palette.Green.Render("✓"), fmt.Sprintf(format, args...))
}

// Pending prints an action that a dry run would take.
func (p *Printer) Pending(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.palette.Dim.Render("•"), fmt.Sprintf(format, args...))
}

// Heading prints a bold line.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.w, p.palette.Bold.Render(text))
}

// Status prints a doctor-style "[TAG] subject: message" line indented under
// a heading. tag is one of "ok", "warn", "fail", "miss".
func (p *Printer) Status(tag, subject, message string) {
	var label string
	switch tag {
	case "ok":
		label = p.palette.Green.Render("[ OK ]")
	case "warn":
		label = p.palette.Yellow.Render("[WARN]")
	case "fail":
		label = p.palette.Red.Render("[FAIL]")
	case "miss":
		label = p.palette.Red.Render("[MISS]")
	default:
		label = "[" + tag + "]"
	}
	fmt.Fprintf(p.w, "  %s %s: %s\n", label, subject, message)
}

// Warn prints a warning to the error writer.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.errW, "%s: %s\n", p.palette.Yellow.Render("Warning"), fmt.Sprintf(format, args...))
}

// Println writes a plain line.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Printf writes formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
