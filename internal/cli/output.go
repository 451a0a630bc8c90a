package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/huekit/internal/colour"
)

// printer writes command output, optionally decorating colours with swatches.
type printer struct {
	w        io.Writer
	preview  bool
	renderer *lipgloss.Renderer
}

// newPrinter creates a printer for w. In auto mode swatches are shown only
// when w is a terminal.
func newPrinter(w io.Writer, mode string) *printer {
	p := &printer{w: w, preview: previewEnabled(w, mode)}
	if p.preview {
		p.renderer = lipgloss.NewRenderer(w)
		p.renderer.SetColorProfile(termenv.TrueColor)
	}
	return p
}

func previewEnabled(w io.Writer, mode string) bool {
	switch mode {
	case previewAlways:
		return true
	case previewNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// swatch renders label on a c-coloured block using the readable text colour.
// Without previews the label is returned unchanged.
func (p *printer) swatch(c colour.Color, label string) string {
	if !p.preview {
		return label
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(colour.PickReadableText(c).Hex())).
		Padding(0, 1).
		Render(label)
}

// colour formats c, prefixed with a swatch when previews are on.
func (p *printer) colour(c colour.Color, format colour.ColorFormat) string {
	text := colour.Format(c, format)
	if !p.preview {
		return text
	}
	return p.swatch(c, "   ") + " " + text
}

// sample renders example text in the text colour on the background colour.
func (p *printer) sample(text, bg colour.Color) string {
	return p.renderer.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(text.Hex())).
		Padding(0, 2).
		Render("The quick brown fox jumps over the lazy dog")
}

// strip renders colours as adjacent swatches, marking locked entries.
func (p *printer) strip(colours []colour.Color, locked []bool) string {
	var b strings.Builder
	for i, c := range colours {
		label := "   "
		if i < len(locked) && locked[i] {
			label = " * "
		}
		b.WriteString(p.swatch(c, label))
	}
	return b.String()
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *printer) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// writeOutput writes content to path, or to the printer when path is empty.
func writeOutput(p *printer, logger hclog.Logger, path, content string) error {
	if path == "" {
		p.printf("%s", content)
		return nil
	}

	logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote output", "path", path)
	return nil
}
