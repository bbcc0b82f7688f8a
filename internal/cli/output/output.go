// Package output provides the CLI output renderer. The mode decides the
// wire format: styled text for terminals, markdown for pipes and scripts,
// json/csv for machines.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeCSV      Mode = "csv"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer over the given writers.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	if mode == "md" {
		mode = ModeMarkdown
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// Out returns the primary output writer.
func (r *Renderer) Out() io.Writer { return r.out }

// EffectiveMode resolves ModeAuto: text on a terminal, markdown when piped.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeMarkdown
}

// Header writes a section header appropriate for the effective mode.
func (r *Renderer) Header(level int, text string) {
	switch r.EffectiveMode() {
	case ModeMarkdown:
		_, _ = fmt.Fprintf(r.out, "%s %s\n\n", strings.Repeat("#", level), text)
	case ModeJSON, ModeCSV:
		// Machine formats carry no headers.
	default:
		_, _ = fmt.Fprintf(r.out, "%s\n", text)
	}
}

// Textf writes formatted text to the primary writer.
func (r *Renderer) Textf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Warnf writes formatted text to the error writer.
func (r *Renderer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errOut, format, args...)
}
