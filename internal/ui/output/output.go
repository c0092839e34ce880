// Package output builds termenv outputs and renders the key/value reports
// printed by the CLI commands.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/venvkit/internal/ui/style"
)

// ColorProfile returns the color profile for w. NO_COLOR forces Ascii.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for w with the ColorProfile applied.
// A nil writer selects os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Field is one line of a Report.
type Field struct {
	Key   string
	Value string
	Style *lipgloss.Style
}

// Report renders aligned key/value lines for command results.
type Report struct {
	fields []Field
}

// Add appends a plain field.
func (r *Report) Add(key, value string) *Report {
	r.fields = append(r.fields, Field{Key: key, Value: value})
	return r
}

// AddStyled appends a field rendered with s.
func (r *Report) AddStyled(key, value string, s lipgloss.Style) *Report {
	r.fields = append(r.fields, Field{Key: key, Value: value, Style: &s})
	return r
}

// Render writes the report to w, one field per line.
func (r *Report) Render(w io.Writer) error {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))

	width := 0
	for _, f := range r.fields {
		width = max(width, len(f.Key))
	}

	var b strings.Builder
	for _, f := range r.fields {
		key := style.Key.Renderer(renderer).Render(f.Key + ":")
		pad := strings.Repeat(" ", width-len(f.Key)+1)

		valueStyle := style.Value
		if f.Style != nil {
			valueStyle = *f.Style
		}
		fmt.Fprintf(&b, "%s%s%s\n", key, pad, valueStyle.Renderer(renderer).Render(f.Value))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
