// Package report renders the end-of-batch compilation summary.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vvka-141/spvc/internal/tui"
	"github.com/vvka-141/spvc/pkg/spvc"
)

// Reporter writes summaries to a single writer.
type Reporter struct {
	out    io.Writer
	styles tui.Styles
}

// Option configures a Reporter.
type Option func(*lipgloss.Renderer)

// Plain disables colour regardless of what the writer supports.
func Plain() Option {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(termenv.Ascii)
	}
}

// New creates a Reporter. Colour is used only when w is a colour-capable
// terminal, so redirected output is always plain text.
func New(w io.Writer, opts ...Option) *Reporter {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}
	return &Reporter{out: w, styles: tui.NewStyles(r)}
}

// Write prints the summary:
//
//	-------- Compilation result --------
//	SUCCESS: All shaders compiled to SPIR-V
//
// or the failure count followed by each failed path, tab-indented, in attempt order.
// An interrupted run never reports success: it states how many shaders were
// not attempted, then lists any failures among those that were.
func (p *Reporter) Write(summary *spvc.BatchSummary) error {
	if _, err := fmt.Fprintln(p.out, p.styles.Header.Render(spvc.ReportHeader)); err != nil {
		return err
	}

	skipped := summary.NotAttempted()
	if skipped > 0 {
		msg := fmt.Sprintf("INTERRUPTED: %d of %d shader(s) were not attempted", skipped, summary.Planned)
		if _, err := fmt.Fprintf(p.out, "%s\n\n", p.styles.Error.Render(msg)); err != nil {
			return err
		}
	}

	failed := summary.FailedPaths()
	if len(failed) == 0 {
		if skipped > 0 {
			return nil
		}
		_, err := fmt.Fprintf(p.out, "%s\n\n", p.styles.Success.Render(spvc.ReportSuccess))
		return err
	}

	header := fmt.Sprintf("ERROR: %d shader(s) could not be compiled:", len(failed))
	if _, err := fmt.Fprintf(p.out, "%s\n\n", p.styles.Error.Render(header)); err != nil {
		return err
	}
	for _, path := range failed {
		if _, err := fmt.Fprintf(p.out, "\t%s\n", p.styles.Path.Render(path)); err != nil {
			return err
		}
	}
	return nil
}
