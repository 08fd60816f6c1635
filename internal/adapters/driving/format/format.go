// Package format renders sections and redlines for terminal output.
//
// Styled output marks insertions green and underlined and deletions red
// with strikethrough. Plain output uses wdiff-style markers, [-deleted-]
// and {+inserted+}, so redlines stay readable in logs and pipes.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

// Options controls how a Formatter writes text.
type Options struct {
	// Color selects styled or plain output.
	Color domain.ColorMode

	// IsTerminal is whether the destination is an interactive terminal.
	// It decides the outcome of domain.ColorAuto.
	IsTerminal bool

	// ShowNotes keeps [Note: ...] annotations in rendered text.
	ShowNotes bool
}

// Formatter renders domain output as text.
type Formatter struct {
	styled    bool
	showNotes bool

	inserted lipgloss.Style
	deleted  lipgloss.Style
	heading  lipgloss.Style
	muted    lipgloss.Style
}

// New creates a formatter writing to w.
func New(w io.Writer, opts Options) *Formatter {
	styled := opts.Color == domain.ColorAlways ||
		(opts.Color == domain.ColorAuto && opts.IsTerminal)

	r := lipgloss.NewRenderer(w)
	if styled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Formatter{
		styled:    styled,
		showNotes: opts.ShowNotes,
		inserted:  r.NewStyle().Foreground(lipgloss.Color("#2E7D32")).Underline(true),
		deleted:   r.NewStyle().Foreground(lipgloss.Color("#C62828")).Strikethrough(true),
		heading:   r.NewStyle().Bold(true),
		muted:     r.NewStyle().Faint(true),
	}
}

// Styled reports whether the formatter emits ANSI styling.
func (f *Formatter) Styled() bool {
	return f.styled
}

// Segments renders a diff as a single redlined string. Adjacent
// segments of the same kind are marked as one span.
func (f *Formatter) Segments(segments []domain.DiffSegment) string {
	var b strings.Builder
	for _, seg := range domain.Coalesce(segments) {
		text := seg.Text
		switch seg.Kind {
		case domain.SegmentInserted:
			if f.styled {
				b.WriteString(f.inserted.Render(text))
			} else {
				b.WriteString("{+" + text + "+}")
			}
		case domain.SegmentDeleted:
			if f.styled {
				b.WriteString(f.deleted.Render(text))
			} else {
				b.WriteString("[-" + text + "-]")
			}
		default:
			b.WriteString(text)
		}
	}
	return b.String()
}

// Heading renders a section heading line.
func (f *Formatter) Heading(title string, overridden bool) string {
	if overridden {
		title += " (edited)"
	}
	if f.styled {
		return f.heading.Render(title)
	}
	return "## " + title
}

// Section renders a section heading followed by its text.
func (f *Formatter) Section(sec domain.RenderedSection) string {
	return f.Heading(sec.Title, sec.Overridden) + "\n" + f.text(sec.Text)
}

// Redline renders a section redline. Unchanged sections show their
// current text with a marker.
func (f *Formatter) Redline(r domain.SectionRedline) string {
	heading := f.Heading(r.Title, r.Overridden)
	if !r.Changed {
		return heading + "\n" + f.faint("(no changes)") + "\n" + f.text(r.Current)
	}
	return heading + "\n" + f.Segments(f.segments(domain.Coalesce(r.Segments)))
}

// Sections writes every section separated by blank lines.
func (f *Formatter) Sections(w io.Writer, sections []domain.RenderedSection) error {
	for i, sec := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, f.Section(sec)); err != nil {
			return err
		}
	}
	return nil
}

// Redlines writes every redline separated by blank lines. When changedOnly
// is set, unchanged sections are skipped.
func (f *Formatter) Redlines(w io.Writer, redlines []domain.SectionRedline, changedOnly bool) error {
	first := true
	for _, r := range redlines {
		if changedOnly && !r.Changed {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if _, err := fmt.Fprintln(w, f.Redline(r)); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) text(s string) string {
	if f.showNotes {
		return s
	}
	return domain.StripNotes(s)
}

// segments drops note text from a diff when notes are hidden. A segment
// is rewritten only when it contains a whole annotation.
func (f *Formatter) segments(segments []domain.DiffSegment) []domain.DiffSegment {
	if f.showNotes {
		return segments
	}
	out := make([]domain.DiffSegment, 0, len(segments))
	for _, seg := range segments {
		text := domain.StripNotes(seg.Text)
		if text == "" && seg.Text != "" {
			continue
		}
		out = append(out, domain.DiffSegment{Kind: seg.Kind, Text: text})
	}
	return out
}

func (f *Formatter) faint(s string) string {
	if f.styled {
		return f.muted.Render(s)
	}
	return s
}
