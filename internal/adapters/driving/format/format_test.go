package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func plain(showNotes bool) *Formatter {
	return New(&bytes.Buffer{}, Options{Color: domain.ColorNever, ShowNotes: showNotes})
}

func TestNew_ColorMode(t *testing.T) {
	tests := []struct {
		name       string
		color      domain.ColorMode
		isTerminal bool
		want       bool
	}{
		{"always", domain.ColorAlways, false, true},
		{"never on terminal", domain.ColorNever, true, false},
		{"auto on terminal", domain.ColorAuto, true, true},
		{"auto in pipe", domain.ColorAuto, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(&bytes.Buffer{}, Options{Color: tt.color, IsTerminal: tt.isTerminal})
			assert.Equal(t, tt.want, f.Styled())
		})
	}
}

func TestSegments_Plain(t *testing.T) {
	segs := []domain.DiffSegment{
		{Kind: domain.SegmentUnchanged, Text: "had "},
		{Kind: domain.SegmentDeleted, Text: "$15,700.0"},
		{Kind: domain.SegmentInserted, Text: "$16,000.0"},
		{Kind: domain.SegmentUnchanged, Text: " million"},
	}

	got := plain(true).Segments(segs)

	assert.Equal(t, "had [-$15,700.0-]{+$16,000.0+} million", got)
}

func TestSegments_Styled(t *testing.T) {
	f := New(&bytes.Buffer{}, Options{Color: domain.ColorAlways})
	segs := []domain.DiffSegment{
		{Kind: domain.SegmentDeleted, Text: "old"},
		{Kind: domain.SegmentInserted, Text: "new"},
	}

	got := f.Segments(segs)

	assert.Contains(t, got, "\x1b[")
	assert.NotContains(t, got, "[-")
	assert.NotContains(t, got, "{+")
}

func TestHeading(t *testing.T) {
	f := plain(true)
	assert.Equal(t, "## Ranking", f.Heading("Ranking", false))
	assert.Equal(t, "## Ranking (edited)", f.Heading("Ranking", true))
}

func TestRedline_Unchanged(t *testing.T) {
	r := domain.SectionRedline{Title: "Ranking", Prior: "Same.", Current: "Same."}

	got := plain(true).Redline(r)

	assert.Equal(t, "## Ranking\n(no changes)\nSame.", got)
}

func TestRedline_HidesNotes(t *testing.T) {
	r := domain.SectionRedline{
		Title:   "Settlement",
		Changed: true,
		Segments: []domain.DiffSegment{
			{Kind: domain.SegmentDeleted, Text: "T+1"},
			{Kind: domain.SegmentInserted, Text: "T+2"},
			{Kind: domain.SegmentUnchanged, Text: " days. [Note: confirm]"},
		},
	}

	assert.Equal(t, "## Settlement\n[-T+1-]{+T+2+} days.", plain(false).Redline(r))
	assert.Equal(t, "## Settlement\n[-T+1-]{+T+2+} days. [Note: confirm]", plain(true).Redline(r))
}

func TestSections(t *testing.T) {
	var buf bytes.Buffer
	sections := []domain.RenderedSection{
		{Key: "a", Title: "A", Text: "First. [Note: x]"},
		{Key: "b", Title: "B", Text: "Second.", Overridden: true},
	}

	require.NoError(t, plain(false).Sections(&buf, sections))

	assert.Equal(t, "## A\nFirst.\n\n## B (edited)\nSecond.\n", buf.String())
}

func TestRedlines_ChangedOnly(t *testing.T) {
	var buf bytes.Buffer
	redlines := []domain.SectionRedline{
		{Title: "A", Current: "Same."},
		{Title: "B", Changed: true, Segments: []domain.DiffSegment{{Kind: domain.SegmentInserted, Text: "new"}}},
	}

	require.NoError(t, plain(true).Redlines(&buf, redlines, true))

	assert.Equal(t, "## B\n{+new+}\n", buf.String())
}
