package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func seg(kind domain.SegmentKind, text string) domain.DiffSegment {
	return domain.DiffSegment{Kind: kind, Text: text}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single word", "word", []string{"word"}},
		{"keeps whitespace runs", "a  b\n\tc", []string{"a", "  ", "b", "\n\t", "c"}},
		{"leading and trailing space", " a ", []string{" ", "a", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, splitWords(tt.in)); diff != "" {
				t.Errorf("splitWords(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestDiff_IdenticalInputs(t *testing.T) {
	tests := []string{"", "same text", "  spaced  "}
	for _, text := range tests {
		got := Diff(text, text)
		assert.Equal(t, []domain.DiffSegment{seg(domain.SegmentUnchanged, text)}, got)
	}
}

func TestDiff_ReplacedAmount(t *testing.T) {
	prior := "As of March 30, 2025, we had $15,700.0 million outstanding."
	current := "As of March 30, 2025, we had $16,000.0 million outstanding."

	got := domain.Coalesce(Diff(prior, current))
	want := []domain.DiffSegment{
		seg(domain.SegmentUnchanged, "As of March 30, 2025, we had "),
		seg(domain.SegmentDeleted, "$15,700.0"),
		seg(domain.SegmentInserted, "$16,000.0"),
		seg(domain.SegmentUnchanged, " million outstanding."),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff_TieBreakPrefersInsertWhileBacktracking(t *testing.T) {
	got := Diff("a b", "b a")
	want := []domain.DiffSegment{
		seg(domain.SegmentDeleted, "a"),
		seg(domain.SegmentDeleted, " "),
		seg(domain.SegmentUnchanged, "b"),
		seg(domain.SegmentInserted, " "),
		seg(domain.SegmentInserted, "a"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiff_FromAndToEmpty(t *testing.T) {
	assert.Equal(t, []domain.DiffSegment{
		seg(domain.SegmentInserted, "new"),
		seg(domain.SegmentInserted, " "),
		seg(domain.SegmentInserted, "text"),
	}, Diff("", "new text"))

	assert.Equal(t, []domain.DiffSegment{
		seg(domain.SegmentDeleted, "old"),
	}, Diff("old", ""))
}

func TestDiff_Reconstruction(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
	}{
		{"replace word", "the quick fox", "the slow fox"},
		{"append", "Ranking.", "Ranking. New sentence added."},
		{"whitespace only change", "a b", "a  b"},
		{"reorder", "one two three", "three two one"},
		{"newlines", "line one\nline two", "line one\n\nline three"},
		{"disjoint", "alpha beta", "gamma delta epsilon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Diff(tt.old, tt.new)
			assert.Equal(t, tt.old, domain.OldText(segs))
			assert.Equal(t, tt.new, domain.NewText(segs))
			assert.True(t, domain.HasChanges(segs))

			merged := domain.Coalesce(segs)
			assert.Equal(t, tt.old, domain.OldText(merged))
			assert.Equal(t, tt.new, domain.NewText(merged))
		})
	}
}
