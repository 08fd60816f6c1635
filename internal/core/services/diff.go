package services

import (
	"regexp"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// splitWords splits s into words and the whitespace runs between them.
// Whitespace runs are kept as tokens so a diff reconstructs both inputs
// exactly. Empty tokens are dropped.
func splitWords(s string) []string {
	locs := whitespaceRun.FindAllStringIndex(s, -1)
	out := make([]string, 0, 2*len(locs)+1)
	cur := 0
	for _, loc := range locs {
		if loc[0] > cur {
			out = append(out, s[cur:loc[0]])
		}
		out = append(out, s[loc[0]:loc[1]])
		cur = loc[1]
	}
	if cur < len(s) {
		out = append(out, s[cur:])
	}
	return out
}

// Diff computes a word-level redline from oldText to newText using a
// longest common subsequence over word and whitespace tokens.
//
// Identical inputs short-circuit to a single unchanged segment. When
// backtracking through a mismatch, an insertion is emitted whenever
// skipping a new token keeps at least as long a common subsequence as
// skipping an old one. After reversal this places deletions before the
// insertions that replace them.
func Diff(oldText, newText string) []domain.DiffSegment {
	if oldText == newText {
		return []domain.DiffSegment{{Kind: domain.SegmentUnchanged, Text: newText}}
	}

	a, b := splitWords(oldText), splitWords(newText)
	m, n := len(a), len(b)

	cell := make([][]int, m+1)
	for i := range cell {
		cell[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				cell[i][j] = cell[i-1][j-1] + 1
			} else {
				cell[i][j] = max(cell[i-1][j], cell[i][j-1])
			}
		}
	}

	segments := make([]domain.DiffSegment, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			segments = append(segments, domain.DiffSegment{Kind: domain.SegmentUnchanged, Text: a[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || cell[i][j-1] >= cell[i-1][j]):
			segments = append(segments, domain.DiffSegment{Kind: domain.SegmentInserted, Text: b[j-1]})
			j--
		default:
			segments = append(segments, domain.DiffSegment{Kind: domain.SegmentDeleted, Text: a[i-1]})
			i--
		}
	}

	for l, r := 0, len(segments)-1; l < r; l, r = l+1, r-1 {
		segments[l], segments[r] = segments[r], segments[l]
	}
	return segments
}
