package domain

import "strings"

// SegmentKind tags a span of a redline.
type SegmentKind int

const (
	// SegmentUnchanged appears in both the old and new text.
	SegmentUnchanged SegmentKind = iota
	// SegmentInserted appears only in the new text.
	SegmentInserted
	// SegmentDeleted appears only in the old text.
	SegmentDeleted
)

// String returns the string representation of the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentUnchanged:
		return "unchanged"
	case SegmentInserted:
		return "inserted"
	case SegmentDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k SegmentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// DiffSegment is one word or whitespace run of a redline.
type DiffSegment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// OldText reconstructs the old side of a diff (unchanged + deleted).
func OldText(segments []DiffSegment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Kind != SegmentInserted {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// NewText reconstructs the new side of a diff (unchanged + inserted).
func NewText(segments []DiffSegment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Kind != SegmentDeleted {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// HasChanges returns true if any segment is an insertion or deletion.
func HasChanges(segments []DiffSegment) bool {
	for _, s := range segments {
		if s.Kind != SegmentUnchanged {
			return true
		}
	}
	return false
}

// Coalesce merges adjacent segments of the same kind. The result
// reconstructs the same old and new text with fewer spans.
func Coalesce(segments []DiffSegment) []DiffSegment {
	if len(segments) == 0 {
		return segments
	}
	out := make([]DiffSegment, 0, len(segments))
	out = append(out, segments[0])
	for _, seg := range segments[1:] {
		last := &out[len(out)-1]
		if last.Kind == seg.Kind {
			last.Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}
