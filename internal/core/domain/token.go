package domain

import (
	"regexp"
	"strings"
)

// BlankMarker is the placeholder for a deal term that is not yet set.
const BlankMarker = "[___]"

// notePrefix opens a free-text annotation.
const notePrefix = "[Note:"

// markerPattern matches the three marker kinds. Alternatives never overlap:
// variables start with '{', blanks and notes with '[' followed by '_' or 'N'.
var markerPattern = regexp.MustCompile(`\{\w+\}|\[___\]|\[Note:[^\]]+\]`)

// TokenKind identifies what a template token represents.
type TokenKind int

const (
	// TokenLiteral is plain prose copied through unchanged.
	TokenLiteral TokenKind = iota
	// TokenVariable is a {variable_id} reference.
	TokenVariable
	// TokenBlank is the [___] deal-term placeholder.
	TokenBlank
	// TokenNote is a [Note: ...] editorial annotation.
	TokenNote
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenVariable:
		return "variable"
	case TokenBlank:
		return "blank"
	case TokenNote:
		return "note"
	default:
		return "unknown"
	}
}

// Token is one piece of a tokenized template.
type Token struct {
	Kind TokenKind

	// Raw is the exact source text of the token.
	Raw string

	// Name is the variable id for TokenVariable and the trimmed
	// annotation text for TokenNote. Empty otherwise.
	Name string

	// Offset is the byte offset of Raw within the template text.
	Offset int
}

// Tokenize splits text into literal, variable, blank and note tokens in
// source order. Concatenating every token's Raw reproduces text exactly.
func Tokenize(text string) []Token {
	matches := markerPattern.FindAllStringIndex(text, -1)
	tokens := make([]Token, 0, 2*len(matches)+1)

	cur := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > cur {
			tokens = append(tokens, Token{Kind: TokenLiteral, Raw: text[cur:start], Offset: cur})
		}
		tokens = append(tokens, classify(text[start:end], start))
		cur = end
	}
	if cur < len(text) {
		tokens = append(tokens, Token{Kind: TokenLiteral, Raw: text[cur:], Offset: cur})
	}
	return tokens
}

func classify(raw string, offset int) Token {
	switch {
	case raw == BlankMarker:
		return Token{Kind: TokenBlank, Raw: raw, Offset: offset}
	case strings.HasPrefix(raw, notePrefix):
		body := strings.TrimSuffix(strings.TrimPrefix(raw, notePrefix), "]")
		return Token{Kind: TokenNote, Raw: raw, Name: strings.TrimSpace(body), Offset: offset}
	default:
		return Token{Kind: TokenVariable, Raw: raw, Name: raw[1 : len(raw)-1], Offset: offset}
	}
}

// VariableRefs returns the distinct variable ids referenced by text,
// in order of first appearance.
func VariableRefs(text string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, tok := range Tokenize(text) {
		if tok.Kind != TokenVariable || seen[tok.Name] {
			continue
		}
		seen[tok.Name] = true
		ids = append(ids, tok.Name)
	}
	return ids
}

// StripNotes removes [Note: ...] annotations and the blanks left
// trailing on their lines.
func StripNotes(text string) string {
	tokens := Tokenize(text)
	stripped := false
	var b strings.Builder
	for _, tok := range tokens {
		if tok.Kind == TokenNote {
			stripped = true
			continue
		}
		b.WriteString(tok.Raw)
	}
	if !stripped {
		return text
	}

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
