package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Background))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Inserted))
	assert.NotEmpty(t, string(theme.Deleted))
	assert.NotEmpty(t, string(theme.Edited))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_RedlineColoursAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	palette := []lipgloss.Color{theme.Inserted, theme.Deleted, theme.Edited, theme.Error}

	seen := make(map[string]bool)
	for _, c := range palette {
		s := string(c)
		assert.False(t, seen[s], "duplicate colour: %s", s)
		seen[s] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestStyles_Source(t *testing.T) {
	s := DefaultStyles()

	for _, src := range domain.AllSources() {
		t.Run(src.String(), func(t *testing.T) {
			assert.NotEqual(t, s.Muted.GetForeground(), s.Source(src).GetForeground())
		})
	}

	assert.Equal(t, s.Muted.GetForeground(), s.Source(domain.VariableSource("bogus")).GetForeground())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("Ranking"), "Ranking")
	assert.Contains(t, s.Edited.Render("(edited)"), "(edited)")
	assert.Contains(t, s.Changed.Render("*"), "*")
}
