// Package tuitest builds small in-memory drafting services for TUI tests.
package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/services"
)

// Library returns a two-section library with a term sheet. The ranking
// section references asof and sr_notes. The cover section carries a
// suggestion and a note.
func Library(t *testing.T) *domain.Library {
	t.Helper()

	catalog, err := domain.NewCatalog([]domain.VariableDefinition{
		{ID: "asof", Prior: "March 30, 2025", Source: domain.SourceSystem, Task: domain.TaskUpdate, AutoSource: "10-Q"},
		{ID: "sr_notes", Prior: "$15,700.0 million", Source: domain.SourceSystem, Task: domain.TaskUpdate},
		{ID: "supp_label", Prior: "Eleventh", Suggested: "Twelfth", Source: domain.SourceCounsel, Task: domain.TaskUpdate, Hint: "Ordinal only"},
	})
	require.NoError(t, err)

	draft, err := domain.NewTemplate("draft", []domain.Section{
		{Key: "ranking", Title: "Ranking", Text: "As of {asof}, we had {sr_notes} outstanding."},
		{Key: "cover", Title: "Cover", Text: "{supp_label} supplement. [Note: confirm date]"},
	})
	require.NoError(t, err)

	final, err := domain.NewTemplate("final", []domain.Section{
		{Key: "ranking", Title: "Ranking", Text: "As of {asof}, we had {sr_notes} outstanding."},
		{Key: "pricing", Title: "Pricing", Text: "Coupon {coupon_2028}."},
	})
	require.NoError(t, err)

	return &domain.Library{
		Catalog: catalog,
		Draft:   draft,
		Final:   final,
		TermSheet: &domain.TermSheet{
			Title: "Pricing term sheet",
			Fields: []domain.TermSheetField{
				{ID: "coupon_2028", Label: "2028 Notes - Coupon", Value: "4.600%", Section: "pricing"},
			},
		},
	}
}

// Services holds the services backing a TUI under test.
type Services struct {
	Draft    *services.DraftService
	Final    *services.FinalService
	Settings *services.SettingsService
	Sessions *memory.SessionStore
}

// NewServices builds draft, final and settings services over memory stores.
func NewServices(t *testing.T) *Services {
	t.Helper()

	sessions := memory.NewSessionStore()
	draft := services.NewDraftService(Library(t), sessions)
	final, err := services.NewFinalService(draft)
	require.NoError(t, err)

	return &Services{
		Draft:    draft,
		Final:    final,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Sessions: sessions,
	}
}

// Exec runs cmd and returns its message, or nil for a nil command.
func Exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Key builds a key message for a single rune or a named key.
func Key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
