package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/services"
)

func testLibrary(t *testing.T) *domain.Library {
	t.Helper()

	catalog, err := domain.NewCatalog([]domain.VariableDefinition{
		{ID: "asof", Prior: "March 30, 2025", Source: domain.SourceSystem, Task: domain.TaskUpdate, AutoSource: "10-Q"},
		{ID: "sr_notes", Prior: "$15,700.0 million", Source: domain.SourceSystem, Task: domain.TaskUpdate},
		{ID: "supp_label", Prior: "Eleventh", Suggested: "Twelfth", Source: domain.SourceCounsel, Task: domain.TaskUpdate, Hint: "Ordinal only"},
	})
	require.NoError(t, err)

	draft, err := domain.NewTemplate("draft", []domain.Section{
		{Key: "ranking", Title: "Ranking", Text: "As of {asof}, we had {sr_notes} outstanding."},
		{Key: "cover", Title: "Cover", Text: "Prior supplement. [Note: confirm date]"},
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

// testEnv holds the in-memory services installed for a test.
type testEnv struct {
	draft    *services.DraftService
	sessions *memory.SessionStore
	config   *memory.ConfigStore
}

// setupTestServices installs services over in-memory stores and returns
// a cleanup that restores package state.
func setupTestServices(t *testing.T) (*testEnv, func()) {
	t.Helper()

	lib := testLibrary(t)
	sessions := memory.NewSessionStore()
	config := memory.NewConfigStoreFrom(map[string]any{"render.color": "never"})

	draft := services.NewDraftService(lib, sessions)
	final, err := services.NewFinalService(draft)
	require.NoError(t, err)

	SetServices(&Services{
		Draft:     draft,
		Final:     final,
		Lint:      services.NewLintService(lib.Catalog, false),
		FinalLint: services.NewLintService(final.Catalog(), false),
		Sessions:  services.NewSessionService(sessions),
		Settings:  services.NewSettingsService(config),
	})

	return &testEnv{draft: draft, sessions: sessions, config: config}, func() {
		SetServices(nil)
		resetFlags()
	}
}

func resetFlags() {
	renderJSON = false
	redlineJSON, redlineAll = false, false
	varSource, varChanged, varJSON = "", false, false
	overrideFile = ""
	progressJSON = false
	lintStrict, lintFinal, lintJSON = false, false, false
	finalJSON = false
	sessionUse = false
	libraryForce = false
	colorFlag = ""
	verbose = false
	opts = Options{}
}

// run executes the root command with args and returns combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
