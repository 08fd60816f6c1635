package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
	"github.com/custodia-labs/suppdraft/internal/core/services"
)

func testLibrary(t *testing.T) *domain.Library {
	t.Helper()

	catalog, err := domain.NewCatalog([]domain.VariableDefinition{
		{ID: "asof", Prior: "March 30, 2025", Source: domain.SourceSystem, Task: domain.TaskUpdate},
		{ID: "sr_notes", Prior: "$15,700.0 million", Source: domain.SourceSystem, Task: domain.TaskUpdate},
		{ID: "supp_label", Prior: "Eleventh", Suggested: "Twelfth", Source: domain.SourceCounsel, Task: domain.TaskUpdate, Hint: "Ordinal only"},
	})
	require.NoError(t, err)

	draft, err := domain.NewTemplate("draft", []domain.Section{
		{Key: "ranking", Title: "Ranking", Text: "As of {asof}, we had {sr_notes} outstanding."},
		{Key: "cover", Title: "Cover", Text: "{supp_label} supplement. [Note: confirm date]"},
		{Key: "pricing", Title: "Pricing", Text: "Priced at [___] of par."},
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

// newTestServer builds a server over real services and in-memory storage.
func newTestServer(t *testing.T) (*Server, *services.DraftService) {
	t.Helper()

	lib := testLibrary(t)
	draft := services.NewDraftService(lib, memory.NewSessionStore())
	final, err := services.NewFinalService(draft)
	require.NoError(t, err)

	server, err := NewServer(&Ports{
		Draft: draft,
		Final: final,
		Lint:  services.NewLintService(lib.Catalog, false),
	})
	require.NoError(t, err)
	return server, draft
}

func TestNewServer(t *testing.T) {
	t.Run("nil draft service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDraftService)
	})

	t.Run("draft only creates server", func(t *testing.T) {
		lib := testLibrary(t)
		ports := &Ports{
			Draft: services.NewDraftService(lib, nil),
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("all ports creates server", func(t *testing.T) {
		server, _ := newTestServer(t)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil draft service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingDraftService)
	})

	t.Run("draft only is valid", func(t *testing.T) {
		ports := &Ports{
			Draft: services.NewDraftService(testLibrary(t), nil),
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
