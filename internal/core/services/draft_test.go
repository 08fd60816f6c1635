package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

func newTestDraft(t *testing.T) (*DraftService, *memory.SessionStore) {
	t.Helper()
	store := memory.NewSessionStore()
	svc := NewDraftService(testLibrary(t), store)
	svc.now = func() time.Time { return time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestDraftService_SetValue_Render(t *testing.T) {
	svc, _ := newTestDraft(t)

	require.NoError(t, svc.SetValue("sr_notes", "$16,000.0 million"))
	got, err := svc.RenderSection("ranking")
	require.NoError(t, err)
	assert.Equal(t, "As of March 30, 2025, we had $16,000.0 million outstanding.", got.Text)

	v, err := svc.ResolvedValue("sr_notes")
	require.NoError(t, err)
	assert.Equal(t, "$16,000.0 million", v)
}

func TestDraftService_UnknownVariable(t *testing.T) {
	svc, _ := newTestDraft(t)

	assert.ErrorIs(t, svc.SetValue("unknown_var", "x"), domain.ErrUnknownVariable)
	assert.ErrorIs(t, svc.ClearValue("unknown_var"), domain.ErrUnknownVariable)
	_, err := svc.ResolvedValue("unknown_var")
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)
	_, err = svc.Variable("unknown_var")
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)
}

func TestDraftService_RevertIsIdempotent(t *testing.T) {
	svc, _ := newTestDraft(t)

	before := svc.RedlineAll()
	require.NoError(t, svc.SetValue("sr_notes", "$16,000.0 million"))
	require.NoError(t, svc.SetValue("sr_notes", "$15,700.0 million"))

	assert.Equal(t, before, svc.RedlineAll())
	assert.Equal(t, 0, svc.Progress().Touched)
}

func TestDraftService_ClearValue(t *testing.T) {
	svc, _ := newTestDraft(t)
	require.NoError(t, svc.SetValue("supp_label", "Thirteenth"))
	require.NoError(t, svc.ClearValue("supp_label"))

	v, err := svc.ResolvedValue("supp_label")
	require.NoError(t, err)
	assert.Equal(t, "Twelfth", v)
}

func TestDraftService_SetOverride(t *testing.T) {
	svc, _ := newTestDraft(t)

	require.NoError(t, svc.SetOverride("ranking", "Completely replaced text."))
	text, ok := svc.Override("ranking")
	require.True(t, ok)
	assert.Equal(t, "Completely replaced text.", text)

	rendered, err := svc.RenderSection("ranking")
	require.NoError(t, err)
	assert.Equal(t, "Completely replaced text.", rendered.Text)
	assert.Equal(t, []string{"ranking"}, svc.Overrides())

	require.NoError(t, svc.ClearOverride("ranking"))
	_, ok = svc.Override("ranking")
	assert.False(t, ok)
}

func TestDraftService_SetOverride_PriorTextClears(t *testing.T) {
	svc, _ := newTestDraft(t)
	require.NoError(t, svc.SetOverride("ranking", "Something else."))

	prior := "As of March 30, 2025, we had $15,700.0 million outstanding."
	require.NoError(t, svc.SetOverride("ranking", prior))
	_, ok := svc.Override("ranking")
	assert.False(t, ok)

	require.NoError(t, svc.SetOverride("ranking", "Something else."))
	require.NoError(t, svc.SetOverride("ranking", ""))
	assert.Equal(t, 0, svc.Progress().Overridden)
}

func TestDraftService_SetOverride_UnknownSection(t *testing.T) {
	svc, _ := newTestDraft(t)
	assert.ErrorIs(t, svc.SetOverride("missing", "x"), domain.ErrSectionNotFound)
	assert.ErrorIs(t, svc.ClearOverride("missing"), domain.ErrSectionNotFound)
}

func TestDraftService_Progress(t *testing.T) {
	svc, _ := newTestDraft(t)
	require.NoError(t, svc.SetValue("asof", "June 29, 2025"))
	require.NoError(t, svc.SetValue("sr_notes", "$16,000.0 million"))
	require.NoError(t, svc.SetOverride("indenture", "Rewritten."))

	assert.Equal(t, domain.Progress{Total: 4, Changed: 2, Touched: 2, Overridden: 1}, svc.Progress())
}

func TestDraftService_VariablesBySource(t *testing.T) {
	svc, _ := newTestDraft(t)

	groups := svc.VariablesBySource()
	require.Len(t, groups[domain.SourceSystem], 2)
	assert.Equal(t, "asof", groups[domain.SourceSystem][0].Definition.ID)
	require.Len(t, groups[domain.SourceCounsel], 2)
	assert.Empty(t, groups[domain.SourceClient])

	assert.Len(t, svc.Variables(), 4)
}

func TestDraftService_SectionVariables(t *testing.T) {
	svc, _ := newTestDraft(t)
	require.NoError(t, svc.SetValue("asof", "June 29, 2025"))

	states, err := svc.SectionVariables("ranking")
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "asof", states[0].Definition.ID)
	assert.Equal(t, "June 29, 2025", states[0].Value)
	assert.True(t, states[0].Changed)
	assert.False(t, states[1].Changed)
}

func TestDraftService_SaveAndLoad(t *testing.T) {
	svc, store := newTestDraft(t)
	ctx := context.Background()

	require.NoError(t, svc.SetValue("asof", "June 29, 2025"))
	require.NoError(t, svc.SetOverride("indenture", "Rewritten."))
	require.NoError(t, svc.Save(ctx))

	id := svc.SessionID()
	require.NotEmpty(t, id)

	saved, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"asof": "June 29, 2025"}, saved.Values)
	assert.Equal(t, map[string]string{"indenture": "Rewritten."}, saved.Overrides)
	assert.Equal(t, svc.now(), saved.CreatedAt)

	// Saving again keeps the same id.
	require.NoError(t, svc.Save(ctx))
	assert.Equal(t, id, svc.SessionID())

	fresh := NewDraftService(svc.Library(), store)
	require.NoError(t, fresh.Load(ctx, id))
	assert.Equal(t, id, fresh.SessionID())
	assert.Equal(t, svc.RenderAll(), fresh.RenderAll())
}

func TestDraftService_Load_DropsStaleEntries(t *testing.T) {
	svc, store := newTestDraft(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Session{
		ID:        "sess-1",
		Values:    map[string]string{"asof": "June 29, 2025", "removed_var": "x", "sr_notes": "$15,700.0 million"},
		Overrides: map[string]string{"indenture": "Rewritten.", "removed_section": "y"},
	}))

	require.NoError(t, svc.Load(ctx, "sess-1"))
	values, overrides := svc.Snapshot()
	assert.Equal(t, map[string]string{"asof": "June 29, 2025"}, values)
	assert.Equal(t, map[string]string{"indenture": "Rewritten."}, overrides)
}

func TestDraftService_Load_NotFound(t *testing.T) {
	svc, _ := newTestDraft(t)
	err := svc.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDraftService_NoSessionStore(t *testing.T) {
	svc := NewDraftService(testLibrary(t), nil)
	assert.ErrorIs(t, svc.Save(context.Background()), domain.ErrNotImplemented)
	assert.ErrorIs(t, svc.Load(context.Background(), "x"), domain.ErrNotImplemented)
}

func TestDraftService_ConcurrentAccess(t *testing.T) {
	svc, _ := newTestDraft(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if n%2 == 0 {
				_ = svc.SetValue("asof", "June 29, 2025")
			} else {
				_ = svc.ClearValue("asof")
			}
			_ = svc.RedlineAll()
			_ = svc.Progress()
		}(i)
	}
	wg.Wait()
}
