package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/suppdraft/internal/core/domain"
)

const rankingText = "As of {asof}, we had {sr_notes} outstanding."

func testLibrary(t *testing.T) *domain.Library {
	t.Helper()

	catalog, err := domain.NewCatalog([]domain.VariableDefinition{
		{ID: "asof", Prior: "March 30, 2025", Source: domain.SourceSystem, Task: domain.TaskUpdate},
		{ID: "sr_notes", Prior: "$15,700.0 million", Source: domain.SourceSystem, Task: domain.TaskUpdate},
		{ID: "supp_label", Prior: "Eleventh", Suggested: "Twelfth", Source: domain.SourceCounsel, Task: domain.TaskUpdate},
		{ID: "trustee", Prior: "Computershare Trust Company", Source: domain.SourceCounsel, Task: domain.TaskVerify},
	})
	require.NoError(t, err)

	draft, err := domain.NewTemplate("draft", []domain.Section{
		{Key: "ranking", Title: "Ranking", Text: rankingText},
		{Key: "cover", Title: "Cover", Text: "{supp_label} Supplement dated [___]. [Note: confirm date with banks]"},
		{Key: "indenture", Title: "Indenture", Text: "Issued to {trustee}, as trustee."},
	})
	require.NoError(t, err)

	final, err := domain.NewTemplate("final", []domain.Section{
		{Key: "ranking", Title: "Ranking", Text: rankingText},
		{Key: "cover", Title: "Cover", Text: "{supp_label} Supplement for {deal_size} of notes."},
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
				{ID: "sr_notes", Label: "Senior notes", Value: "$16,000.0 million", Section: "ranking"},
				{ID: "deal_size", Label: "Total Deal Size", Value: "$1,750,000,000", Section: "cover"},
				{ID: "coupon_2028", Label: "2028 Notes - Coupon", Value: "4.600%", Section: "pricing"},
			},
		},
	}
}
