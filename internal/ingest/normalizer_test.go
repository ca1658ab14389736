package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlautopecas/adpulse/internal/common"
)

// headerRow returns the vendor header row in export order.
func headerRow() []string {
	return []string{
		"Nome",
		"Status",
		"Orçamento",
		"ACOS Objetivo",
		"Impressões",
		"Cliques",
		"Investimento\n(Moeda local)",
		"CPC \n(Custo por clique)",
		"CTR\n(Click through rate)",
		"CVR\n(Conversion rate)",
		"Receita\n(Moeda local)",
		"ACOS\n(Investimento / Receitas)",
		"ROAS\n(Receitas / Investimento)",
		"% de impressões perdidas por orçamento",
		"% de impressões perdidas por classificação",
	}
}

func dataRow(name string, values ...string) []string {
	row := make([]string, 15)
	row[0] = name
	row[1] = "Ativa"
	for i, v := range values {
		if 2+i < len(row) {
			row[2+i] = v
		}
	}
	return row
}

func TestNormalizeHeaderDiscovery(t *testing.T) {
	for k := 0; k < 10; k++ {
		t.Run(fmt.Sprintf("header at row %d", k), func(t *testing.T) {
			grid := make([][]string, 0, k+2)
			for i := 0; i < k; i++ {
				grid = append(grid, []string{"Relatório de campanha", "", "junk"})
			}
			grid = append(grid, headerRow())
			grid = append(grid, dataRow("Anuncio A", "100", "10"))

			ads, err := Normalize(grid)
			require.NoError(t, err)
			require.Len(t, ads, 1)
			assert.Equal(t, "Anuncio A", ads[0].Name)
		})
	}

	t.Run("header beyond scan window fails", func(t *testing.T) {
		grid := make([][]string, 0, 12)
		for i := 0; i < 10; i++ {
			grid = append(grid, []string{"junk"})
		}
		grid = append(grid, headerRow())
		grid = append(grid, dataRow("Anuncio A"))

		_, err := Normalize(grid)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrHeaderNotFound))
	})

	t.Run("no header at all fails", func(t *testing.T) {
		_, err := Normalize([][]string{{"a", "b"}, {"c", "d"}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrHeaderNotFound))
	})
}

func TestNormalizeDropsAggregateAndNamelessRows(t *testing.T) {
	grid := [][]string{
		headerRow(),
		dataRow("Anuncio A"),
		dataRow("Total"),
		dataRow(""),
		dataRow("Anuncio B"),
		dataRow("Total"),
	}

	ads, err := Normalize(grid)
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "Anuncio A", ads[0].Name)
	assert.Equal(t, "Anuncio B", ads[1].Name)
}

func TestNormalizeLocaleCoercion(t *testing.T) {
	grid := [][]string{
		headerRow(),
		// budget, target_acos, impressions, clicks, spend, cpc, ctr, cvr,
		// revenue, acos, roas, budget_loss, ranking_loss
		dataRow("Anuncio A",
			"150,50", "10%", "1200", "45", "32,75", "0,73",
			"3,75%", "1,5%", "420,00", "7,80%", "12,82", "60%", "5%"),
	}

	ads, err := Normalize(grid)
	require.NoError(t, err)
	require.Len(t, ads, 1)

	ad := ads[0]
	assert.InDelta(t, 150.50, ad.Budget, 1e-9)
	assert.InDelta(t, 10, ad.TargetACOS, 1e-9)
	assert.InDelta(t, 1200, ad.Impressions, 1e-9)
	assert.InDelta(t, 45, ad.Clicks, 1e-9)
	assert.InDelta(t, 32.75, ad.Spend, 1e-9)
	assert.InDelta(t, 0.73, ad.CPC, 1e-9)
	assert.InDelta(t, 3.75, ad.CTR, 1e-9)
	assert.InDelta(t, 1.5, ad.CVR, 1e-9)
	assert.InDelta(t, 420.0, ad.Revenue, 1e-9)
	assert.InDelta(t, 7.80, ad.ACOS, 1e-9)
	assert.InDelta(t, 12.82, ad.ROAS, 1e-9)
	assert.InDelta(t, 60, ad.BudgetLossPct, 1e-9)
	assert.InDelta(t, 5, ad.RankingLossPct, 1e-9)
}

func TestNormalizeDefaultsMissingNumericsToZero(t *testing.T) {
	grid := [][]string{
		headerRow(),
		dataRow("Anuncio A", "", "not-a-number", "  "),
	}

	ads, err := Normalize(grid)
	require.NoError(t, err)
	require.Len(t, ads, 1)

	assert.Zero(t, ads[0].Budget)
	assert.Zero(t, ads[0].TargetACOS)
	assert.Zero(t, ads[0].Impressions)
	assert.Zero(t, ads[0].Revenue)
}

func TestCoerceNumericIdempotence(t *testing.T) {
	inputs := []string{"150,50", "10%", "3,75%", "1200", "", "garbage", "0,00"}

	for _, in := range inputs {
		once := CoerceNumeric(in)
		twice := CoerceNumeric(strconv.FormatFloat(once, 'f', -1, 64))
		assert.Equal(t, once, twice, "coercion not idempotent for %q", in)
	}
}

func TestNormalizePreservesRowOrder(t *testing.T) {
	grid := [][]string{headerRow()}
	for i := 0; i < 7; i++ {
		grid = append(grid, dataRow(fmt.Sprintf("Anuncio %d", i)))
	}

	ads, err := Normalize(grid)
	require.NoError(t, err)
	require.Len(t, ads, 7)
	for i, ad := range ads {
		assert.Equal(t, fmt.Sprintf("Anuncio %d", i), ad.Name)
	}
}

func TestNormalizeDuplicateHeaderFirstWins(t *testing.T) {
	header := headerRow()
	// A second "Receita" column later in the row must not displace the first.
	header = append(header, "Receita\n(Moeda local)")
	row := dataRow("Anuncio A", "", "", "", "", "", "", "", "", "100,00")
	row = append(row, "999,99")

	ads, err := Normalize([][]string{header, row})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.InDelta(t, 100.0, ads[0].Revenue, 1e-9)
}

func TestNormalizeDropsUnknownColumnsSilently(t *testing.T) {
	header := append(headerRow(), "Coluna Nova Do Vendor")
	row := append(dataRow("Anuncio A"), "whatever")

	ads, err := Normalize([][]string{header, row})
	require.NoError(t, err)
	require.Len(t, ads, 1)
}
