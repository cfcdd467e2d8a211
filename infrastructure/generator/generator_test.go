package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampleGenerator_GenerateYear(t *testing.T) {
	g := NewSampleGenerator()

	t.Run("Deve gerar o mesmo conjunto para o mesmo ano", func(t *testing.T) {
		first := g.GenerateYear(2024)
		second := g.GenerateYear(2024)

		assert.Equal(t, first, second)
	})

	t.Run("Deve gerar um registro por dia e por categoria", func(t *testing.T) {
		records := g.GenerateYear(2024)

		// 2024 é bissexto: 366 dias x 5 categorias
		assert.Len(t, records, 366*len(categoryProfiles))
	})

	t.Run("Deve fechar as metas mensais exatamente", func(t *testing.T) {
		records := g.GenerateYear(2024)

		salesByMonth := make(map[time.Month]int64)
		expensesByMonth := make(map[time.Month]int64)
		for _, record := range records {
			salesByMonth[record.Date.Month()] += record.SalesCents
			expensesByMonth[record.Date.Month()] += record.ExpensesCents
		}

		for month := time.January; month <= time.December; month++ {
			assert.Equal(t, monthlySalesTargets[month-1], salesByMonth[month], "vendas de %s", month)
			assert.Equal(t, monthlyExpenseTargets[month-1], expensesByMonth[month], "despesas de %s", month)
		}
	})

	t.Run("Deve gerar apenas valores não negativos", func(t *testing.T) {
		records := g.GenerateYear(2024)

		for _, record := range records {
			assert.GreaterOrEqual(t, record.SalesCents, int64(0))
			assert.GreaterOrEqual(t, record.ExpensesCents, int64(0))
			assert.GreaterOrEqual(t, record.UnitsSold, int64(0))
		}
	})

	t.Run("Anos diferentes devem produzir conjuntos diferentes", func(t *testing.T) {
		first := g.GenerateYear(2023)
		second := g.GenerateYear(2024)

		assert.NotEqual(t, first, second)
	})
}
