package handler

import (
	"net/http"

	"github.com/adityashm/data-analysis-dashboard/internal/domain"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/pkg/apiErrors"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
	"github.com/adityashm/data-analysis-dashboard/pkg/utils"
)

// GetCategories retorna o desempenho por categoria, ordenado por vendas
// decrescentes.
func GetCategories(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		breakdown, err := service.CategoryBreakdown(r.Context())
		if err != nil {
			writeDomainError(w, r, "categories", err)
			return
		}

		logger.WithFields(log.Fields{
			"categories": len(breakdown),
		}).Info("categories: desempenho por categoria agregado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(categorySummaries(breakdown)); err != nil {
			logger.WithError(err).Error("categories: erro ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
		}
	})
}

func categorySummaries(breakdown []*domain.CategoryStat) []*domain.CategorySummary {
	summaries := make([]*domain.CategorySummary, 0, len(breakdown))

	for _, stat := range breakdown {
		summaries = append(summaries, &domain.CategorySummary{
			Category:         stat.Category,
			TotalSales:       utils.RoundWithTwoDecimalPlace(domain.Amount(stat.TotalSalesCents)),
			TotalExpenses:    utils.RoundWithTwoDecimalPlace(domain.Amount(stat.TotalExpensesCents)),
			Profit:           utils.RoundWithTwoDecimalPlace(domain.Amount(stat.ProfitCents)),
			TransactionCount: stat.TransactionCount,
		})
	}

	return summaries
}
