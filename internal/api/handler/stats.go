package handler

import (
	"net/http"

	"github.com/adityashm/data-analysis-dashboard/internal/domain"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/summarizing"
	"github.com/adityashm/data-analysis-dashboard/pkg/apiErrors"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
	"github.com/adityashm/data-analysis-dashboard/pkg/utils"
)

// GetStats retorna as estatísticas consolidadas de todo o armazenamento.
func GetStats(service summarizing.Summarizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		stats, err := service.Summary(r.Context())
		if err != nil {
			writeDomainError(w, r, "stats", err)
			return
		}

		logger.WithFields(log.Fields{
			"trading_days": stats.TradingDays,
			"total_units":  stats.TotalUnits,
		}).Info("stats: estatísticas consolidadas com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(statsResponse(stats)); err != nil {
			logger.WithError(err).Error("stats: erro ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
		}
	})
}

// statsResponse arredonda os valores para duas casas decimais na borda da API.
func statsResponse(stats *domain.SummaryStats) *domain.SummaryStatsResponse {
	return &domain.SummaryStatsResponse{
		TotalSales:     utils.RoundWithTwoDecimalPlace(domain.Amount(stats.TotalSalesCents)),
		TotalExpenses:  utils.RoundWithTwoDecimalPlace(domain.Amount(stats.TotalExpensesCents)),
		TotalProfit:    utils.RoundWithTwoDecimalPlace(domain.Amount(stats.TotalProfitCents)),
		AvgSales:       utils.RoundWithTwoDecimalPlace(stats.AvgSales),
		AvgMargin:      utils.RoundWithTwoDecimalPlace(stats.AvgMargin),
		MaxSales:       utils.RoundWithTwoDecimalPlace(stats.MaxSales),
		MinSales:       utils.RoundWithTwoDecimalPlace(stats.MinSales),
		TradingDays:    stats.TradingDays,
		TotalUnits:     stats.TotalUnits,
		AvgUnitsPerDay: utils.RoundWithTwoDecimalPlace(stats.AvgUnitsPerDay),
	}
}
