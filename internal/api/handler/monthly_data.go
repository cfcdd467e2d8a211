package handler

import (
	"net/http"

	"github.com/adityashm/data-analysis-dashboard/internal/domain"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/pkg/apiErrors"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
	"github.com/adityashm/data-analysis-dashboard/pkg/utils"
)

// GetMonthlyData retorna a série mensal agregada em ordem cronológica. Os
// parâmetros start_date e end_date ("2006-01-02") delimitam uma janela
// inclusiva opcional.
func GetMonthlyData(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")

		points, err := service.MonthlySeries(r.Context(), startDate, endDate)
		if err != nil {
			writeDomainError(w, r, "monthly-data", err)
			return
		}

		logger.WithFields(log.Fields{
			"months":     len(points),
			"start_date": startDate,
			"end_date":   endDate,
		}).Info("monthly-data: série mensal agregada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(monthlyRecords(points)); err != nil {
			logger.WithError(err).Error("monthly-data: erro ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
		}
	})
}

func monthlyRecords(points []*domain.MonthlyPoint) []*domain.MonthlyRecord {
	records := make([]*domain.MonthlyRecord, 0, len(points))

	for _, point := range points {
		records = append(records, &domain.MonthlyRecord{
			Month:           point.Month,
			TotalSales:      utils.RoundWithTwoDecimalPlace(domain.Amount(point.TotalSalesCents)),
			TotalExpenses:   utils.RoundWithTwoDecimalPlace(domain.Amount(point.TotalExpensesCents)),
			TotalUnits:      point.TotalUnits,
			ProfitMarginPct: utils.RoundWithTwoDecimalPlace(point.ProfitMarginPct),
		})
	}

	return records
}
