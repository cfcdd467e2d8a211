package handler

import (
	"net/http"

	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/charting"
	"github.com/adityashm/data-analysis-dashboard/pkg/apiErrors"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

// GetCharts monta os quatro descritores de gráfico do dashboard a partir da
// série mensal completa e do desempenho por categoria.
func GetCharts(service aggregating.Aggregator, builder charting.ChartBuilder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		series, err := service.MonthlySeries(r.Context(), "", "")
		if err != nil {
			writeDomainError(w, r, "charts", err)
			return
		}

		breakdown, err := service.CategoryBreakdown(r.Context())
		if err != nil {
			writeDomainError(w, r, "charts", err)
			return
		}

		charts, err := builder.BuildAll(series, breakdown)
		if err != nil {
			writeDomainError(w, r, "charts", err)
			return
		}

		logger.WithFields(log.Fields{
			"months":     len(series),
			"categories": len(breakdown),
		}).Info("charts: descritores de gráfico montados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(charts); err != nil {
			logger.WithError(err).Error("charts: erro ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
		}
	})
}
