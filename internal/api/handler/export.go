package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/adityashm/data-analysis-dashboard/internal/domain"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/pkg/apiErrors"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

const csvExportFilename = "sales_report.csv"

// Cabeçalho fixo do relatório; os clientes dependem da ordem das colunas.
var csvExportHeader = []string{"Month", "Sales", "Expenses", "Profit_Margin", "Units"}

// ExportCSV devolve a série mensal completa como um arquivo CSV anexo, com
// uma linha por mês em ordem cronológica.
func ExportCSV(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		points, err := service.MonthlySeries(r.Context(), "", "")
		if err != nil {
			writeDomainError(w, r, "export", err)
			return
		}

		buf := &bytes.Buffer{}
		writer := csv.NewWriter(buf)

		if err := writer.Write(csvExportHeader); err != nil {
			logger.WithError(err).Error("export: erro ao escrever o cabeçalho do relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
			return
		}

		for _, point := range points {
			row := []string{
				point.Month,
				fmt.Sprintf("%.2f", domain.Amount(point.TotalSalesCents)),
				fmt.Sprintf("%.2f", domain.Amount(point.TotalExpensesCents)),
				fmt.Sprintf("%.2f", point.ProfitMarginPct),
				strconv.FormatInt(point.TotalUnits, 10),
			}

			if err := writer.Write(row); err != nil {
				logger.WithError(err).Error("export: erro ao escrever uma linha do relatório")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithError(err).Error("export: erro ao finalizar o relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
			return
		}

		logger.WithFields(log.Fields{
			"months": len(points),
		}).Info("export: relatório CSV gerado com sucesso")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", csvExportFilename))

		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("export: erro ao enviar o relatório")
		}
	})
}
