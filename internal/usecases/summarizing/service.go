package summarizing

import (
	"context"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository"
	"github.com/adityashm/data-analysis-dashboard/internal/domain"
)

// Summarizer consolida as estatísticas de todo o armazenamento
type Summarizer interface {
	Summary(ctx context.Context) (*domain.SummaryStats, error)
}

type Service struct {
	recordRepository repository.RecordRepository
}

// NewService cria uma nova instância do serviço de estatísticas
func NewService(recordRepo repository.RecordRepository) Summarizer {
	return &Service{
		recordRepository: recordRepo,
	}
}

// Summary calcula as estatísticas sobre o armazenamento completo. Médias e
// extremos de vendas são derivados da série mensal, como no restante do
// dashboard. Falhas de leitura propagam ao chamador: estatísticas zeradas
// e armazenamento indisponível são estados distintos.
func (s *Service) Summary(ctx context.Context) (*domain.SummaryStats, error) {
	totals, err := s.recordRepository.SummaryAggregates(ctx)
	if err != nil {
		return nil, err
	}

	points, err := s.recordRepository.MonthlySeries(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := &domain.SummaryStats{
		TotalSalesCents:    totals.TotalSalesCents,
		TotalExpensesCents: totals.TotalExpensesCents,
		TotalProfitCents:   totals.TotalSalesCents - totals.TotalExpensesCents,
		TotalUnits:         totals.TotalUnits,
		TradingDays:        totals.TradingDays,
	}

	tradingDays := totals.TradingDays
	if tradingDays < 1 {
		tradingDays = 1
	}
	stats.AvgUnitsPerDay = float64(totals.TotalUnits) / float64(tradingDays)

	if len(points) == 0 {
		return stats, nil
	}

	var marginSum float64
	maxSales := points[0].TotalSalesCents
	minSales := points[0].TotalSalesCents

	for _, point := range points {
		marginSum += domain.ProfitMarginPct(point.TotalSalesCents, point.TotalExpensesCents)

		if point.TotalSalesCents > maxSales {
			maxSales = point.TotalSalesCents
		}
		if point.TotalSalesCents < minSales {
			minSales = point.TotalSalesCents
		}
	}

	stats.AvgSales = domain.Amount(totals.TotalSalesCents) / float64(len(points))
	stats.AvgMargin = marginSum / float64(len(points))
	stats.MaxSales = domain.Amount(maxSales)
	stats.MinSales = domain.Amount(minSales)

	return stats, nil
}
