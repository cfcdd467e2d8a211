package aggregating

import (
	"context"
	"fmt"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository"
	"github.com/adityashm/data-analysis-dashboard/internal/domain"
	"github.com/adityashm/data-analysis-dashboard/pkg/utils"
)

// Aggregator define as agregações derivadas do armazenamento de registros
type Aggregator interface {
	// MonthlySeries produz a série mensal em ordem cronológica, com filtro
	// opcional de datas no formato "2006-01-02"
	MonthlySeries(ctx context.Context, startDate, endDate string) ([]*domain.MonthlyPoint, error)

	// CategoryBreakdown produz o consolidado por categoria, ordenado por
	// vendas decrescentes
	CategoryBreakdown(ctx context.Context) ([]*domain.CategoryStat, error)
}

type Service struct {
	recordRepository repository.RecordRepository
}

// NewService cria uma nova instância do serviço de agregação
func NewService(recordRepo repository.RecordRepository) Aggregator {
	return &Service{
		recordRepository: recordRepo,
	}
}

// MonthlySeries é uma leitura pura: o mesmo armazenamento produz sempre a
// mesma série. A margem de cada mês é calculada sobre as somas completas,
// sem arredondamento.
func (s *Service) MonthlySeries(ctx context.Context, startDate, endDate string) ([]*domain.MonthlyPoint, error) {
	filter, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	points, err := s.recordRepository.MonthlySeries(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, point := range points {
		point.ProfitMarginPct = domain.ProfitMarginPct(point.TotalSalesCents, point.TotalExpensesCents)
	}

	return points, nil
}

func (s *Service) CategoryBreakdown(ctx context.Context) ([]*domain.CategoryStat, error) {
	return s.recordRepository.CategoryBreakdown(ctx)
}

// parseRange valida o filtro inclusivo de datas. Limites ausentes são
// permitidos; limites malformados ou invertidos falham com ErrInvalidRange
// em vez de ignorar o filtro silenciosamente.
func parseRange(startDate, endDate string) (*domain.RangeFilter, error) {
	if startDate == "" && endDate == "" {
		return nil, nil
	}

	filter := &domain.RangeFilter{}

	if startDate != "" {
		start, err := utils.ParseDate(startDate)
		if err != nil {
			return nil, NewRangeError(ErrInvalidRange, fmt.Sprintf("data inicial inválida: %q", startDate))
		}
		filter.StartDate = start
	}

	if endDate != "" {
		end, err := utils.ParseDate(endDate)
		if err != nil {
			return nil, NewRangeError(ErrInvalidRange, fmt.Sprintf("data final inválida: %q", endDate))
		}
		filter.EndDate = end
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, NewRangeError(ErrInvalidRange, "a data inicial não pode ser posterior à data final")
	}

	return filter, nil
}
