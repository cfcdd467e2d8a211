package aggregating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository/mocks"
	"github.com/adityashm/data-analysis-dashboard/internal/domain"
)

func TestService_MonthlySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := NewService(mockRecordRepo)

	twoMonths := func() []*domain.MonthlyPoint {
		return []*domain.MonthlyPoint{
			{Month: "2024-01", TotalSalesCents: 100_000, TotalExpensesCents: 60_000, TotalUnits: 150},
			{Month: "2024-02", TotalSalesCents: 200_000, TotalExpensesCents: 100_000, TotalUnits: 300},
		}
	}

	tests := []struct {
		name      string
		startDate string
		endDate   string
		setup     func()
		validate  func(t *testing.T, points []*domain.MonthlyPoint, err error)
	}{
		{
			name: "Deve calcular a margem de cada mês sobre as somas completas",
			setup: func() {
				mockRecordRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return(twoMonths(), nil)
			},
			validate: func(t *testing.T, points []*domain.MonthlyPoint, err error) {
				assert.NoError(t, err)
				assert.Len(t, points, 2)

				// Vendas 1000.00 e despesas 600.00 -> margem 40%
				assert.Equal(t, "2024-01", points[0].Month)
				assert.Equal(t, 40.0, points[0].ProfitMarginPct)

				// Vendas 2000.00 e despesas 1000.00 -> margem 50%
				assert.Equal(t, "2024-02", points[1].Month)
				assert.Equal(t, 50.0, points[1].ProfitMarginPct)
			},
		},
		{
			name: "Deve definir margem 0 quando o mês não tem vendas",
			setup: func() {
				mockRecordRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return([]*domain.MonthlyPoint{
						{Month: "2024-03", TotalSalesCents: 0, TotalExpensesCents: 50_000},
					}, nil)
			},
			validate: func(t *testing.T, points []*domain.MonthlyPoint, err error) {
				assert.NoError(t, err)
				assert.Len(t, points, 1)
				assert.Equal(t, 0.0, points[0].ProfitMarginPct)
			},
		},
		{
			name: "Deve retornar a mesma série em chamadas repetidas",
			setup: func() {
				mockRecordRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					DoAndReturn(func(ctx context.Context, filter *domain.RangeFilter) ([]*domain.MonthlyPoint, error) {
						return twoMonths(), nil
					}).
					Times(2)
			},
			validate: func(t *testing.T, points []*domain.MonthlyPoint, err error) {
				assert.NoError(t, err)

				again, err := service.MonthlySeries(context.Background(), "", "")
				assert.NoError(t, err)
				assert.Equal(t, points, again)
			},
		},
		{
			name:      "Deve repassar o filtro de datas ao repositório",
			startDate: "2024-01-01",
			endDate:   "2024-06-30",
			setup: func() {
				mockRecordRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, filter *domain.RangeFilter) ([]*domain.MonthlyPoint, error) {
						assert.NotNil(t, filter)
						assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
						assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *filter.EndDate)
						return []*domain.MonthlyPoint{}, nil
					})
			},
			validate: func(t *testing.T, points []*domain.MonthlyPoint, err error) {
				assert.NoError(t, err)
				assert.Empty(t, points)
			},
		},
		{
			name:      "Deve falhar quando a data inicial é malformada",
			startDate: "01/01/2024",
			setup:     func() {},
			validate: func(t *testing.T, points []*domain.MonthlyPoint, err error) {
				assert.ErrorIs(t, err, ErrInvalidRange)
				assert.Nil(t, points)
			},
		},
		{
			name:      "Deve falhar quando o intervalo está invertido",
			startDate: "2024-06-30",
			endDate:   "2024-01-01",
			setup:     func() {},
			validate: func(t *testing.T, points []*domain.MonthlyPoint, err error) {
				assert.ErrorIs(t, err, ErrInvalidRange)
				assert.Nil(t, points)
			},
		},
		{
			name: "Deve propagar o erro do repositório",
			setup: func() {
				mockRecordRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, points []*domain.MonthlyPoint, err error) {
				assert.Error(t, err)
				assert.Nil(t, points)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			points, err := service.MonthlySeries(context.Background(), tt.startDate, tt.endDate)

			if tt.validate != nil {
				tt.validate(t, points, err)
			}
		})
	}
}

func TestService_CategoryBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockRecordRepository(ctrl)
	service := NewService(mockRecordRepo)

	t.Run("Deve repassar o consolidado na ordem produzida pelo repositório", func(t *testing.T) {
		breakdown := []*domain.CategoryStat{
			{Category: "Electronics", TotalSalesCents: 500_000, TotalExpensesCents: 300_000, ProfitCents: 200_000, TransactionCount: 120},
			{Category: "Books", TotalSalesCents: 100_000, TotalExpensesCents: 40_000, ProfitCents: 60_000, TransactionCount: 80},
		}

		mockRecordRepo.EXPECT().
			CategoryBreakdown(gomock.Any()).
			Return(breakdown, nil)

		result, err := service.CategoryBreakdown(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, breakdown, result)
	})

	t.Run("Deve propagar o erro do repositório", func(t *testing.T) {
		mockRecordRepo.EXPECT().
			CategoryBreakdown(gomock.Any()).
			Return(nil, assert.AnError)

		result, err := service.CategoryBreakdown(context.Background())

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		wantNil   bool
		wantErr   bool
	}{
		{
			name:      "Sem limites deve retornar filtro nulo",
			startDate: "",
			endDate:   "",
			wantNil:   true,
		},
		{
			name:      "Apenas data inicial é permitido",
			startDate: "2024-01-01",
		},
		{
			name:    "Apenas data final é permitido",
			endDate: "2024-12-31",
		},
		{
			name:      "Data final malformada deve falhar",
			startDate: "2024-01-01",
			endDate:   "31-12-2024",
			wantErr:   true,
		},
		{
			name:      "Limites iguais são um intervalo válido",
			startDate: "2024-05-10",
			endDate:   "2024-05-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := parseRange(tt.startDate, tt.endDate)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}

			assert.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, filter)
			} else {
				assert.NotNil(t, filter)
			}
		})
	}
}
