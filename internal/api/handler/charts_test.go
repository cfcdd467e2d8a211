package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository/mocks"
	"github.com/adityashm/data-analysis-dashboard/internal/domain"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/charting"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

func TestGetCharts(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	chartsHandler := GetCharts(aggregating.NewService(mockRepo), charting.NewService())

	monthlyPoints := []*domain.MonthlyPoint{
		{Month: "2024-01", TotalSalesCents: 100_000, TotalExpensesCents: 60_000, TotalUnits: 11},
		{Month: "2024-02", TotalSalesCents: 200_000, TotalExpensesCents: 100_000, TotalUnits: 17},
	}

	categoryStats := []*domain.CategoryStat{
		{Category: "Electronics", TotalSalesCents: 210_000, TotalExpensesCents: 115_000, ProfitCents: 95_000, TransactionCount: 2},
		{Category: "Books", TotalSalesCents: 90_000, TotalExpensesCents: 45_000, ProfitCents: 45_000, TransactionCount: 2},
	}

	testCases := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Deve montar os quatro descritores de gráfico do dashboard",
			setup: func() {
				mockRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return(monthlyPoints, nil)

				mockRepo.EXPECT().
					CategoryBreakdown(gomock.Any()).
					Return(categoryStats, nil)
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)

				charts := &domain.ChartCollection{}
				err := json.NewDecoder(recorder.Body).Decode(charts)

				assert.NoError(t, err)

				assert.Len(t, charts.SalesChart.Data, 2)
				assert.Equal(t, []interface{}{"2024-01", "2024-02"}, charts.SalesChart.Data[0].X)
				assert.Equal(t, []interface{}{1000.0, 2000.0}, charts.SalesChart.Data[0].Y)
				assert.Equal(t, []interface{}{600.0, 1000.0}, charts.SalesChart.Data[1].Y)

				assert.Len(t, charts.MarginChart.Data, 1)
				assert.Equal(t, []interface{}{40.0, 50.0}, charts.MarginChart.Data[0].Y)
				assert.Equal(t, "tozeroy", charts.MarginChart.Data[0].Fill)

				// A ordem das categorias vem da agregação e nunca é reordenada
				assert.Equal(t, []interface{}{"Electronics", "Books"}, charts.CategoryChart.Data[0].X)
				assert.Equal(t, []interface{}{2100.0, 900.0}, charts.CategoryChart.Data[0].Y)

				assert.Equal(t, []interface{}{11.0, 17.0}, charts.UnitsChart.Data[0].Y)

				assert.Equal(t, 400, charts.SalesChart.Layout.Height)
				assert.Equal(t, "plotly_white", charts.SalesChart.Layout.Template)
			},
		},
		{
			name: "Deve responder 500 com o corpo genérico quando a agregação por categoria falha",
			setup: func() {
				mockRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return(monthlyPoints, nil)

				mockRepo.EXPECT().
					CategoryBreakdown(gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"error":"Internal server error"`)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/api/charts", nil)

			chartsHandler.ServeHTTP(recorder, request)

			tc.validate(t, recorder)
		})
	}
}
