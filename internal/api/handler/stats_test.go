package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository"
	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository/mocks"
	"github.com/adityashm/data-analysis-dashboard/internal/domain"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/summarizing"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

func TestGetStats(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	statsHandler := GetStats(summarizing.NewService(mockRepo))

	testCases := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Deve responder as estatísticas consolidadas com duas casas decimais",
			setup: func() {
				mockRepo.EXPECT().
					SummaryAggregates(gomock.Any()).
					Return(&domain.StoreTotals{
						TotalSalesCents:    300_000,
						TotalExpensesCents: 160_000,
						TotalUnits:         450,
						TradingDays:        60,
					}, nil)

				mockRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return([]*domain.MonthlyPoint{
						{Month: "2024-01", TotalSalesCents: 100_000, TotalExpensesCents: 60_000, TotalUnits: 150},
						{Month: "2024-02", TotalSalesCents: 200_000, TotalExpensesCents: 100_000, TotalUnits: 300},
					}, nil)
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

				response := &domain.SummaryStatsResponse{}
				err := json.NewDecoder(recorder.Body).Decode(response)

				assert.NoError(t, err)
				assert.Equal(t, &domain.SummaryStatsResponse{
					TotalSales:     3000,
					TotalExpenses:  1600,
					TotalProfit:    1400,
					AvgSales:       1500,
					AvgMargin:      45,
					MaxSales:       2000,
					MinSales:       1000,
					TradingDays:    60,
					TotalUnits:     450,
					AvgUnitsPerDay: 7.5,
				}, response)
			},
		},
		{
			name: "Deve responder 500 com o corpo genérico quando o armazenamento está indisponível",
			setup: func() {
				mockRepo.EXPECT().
					SummaryAggregates(gomock.Any()).
					Return(nil, repository.NewStoreError(repository.ErrStoreUnavailable, "SummaryAggregates", "database is locked"))
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.Contains(t, recorder.Body.String(), `"error":"Internal server error"`)
				assert.Contains(t, recorder.Body.String(), "SRV_002")
				assert.NotContains(t, recorder.Body.String(), "database is locked")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/api/stats", nil)

			statsHandler.ServeHTTP(recorder, request)

			tc.validate(t, recorder)
		})
	}
}
