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
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

func TestExportCSV(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRecordRepository(ctrl)
	exportHandler := ExportCSV(aggregating.NewService(mockRepo))

	testCases := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Deve gerar o relatório CSV com o cabeçalho fixo e uma linha por mês",
			setup: func() {
				mockRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return([]*domain.MonthlyPoint{
						{Month: "2024-01", TotalSalesCents: 100_000, TotalExpensesCents: 60_000, TotalUnits: 11},
						{Month: "2024-02", TotalSalesCents: 200_000, TotalExpensesCents: 100_000, TotalUnits: 17},
					}, nil)
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
				assert.Equal(t, "attachment; filename=sales_report.csv", recorder.Header().Get("Content-Disposition"))

				expected := "Month,Sales,Expenses,Profit_Margin,Units\n" +
					"2024-01,1000.00,600.00,40.00,11\n" +
					"2024-02,2000.00,1000.00,50.00,17\n"

				assert.Equal(t, expected, recorder.Body.String())
			},
		},
		{
			name: "Deve gerar somente o cabeçalho para o armazenamento sem registros",
			setup: func() {
				mockRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return([]*domain.MonthlyPoint{}, nil)
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, "Month,Sales,Expenses,Profit_Margin,Units\n", recorder.Body.String())
			},
		},
		{
			name: "Deve responder 500 com o corpo genérico quando o armazenamento está indisponível",
			setup: func() {
				mockRepo.EXPECT().
					MonthlySeries(gomock.Any(), gomock.Nil()).
					Return(nil, repository.NewStoreError(repository.ErrStoreUnavailable, "MonthlySeries", "database is locked"))
			},
			validate: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.Contains(t, recorder.Body.String(), "SRV_002")
				assert.NotContains(t, recorder.Body.String(), "database is locked")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/api/export", nil)

			exportHandler.ServeHTTP(recorder, request)

			tc.validate(t, recorder)
		})
	}
}
