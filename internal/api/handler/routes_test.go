package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityashm/data-analysis-dashboard/internal/api/handler/router"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

func TestNotFoundRoute(t *testing.T) {
	log.SetupTestLogger()

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithNotFoundHandler(NotFoundHandler()),
	)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)

	rt.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Endpoint not found"}`, recorder.Body.String())
	assert.NotContains(t, recorder.Body.String(), "code")
}

func TestDashboardRoute(t *testing.T) {
	log.SetupTestLogger()

	rt := router.New(
		router.WithRoutes(Dashboard()...),
	)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	rt.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Body.String(), "Sales Analytics Dashboard")
	assert.Contains(t, recorder.Body.String(), "/api/charts")
	assert.Contains(t, recorder.Body.String(), "/api/export")
}

func TestHealthcheckRoute(t *testing.T) {
	rt := router.New(
		router.WithRoutes(Healthcheck()...),
	)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

	rt.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Body.String())
}
