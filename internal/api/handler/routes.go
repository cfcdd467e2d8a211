package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/adityashm/data-analysis-dashboard/internal/api/handler/router"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/charting"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/summarizing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardHandler(),
		},
	}
}

func Stats(service summarizing.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
	}
}

func MonthlyData(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/data",
			Method:  http.MethodGet,
			Handler: GetMonthlyData(service),
		},
	}
}

func Categories(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/categories",
			Method:  http.MethodGet,
			Handler: GetCategories(service),
		},
	}
}

func Charts(service aggregating.Aggregator, builder charting.ChartBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/api/charts",
			Method:  http.MethodGet,
			Handler: GetCharts(service, builder),
		},
	}
}

func Export(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/export",
			Method:  http.MethodGet,
			Handler: ExportCSV(service),
		},
	}
}
