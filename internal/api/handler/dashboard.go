package handler

import (
	"html/template"
	"net/http"

	"github.com/adityashm/data-analysis-dashboard/pkg/log"
	"github.com/adityashm/data-analysis-dashboard/web"
)

// DashboardHandler serve a página do dashboard. Os dados são carregados pelo
// cliente através dos endpoints /api.
func DashboardHandler() http.Handler {
	tmpl := template.Must(template.ParseFS(web.Templates, "templates/index.html"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if err := tmpl.Execute(w, nil); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: erro ao renderizar a página")
		}
	})
}
