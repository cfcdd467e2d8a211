package handler

import (
	"net/http"

	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

// NotFoundHandler responde rotas desconhecidas com o corpo fixo esperado
// pelo cliente, sem o envelope de código da taxonomia.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"path":   r.URL.Path,
			"method": r.Method,
		}).Warn("router: rota desconhecida")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)

		if err := json.NewEncoder(w).Encode(map[string]string{"error": "Endpoint not found"}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("router: erro ao codificar a resposta")
		}
	})
}
