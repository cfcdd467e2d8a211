package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/adityashm/data-analysis-dashboard/infrastructure/repository"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/aggregating"
	"github.com/adityashm/data-analysis-dashboard/internal/usecases/charting"
	"github.com/adityashm/data-analysis-dashboard/pkg/apiErrors"
	"github.com/adityashm/data-analysis-dashboard/pkg/log"
)

// genericErrorMessage é a única mensagem devolvida ao cliente quando um erro
// do domínio chega à borda da API. O detalhe fica apenas no log.
const genericErrorMessage = "Internal server error"

// writeDomainError classifica o erro do domínio, registra o detalhe no log e
// responde com o código da taxonomia correspondente.
func writeDomainError(w http.ResponseWriter, r *http.Request, component string, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var storeErr *repository.StoreError
	if errors.As(err, &storeErr) {
		logger.WithField("op", storeErr.Op).Errorf("%s: armazenamento indisponível", component)
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, genericErrorMessage, nil)
		return
	}

	switch {
	case errors.Is(err, repository.ErrStoreUnavailable):
		logger.Errorf("%s: armazenamento indisponível", component)
		apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, genericErrorMessage, nil)
	case errors.Is(err, aggregating.ErrInvalidRange):
		logger.Errorf("%s: janela de datas rejeitada", component)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRange, genericErrorMessage, nil)
	case errors.Is(err, charting.ErrInvalidSeries):
		logger.Errorf("%s: série incompatível com o gráfico", component)
		apiErrors.WriteError(w, apiErrors.ErrInvalidSeries, genericErrorMessage, nil)
	default:
		logger.Errorf("%s: erro inesperado", component)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, genericErrorMessage, nil)
	}
}
