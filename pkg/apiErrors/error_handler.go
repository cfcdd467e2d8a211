package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro expostos pela API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_002" // Formato de dados inválido

	// Erros de agregação e gráficos
	ErrInvalidRange  = "AGG_001" // Janela de datas inválida
	ErrInvalidSeries = "CHT_001" // Série malformada para construção de gráfico

	// Erros do servidor (5000-5999)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrStoreUnavailable = "SRV_002" // Armazenamento de registros indisponível

	// Erros de roteamento
	ErrEndpointNotFound = "NF_001" // Rota inexistente
)

// Mapeamento de códigos de erro para status HTTP. Os erros da taxonomia de
// agregação respondem 500 com corpo genérico: o detalhe fica apenas no log,
// nunca na resposta.
var httpStatusMap = map[string]int{
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrInvalidRange:     http.StatusInternalServerError,
	ErrInvalidSeries:    http.StatusInternalServerError,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrStoreUnavailable: http.StatusInternalServerError,
	ErrEndpointNotFound: http.StatusNotFound,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error   string `json:"error"`             // Mensagem genérica para o cliente
	Code    string `json:"code,omitempty"`    // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
