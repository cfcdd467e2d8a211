package aggregating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de agregação
var (
	// ErrInvalidRange indica um filtro de datas malformado ou com os
	// limites invertidos.
	ErrInvalidRange = errors.New("invalid date range")
)

// RangeError é um erro com contexto adicional para filtros de data
type RangeError struct {
	Err     error  // Erro base
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RangeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RangeError) Unwrap() error {
	return e.Err
}

// NewRangeError cria um novo RangeError
func NewRangeError(err error, details string) *RangeError {
	return &RangeError{
		Err:     err,
		Details: details,
	}
}
