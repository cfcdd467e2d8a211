package charting

import (
	"errors"
	"fmt"
)

// Erros específicos para a montagem de gráficos
var (
	// ErrInvalidSeries indica vetores de entrada malformados, como eixos
	// com comprimentos diferentes.
	ErrInvalidSeries = errors.New("invalid chart series")
)

// SeriesError é um erro com contexto adicional para séries de gráfico
type SeriesError struct {
	Err     error  // Erro base
	Chart   string // Gráfico que recusou a série
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SeriesError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Chart, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Chart, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *SeriesError) Unwrap() error {
	return e.Err
}

// NewSeriesError cria um novo SeriesError
func NewSeriesError(err error, chart string, details string) *SeriesError {
	return &SeriesError{
		Err:     err,
		Chart:   chart,
		Details: details,
	}
}
