package repository

import (
	"errors"
	"fmt"
)

// Erros específicos do armazenamento de registros diários
var (
	// ErrStoreUnavailable indica que o banco de dados não pôde ser
	// acessado ou que a consulta falhou antes de produzir resultados.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// StoreError é um erro com o contexto da operação de armazenamento que falhou
type StoreError struct {
	Err     error  // Erro base
	Op      string // Operação do repositório que falhou
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *StoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError cria um novo StoreError
func NewStoreError(err error, op string, details string) *StoreError {
	return &StoreError{
		Err:     err,
		Op:      op,
		Details: details,
	}
}
