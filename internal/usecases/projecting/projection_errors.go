package projecting

import (
	"errors"
	"fmt"
)

var (
	ErrPartnerNotFound   = errors.New("parceiro não encontrado")
	ErrMissingPartnerID  = errors.New("id do parceiro é obrigatório")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// ProjectionError é um erro com o código da API associado
type ProjectionError struct {
	Err     error
	Code    string
	Details string
}

func (e *ProjectionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProjectionError) Unwrap() error {
	return e.Err
}

func NewProjectionError(baseErr error, code string, details string) *ProjectionError {
	return &ProjectionError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
