package auditing

import (
	"errors"
	"fmt"
)

var (
	ErrAuditNotFound     = errors.New("auditoria não encontrada")
	ErrInvalidAuditID    = errors.New("id de auditoria inválido")
	ErrAuditFailed       = errors.New("auditoria falhou no backend")
	ErrUnknownStatus     = errors.New("status de auditoria desconhecido")
	ErrPollTimeout       = errors.New("tempo máximo de acompanhamento excedido")
	ErrWatchNotFound     = errors.New("acompanhamento não encontrado")
	ErrWatcherStopped    = errors.New("acompanhamento encerrado")
	ErrExternalService   = errors.New("erro ao consultar o backend de auditorias")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuditError é um erro com contexto adicional da auditoria
type AuditError struct {
	Err     error
	Code    string
	AuditID string
	Details string
}

func (e *AuditError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuditError) Unwrap() error {
	return e.Err
}

func NewAuditError(baseErr error, code string, auditID string, details string) *AuditError {
	return &AuditError{
		Err:     baseErr,
		Code:    code,
		AuditID: auditID,
		Details: details,
	}
}
