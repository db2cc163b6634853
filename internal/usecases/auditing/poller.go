package auditing

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollMaxWait  = 15 * time.Minute

	// falhas seguidas de rede toleradas antes de desistir
	maxConsecutiveFetchErrors = 3
)

// SnapshotFetcher busca o estado atual de uma auditoria no backend
type SnapshotFetcher interface {
	GetAudit(ctx context.Context, auditID string) (*domain.AuditSnapshot, error)
}

// StatusChangeFunc é chamada a cada mudança de status observada, inclusive a primeira
type StatusChangeFunc func(previous, current domain.AuditStatus)

// Poller consulta o backend em intervalo fixo até a auditoria chegar a um estado terminal
type Poller struct {
	fetcher  SnapshotFetcher
	interval time.Duration
	maxWait  time.Duration
}

func NewPoller(fetcher SnapshotFetcher, interval, maxWait time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		maxWait:  maxWait,
	}
}

// WaitForCompletion busca imediatamente e depois a cada tick. Para quando o status é
// terminal, quando ctx é cancelado ou quando maxWait expira.
func (p *Poller) WaitForCompletion(ctx context.Context, auditID string, onChange StatusChangeFunc) (*domain.AuditSnapshot, error) {
	parent := ctx
	if p.maxWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.maxWait)
		defer cancel()
	}

	logger := log.ForContext(log.WithAuditID(ctx, auditID))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var previous domain.AuditStatus
	fetchErrors := 0

	for {
		snapshot, err := p.fetcher.GetAudit(ctx, auditID)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil, p.stopReason(parent, auditID)
		case err != nil:
			if errors.Is(err, ErrAuditNotFound) || errors.Is(err, ErrInvalidAuditID) {
				return nil, err
			}
			fetchErrors++
			logger.WithError(err).Warnf("Falha ao consultar auditoria (%d/%d)", fetchErrors, maxConsecutiveFetchErrors)
			if fetchErrors >= maxConsecutiveFetchErrors {
				return nil, NewAuditError(ErrExternalService, apiErrors.ErrExternalService, auditID, err.Error())
			}
		default:
			fetchErrors = 0

			current := snapshot.Status
			if !current.IsValid() {
				return snapshot, NewAuditError(ErrUnknownStatus, apiErrors.ErrExternalService, auditID, string(current))
			}

			if current != previous {
				if previous != "" && !previous.CanTransitionTo(current) {
					logger.WithField("status", current).Warnf("Transição de status fora de ordem: %s -> %s", previous, current)
				}
				if onChange != nil {
					onChange(previous, current)
				}
				previous = current
			}

			if current == domain.AuditStatusFailed {
				return snapshot, NewAuditError(ErrAuditFailed, apiErrors.ErrAuditFailed, auditID, "")
			}
			if current.IsTerminal() {
				return snapshot, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, p.stopReason(parent, auditID)
		case <-ticker.C:
		}
	}
}

// stopReason diferencia cancelamento externo de estouro do tempo máximo
func (p *Poller) stopReason(parent context.Context, auditID string) error {
	if err := parent.Err(); err != nil {
		return err
	}
	return NewAuditError(ErrPollTimeout, apiErrors.ErrAuditPending, auditID, p.maxWait.String())
}
