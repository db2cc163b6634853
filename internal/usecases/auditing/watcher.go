package auditing

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
	"github.com/vfg2006/visibility-audit-api/pkg/utils"
)

// Watcher mantém um acompanhamento em background por auditoria.
// Todos os acompanhamentos são cancelados quando o contexto raiz termina ou em Stop.
type Watcher struct {
	poller *Poller

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	watches map[string]*domain.AuditWatch
	wg      sync.WaitGroup
	stopped bool
}

func NewWatcher(ctx context.Context, poller *Poller) *Watcher {
	ctx, cancel := context.WithCancel(ctx)

	return &Watcher{
		poller:  poller,
		ctx:     ctx,
		cancel:  cancel,
		watches: make(map[string]*domain.AuditWatch),
	}
}

// Watch inicia o acompanhamento. Se já existe um em andamento ou concluído com sucesso,
// retorna o existente sem iniciar outro.
func (w *Watcher) Watch(auditID string) (*domain.AuditWatch, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil, ErrWatcherStopped
	}

	if existing, ok := w.watches[auditID]; ok && (!existing.Done || existing.Error == "") {
		snapshot := *existing
		return &snapshot, nil
	}

	id, err := utils.GeneratePrefixedID("wch")
	if err != nil {
		return nil, err
	}

	watch := &domain.AuditWatch{
		ID:        id,
		AuditID:   auditID,
		Status:    domain.AuditStatusPending,
		StartedAt: time.Now(),
	}
	w.watches[auditID] = watch

	w.wg.Add(1)
	go w.run(watch)

	snapshot := *watch
	return &snapshot, nil
}

func (w *Watcher) run(watch *domain.AuditWatch) {
	defer w.wg.Done()

	ctx := log.WithAuditID(w.ctx, watch.AuditID)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando acompanhamento da auditoria")

	_, err := w.poller.WaitForCompletion(ctx, watch.AuditID, func(_, current domain.AuditStatus) {
		w.mu.Lock()
		watch.Status = current
		w.mu.Unlock()
		logger.WithField("status", current).Debug("Status da auditoria atualizado")
	})

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	watch.Done = true
	watch.FinishedAt = &now
	if err != nil {
		watch.Error = err.Error()
		logger.WithError(err).Warn("Acompanhamento da auditoria encerrado com erro")
		return
	}

	logger.WithField("status", watch.Status).Info("Acompanhamento da auditoria concluído")
}

// Status devolve uma cópia do estado atual do acompanhamento
func (w *Watcher) Status(auditID string) (*domain.AuditWatch, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	watch, ok := w.watches[auditID]
	if !ok {
		return nil, false
	}

	snapshot := *watch
	return &snapshot, true
}

// Stop cancela todos os acompanhamentos e espera as goroutines terminarem
func (w *Watcher) Stop() {
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
}
