package auditing

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi"
	"github.com/vfg2006/visibility-audit-api/infrastructure/repository"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/scoring"
	"github.com/vfg2006/visibility-audit-api/pkg/apiErrors"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/auditor_mock.go -package=mocks
type Auditor interface {
	GetReport(ctx context.Context, auditID string) (*domain.AuditReport, error)
	WatchAudit(ctx context.Context, auditID string) (*domain.AuditWatch, error)
	GetWatch(ctx context.Context, auditID string) (*domain.AuditWatch, error)
	ListFixServices(ctx context.Context) ([]*domain.FixService, error)
}

type Service struct {
	fetcher        SnapshotFetcher
	fixServiceRepo repository.FixServiceRepository
	watcher        *Watcher
}

func NewService(integrator auditapi.Integrator, fixServiceRepo repository.FixServiceRepository, watcher *Watcher) Auditor {
	return &Service{
		fetcher:        NewIntegratorFetcher(integrator),
		fixServiceRepo: fixServiceRepo,
		watcher:        watcher,
	}
}

// GetReport monta o relatório de uma auditoria. Enquanto não termina, só o status é preenchido.
func (s *Service) GetReport(ctx context.Context, auditID string) (*domain.AuditReport, error) {
	snapshot, err := s.fetcher.GetAudit(ctx, auditID)
	if err != nil {
		return nil, err
	}

	report := &domain.AuditReport{
		AuditID:      snapshot.ID,
		BusinessName: snapshot.BusinessName,
		Status:       snapshot.Status,
		GeneratedAt:  time.Now(),
	}

	if !snapshot.Status.IsValid() {
		return nil, NewAuditError(ErrUnknownStatus, apiErrors.ErrExternalService, auditID, string(snapshot.Status))
	}

	if snapshot.Status != domain.AuditStatusComplete {
		return report, nil
	}

	catalog, err := s.catalogByType(ctx)
	if err != nil {
		// relatório segue sem o serviço de correção resolvido
		log.ForContext(ctx).WithError(err).Warn("Não foi possível carregar o catálogo de serviços")
	}

	card := scoring.ScoreCardFor(snapshot)
	losses := scoring.AggregateLoss(snapshot.MoneyLeaks)

	report.ScoreCard = &card
	report.Losses = &losses
	report.EstimatedMonthlyLoss = snapshot.EstimatedMonthlyLoss
	report.LeaksByPriority = scoring.CountByPriority(snapshot.MoneyLeaks)
	report.Opportunity = scoring.OpportunityLevelFor(card.Overall)
	report.MoneyLeaks = make([]domain.ReportMoneyLeak, 0, len(snapshot.MoneyLeaks))

	for _, leak := range snapshot.MoneyLeaks {
		item := domain.ReportMoneyLeak{MoneyLeak: leak}
		if leak.FixServiceRef != nil {
			item.FixService = catalog[*leak.FixServiceRef]
		}
		report.MoneyLeaks = append(report.MoneyLeaks, item)
	}

	return report, nil
}

func (s *Service) catalogByType(ctx context.Context) (map[domain.FixServiceType]*domain.FixService, error) {
	services, err := s.fixServiceRepo.ListFixServices(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[domain.FixServiceType]*domain.FixService, len(services))
	for _, service := range services {
		catalog[service.Type] = service
	}

	return catalog, nil
}

func (s *Service) WatchAudit(ctx context.Context, auditID string) (*domain.AuditWatch, error) {
	if auditID == "" {
		return nil, NewAuditError(ErrInvalidAuditID, apiErrors.ErrInvalidRequest, auditID, "")
	}

	watch, err := s.watcher.Watch(auditID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao iniciar acompanhamento")
		return nil, NewAuditError(err, apiErrors.ErrInternalServer, auditID, "")
	}

	return watch, nil
}

func (s *Service) GetWatch(_ context.Context, auditID string) (*domain.AuditWatch, error) {
	watch, ok := s.watcher.Status(auditID)
	if !ok {
		return nil, NewAuditError(ErrWatchNotFound, apiErrors.ErrAuditWatch, auditID, "")
	}

	return watch, nil
}

func (s *Service) ListFixServices(ctx context.Context) ([]*domain.FixService, error) {
	services, err := s.fixServiceRepo.ListFixServices(ctx)
	if err != nil {
		return nil, NewAuditError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", err.Error())
	}

	return services, nil
}

// integratorFetcher traduz os erros do integrador para os erros deste pacote
type integratorFetcher struct {
	integrator auditapi.Integrator
}

func NewIntegratorFetcher(integrator auditapi.Integrator) SnapshotFetcher {
	return &integratorFetcher{integrator: integrator}
}

func (f *integratorFetcher) GetAudit(ctx context.Context, auditID string) (*domain.AuditSnapshot, error) {
	snapshot, err := f.integrator.GetAudit(ctx, auditID)
	switch {
	case errors.Is(err, auditapi.ErrAuditNotFound):
		return nil, NewAuditError(ErrAuditNotFound, apiErrors.ErrAuditNotFound, auditID, "")
	case errors.Is(err, auditapi.ErrInvalidAuditID):
		return nil, NewAuditError(ErrInvalidAuditID, apiErrors.ErrInvalidRequest, auditID, "")
	case err != nil:
		return nil, NewAuditError(ErrExternalService, apiErrors.ErrExternalService, auditID, err.Error())
	}

	return snapshot, nil
}
