package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi"
	"github.com/vfg2006/visibility-audit-api/infrastructure/repository"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
	"github.com/vfg2006/visibility-audit-api/pkg/utils"
)

// JobType define qual parte do catálogo será sincronizada
type JobType string

const (
	JobTypeCatalog  JobType = "catalog"
	JobTypePartners JobType = "partners"
	JobTypeAll      JobType = "all"
)

var (
	ErrUnknownJobType       = errors.New("tipo de sincronização desconhecido")
	ErrSyncAlreadyRunning   = errors.New("sincronização já em andamento")
	ErrSyncPartiallyApplied = errors.New("sincronização concluída com falhas")
)

func ParseJobType(raw string) (JobType, error) {
	switch jobType := JobType(strings.ToLower(strings.TrimSpace(raw))); jobType {
	case JobTypeCatalog, JobTypePartners, JobTypeAll:
		return jobType, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownJobType, raw)
	}
}

//go:generate mockgen -source=catalog_sync.go -destination=mocks/catalog_sync_mock.go -package=mocks
type CatalogSyncer interface {
	TriggerManualSync(ctx context.Context, jobType JobType) error
	GetStatus() map[string]any
}

// CatalogSyncConfig representa a configuração do agendador de sincronização do catálogo
type CatalogSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CatalogSyncService copia periodicamente o catálogo de serviços de correção e os
// parceiros do backend para o banco local
type CatalogSyncService struct {
	scheduler      *gocron.Scheduler
	config         CatalogSyncConfig
	integrator     auditapi.Integrator
	fixServiceRepo repository.FixServiceRepository
	partnerRepo    repository.PartnerRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastSyncStats       map[JobType]int
}

func NewCatalogSyncService(
	integrator auditapi.Integrator,
	fixServiceRepo repository.FixServiceRepository,
	partnerRepo repository.PartnerRepository,
	appConfig *config.Config,
) *CatalogSyncService {
	syncConfig := CatalogSyncConfig{
		CronSchedule: appConfig.CatalogSync.CronSchedule,
		SyncEnabled:  appConfig.CatalogSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do catálogo carregada")

	return &CatalogSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		integrator:     integrator,
		fixServiceRepo: fixServiceRepo,
		partnerRepo:    partnerRepo,
		lastSyncStats:  map[JobType]int{},
	}
}

// Start agenda a sincronização completa e para o agendador quando ctx termina
func (s *CatalogSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do catálogo desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do catálogo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Sync(ctx, JobTypeAll); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			logrus.WithError(err).Error("Erro na sincronização agendada do catálogo")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do catálogo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização do catálogo")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização em background. O contexto da requisição
// só contribui com os valores de log, seu cancelamento não interrompe a sincronização.
func (s *CatalogSyncService) TriggerManualSync(ctx context.Context, jobType JobType) error {
	if _, err := ParseJobType(string(jobType)); err != nil {
		return err
	}

	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()
	if running {
		log.ForContext(ctx).Info("Sincronização do catálogo já em andamento, ignorando solicitação manual")
		return ErrSyncAlreadyRunning
	}

	log.ForContext(ctx).WithField("job", jobType).Info("Iniciando sincronização manual do catálogo")

	go func() {
		if err := s.Sync(context.WithoutCancel(ctx), jobType); err != nil && !errors.Is(err, ErrSyncAlreadyRunning) {
			log.ForContext(ctx).WithError(err).Error("Erro na sincronização manual do catálogo")
		}
	}()

	return nil
}

// Sync executa a sincronização de forma síncrona. Uma falha no catálogo não impede a
// sincronização dos parceiros; o erro retornado junta as falhas.
func (s *CatalogSyncService) Sync(ctx context.Context, jobType JobType) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	stats := map[JobType]int{}
	var errs []error

	if jobType == JobTypeCatalog || jobType == JobTypeAll {
		count, err := s.syncFixServices(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("catálogo: %w", err))
		}
		stats[JobTypeCatalog] = count
	}

	if jobType == JobTypePartners || jobType == JobTypeAll {
		count, err := s.syncPartners(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("parceiros: %w", err))
		}
		stats[JobTypePartners] = count
	}

	syncErr := errors.Join(errs...)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncStats = stats
	s.lastSyncError = ""
	if syncErr != nil {
		s.lastSyncError = syncErr.Error()
	}
	s.syncMutex.Unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job":          jobType,
		"duration":     time.Since(startTime).String(),
		"fix_services": stats[JobTypeCatalog],
		"partners":     stats[JobTypePartners],
	})

	if syncErr != nil {
		logger.WithError(syncErr).Warn("Sincronização do catálogo concluída com falhas")
		return fmt.Errorf("%w: %w", ErrSyncPartiallyApplied, syncErr)
	}

	logger.Info("Sincronização do catálogo concluída")
	return nil
}

func (s *CatalogSyncService) syncFixServices(ctx context.Context) (int, error) {
	services, err := s.integrator.ListFixServices(ctx)
	if err != nil {
		return 0, err
	}

	if len(services) == 0 {
		log.ForContext(ctx).Info("Nenhum serviço de correção retornado pelo backend")
		return 0, nil
	}

	now := time.Now()
	for _, service := range services {
		service.UpdatedAt = now
	}

	if err := s.fixServiceRepo.SaveOrUpdateFixServices(ctx, services); err != nil {
		return 0, err
	}

	return len(services), nil
}

// syncPartners reaproveita o id local quando o backend envia um parceiro sem id,
// casando pelo email; só então gera um id novo
func (s *CatalogSyncService) syncPartners(ctx context.Context) (int, error) {
	partners, err := s.integrator.ListPartners(ctx)
	if err != nil {
		return 0, err
	}

	if len(partners) == 0 {
		log.ForContext(ctx).Info("Nenhum parceiro retornado pelo backend")
		return 0, nil
	}

	idsByEmail, err := s.localPartnerIDsByEmail(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, partner := range partners {
		partner.UpdatedAt = now
		if partner.ID != "" {
			continue
		}

		if id, ok := idsByEmail[strings.ToLower(partner.Email)]; ok && partner.Email != "" {
			partner.ID = id
			continue
		}

		id, err := utils.GeneratePrefixedID("prt")
		if err != nil {
			return 0, err
		}
		partner.ID = id
		partner.CreatedAt = now
	}

	if err := s.partnerRepo.SaveOrUpdatePartners(ctx, partners); err != nil {
		return 0, err
	}

	return len(partners), nil
}

func (s *CatalogSyncService) localPartnerIDsByEmail(ctx context.Context) (map[string]string, error) {
	local, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]string, len(local))
	for _, partner := range local {
		if partner.Email != "" {
			ids[strings.ToLower(partner.Email)] = partner.ID
		}
	}

	return ids, nil
}

// GetStatus retorna o status atual do agendador
func (s *CatalogSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_sync_counts":       s.lastSyncStats,
	}
}

var _ CatalogSyncer = (*CatalogSyncService)(nil)
