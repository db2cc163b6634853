package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visibility-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi"
	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi/auditclient"
	"github.com/vfg2006/visibility-audit-api/infrastructure/repository"
	"github.com/vfg2006/visibility-audit-api/internal/api"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/internal/scheduler"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/projecting"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrationsEnabled {
		if err := pgConn.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	userRepo := repository.NewUserRepository(pgConn)
	partnerRepo := repository.NewPartnerRepository(pgConn)
	fixServiceRepo := repository.NewFixServiceRepository(pgConn)

	auditClient := auditclient.NewClient(cfg)
	auditIntegrator := auditapi.New(auditClient)

	authenticator := authenticating.NewService(userRepo, cfg)
	projector := projecting.NewService(partnerRepo, cfg)

	// acompanhamentos vivem até o fim do processo
	poller := auditing.NewPoller(auditing.NewIntegratorFetcher(auditIntegrator), cfg.PollInterval(), cfg.PollMaxWait())
	watcher := auditing.NewWatcher(ctx, poller)
	auditor := auditing.NewService(auditIntegrator, fixServiceRepo, watcher)

	catalogSyncService := scheduler.NewCatalogSyncService(auditIntegrator, fixServiceRepo, partnerRepo, cfg)
	if err := catalogSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do catálogo")
	} else {
		logrus.Info("Agendador de sincronização do catálogo iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Auditor:       auditor,
		Projector:     projector,
		CatalogSync:   catalogSyncService,
		Database:      pgConn,
	}, watcher.Stop)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
