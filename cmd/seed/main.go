package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visibility-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/visibility-audit-api/infrastructure/repository"
	"github.com/vfg2006/visibility-audit-api/internal/cli"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	authenticator := authenticating.NewService(repository.NewUserRepository(conn), cfg)

	if err := cli.NewSeedAdminCmd(authenticator).ExecuteContext(ctx); err != nil {
		logrus.Error(err)
		conn.Close()
		os.Exit(1)
	}
}
