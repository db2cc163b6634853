package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visibility-audit-api/internal/api/handler"
	"github.com/vfg2006/visibility-audit-api/internal/api/handler/router"
	"github.com/vfg2006/visibility-audit-api/internal/config"
	"github.com/vfg2006/visibility-audit-api/internal/scheduler"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/projecting"
	"github.com/vfg2006/visibility-audit-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Auditor       auditing.Auditor
	Projector     projecting.Projector
	CatalogSync   scheduler.CatalogSyncer
	Database      handler.Pinger
}

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

func New(config *config.Config, services Services, onShutdown ...func()) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Scores()...),
		router.WithRoutes(handler.Audits(services.Auditor)...),
		router.WithRoutes(handler.Projections(services.Projector)...),
		router.WithRoutes(handler.CronJobs(services.CatalogSync)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: onShutdown,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

// Shutdown para de aceitar requisições e depois executa as rotinas de limpeza registradas
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")

	for _, fn := range s.onShutdown {
		fn()
	}

	return nil
}
