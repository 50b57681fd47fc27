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

	"github.com/maridopro/pricing-api/infrastructure/integrator/referenceprices"
	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/api/handler"
	"github.com/maridopro/pricing-api/internal/api/handler/router"
	"github.com/maridopro/pricing-api/internal/config"
	"github.com/maridopro/pricing-api/internal/document"
	"github.com/maridopro/pricing-api/internal/scheduler"
	"github.com/maridopro/pricing-api/internal/usecases/backup"
	"github.com/maridopro/pricing-api/internal/usecases/catalog"
	"github.com/maridopro/pricing-api/internal/usecases/history"
	"github.com/maridopro/pricing-api/internal/usecases/identifying"
	"github.com/maridopro/pricing-api/internal/usecases/pricing"
	"github.com/maridopro/pricing-api/internal/usecases/settings"
	"github.com/maridopro/pricing-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	store *localstore.Store,
	calculator pricing.Calculator,
	settingsService settings.SettingsService,
	catalogService catalog.CatalogService,
	historyService history.HistoryService,
	identityService identifying.IdentityService,
	backupService backup.BackupService,
	references referenceprices.Fetcher,
	generator document.Generator,
	referencePriceSyncService *scheduler.ReferencePriceSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ReferencePriceSyncService: referencePriceSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Identity(identityService)...),
		router.WithRoutes(handler.Settings(settingsService)...),
		router.WithRoutes(handler.Catalog(catalogService, references)...),
		router.WithRoutes(handler.Quotes(calculator, settingsService, identityService, generator)...),
		router.WithRoutes(handler.History(historyService, calculator, settingsService)...),
		router.WithRoutes(handler.Backup(backupService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.ReadyGate(store),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
