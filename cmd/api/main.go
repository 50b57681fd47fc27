package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/infrastructure/integrator/referenceprices"
	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/api"
	"github.com/maridopro/pricing-api/internal/config"
	"github.com/maridopro/pricing-api/internal/document/gofpdf"
	"github.com/maridopro/pricing-api/internal/scheduler"
	"github.com/maridopro/pricing-api/internal/usecases/backup"
	"github.com/maridopro/pricing-api/internal/usecases/catalog"
	"github.com/maridopro/pricing-api/internal/usecases/history"
	"github.com/maridopro/pricing-api/internal/usecases/identifying"
	"github.com/maridopro/pricing-api/internal/usecases/pricing"
	"github.com/maridopro/pricing-api/internal/usecases/settings"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := localstore.New(cfg.Storage.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o armazenamento local")
	}

	referenceClient := referenceprices.NewClient(cfg)
	referenceService := referenceprices.New(referenceClient)

	calculator := pricing.NewService()
	settingsService := settings.NewService(store)
	catalogService := catalog.NewService(store, referenceService)
	historyService := history.NewService(store)
	identityService := identifying.NewService(store)
	backupService := backup.NewService(store)

	generator := gofpdf.New()

	// Inicializa o agendador de sincronização de preços de referência
	referencePriceSyncService := scheduler.NewReferencePriceSyncService(referenceService, cfg)

	if err := referencePriceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de preços de referência")
	} else {
		logrus.Info("Agendador de sincronização de preços de referência iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		store,
		calculator,
		settingsService,
		catalogService,
		historyService,
		identityService,
		backupService,
		referenceService,
		generator,
		referencePriceSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
