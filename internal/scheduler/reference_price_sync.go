package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/infrastructure/integrator/referenceprices"
	"github.com/maridopro/pricing-api/internal/config"
)

// ReferencePriceSyncConfig representa a configuração do agendador de
// atualização da tabela de referência
type ReferencePriceSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReferencePriceSyncService atualiza periodicamente o cache de preços de
// referência. Desabilitado por padrão: com o agendador desligado a tabela é
// buscada uma única vez por sessão, sob demanda.
type ReferencePriceSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReferencePriceSyncConfig
	references          referenceprices.Fetcher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReferencePriceSyncService cria uma nova instância do serviço de
// sincronização da tabela de referência
func NewReferencePriceSyncService(
	references referenceprices.Fetcher,
	appConfig *config.Config,
) *ReferencePriceSyncService {
	syncConfig := ReferencePriceSyncConfig{
		CronSchedule: appConfig.ReferencePriceSync.CronSchedule,
		SyncEnabled:  appConfig.ReferencePriceSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de preços de referência carregada")

	return &ReferencePriceSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     syncConfig,
		references: references,
	}
}

// Start inicia o agendador
func (s *ReferencePriceSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de preços de referência desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de preços de referência")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReferencePrices(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de preços de referência: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de preços de referência")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync executa a sincronização imediatamente, fora do
// agendamento
func (s *ReferencePriceSyncService) TriggerManualSync() {
	go s.syncReferencePrices(context.Background())
}

// GetStatus retorna o estado atual do agendador
func (s *ReferencePriceSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"cron_schedule":          s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *ReferencePriceSyncService) syncReferencePrices(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de preços de referência já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	entries, err := s.references.Refresh(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao atualizar tabela de preços de referência")
		return
	}

	logrus.WithField("entries", len(entries)).Info("Tabela de preços de referência atualizada")
}
