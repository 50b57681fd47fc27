package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maridopro/pricing-api/internal/domain"
)

type countingFetcher struct {
	refreshes atomic.Int64
}

func (f *countingFetcher) Fetch(ctx context.Context) ([]domain.ReferencePriceEntry, error) {
	return nil, nil
}

func (f *countingFetcher) Refresh(ctx context.Context) ([]domain.ReferencePriceEntry, error) {
	f.refreshes.Add(1)
	return []domain.ReferencePriceEntry{{ID: 101, Name: "Troca de chuveiro"}}, nil
}

func TestReferencePriceSyncService_StartDesabilitado(t *testing.T) {
	fetcher := &countingFetcher{}

	service := &ReferencePriceSyncService{
		config:     ReferencePriceSyncConfig{SyncEnabled: false},
		references: fetcher,
	}

	// Com o agendador desabilitado, Start não agenda nada nem falha
	require.NoError(t, service.Start(context.Background()))
	assert.Zero(t, fetcher.refreshes.Load())
}

func TestReferencePriceSyncService_SyncAtualizaStatus(t *testing.T) {
	fetcher := &countingFetcher{}

	service := &ReferencePriceSyncService{
		config:     ReferencePriceSyncConfig{SyncEnabled: false, CronSchedule: "0 5 * * *"},
		references: fetcher,
	}

	service.syncReferencePrices(context.Background())

	assert.Equal(t, int64(1), fetcher.refreshes.Load())

	status := service.GetStatus()
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, "0 5 * * *", status["cron_schedule"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestReferencePriceSyncService_SyncNaoReentra(t *testing.T) {
	fetcher := &countingFetcher{}

	service := &ReferencePriceSyncService{
		references: fetcher,
	}

	// Simula uma sincronização em andamento
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	service.syncReferencePrices(context.Background())

	// A segunda execução foi ignorada
	assert.Zero(t, fetcher.refreshes.Load())
}
