package settings

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/domain"
)

func newTestStore(t *testing.T) *localstore.Store {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	select {
	case <-store.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("armazenamento não ficou pronto a tempo")
	}

	return store
}

func TestService_GetRetornaPadroesNoPrimeiroAcesso(t *testing.T) {
	service := NewService(newTestStore(t))

	profile, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), profile)
	assert.Equal(t, "Preço Certo Marido de Aluguel", profile.BusinessName)
	assert.InDelta(t, 5.50, profile.FuelPrice, 1e-9)
}

func TestService_UpdatePersisteOPerfil(t *testing.T) {
	service := NewService(newTestStore(t))

	updated := domain.SettingsProfile{
		BusinessName:    "Reparos do Zé",
		FuelPrice:       6.10,
		FuelConsumption: 12,
		MaintenanceCost: 0.25,
		HourlyRate:      65,
		MonthlyGoal:     8000,
		ToolKitValue:    4500,
		TaxRate:         6,
	}

	saved, err := service.Update(updated)
	require.NoError(t, err)
	assert.Equal(t, updated, saved)

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestService_UpdateNormalizaValoresInvalidos(t *testing.T) {
	service := NewService(newTestStore(t))

	saved, err := service.Update(domain.SettingsProfile{
		BusinessName: "Reparos do Zé",
		FuelPrice:    math.NaN(),
		HourlyRate:   -10,
		ToolKitValue: math.Inf(1),
	})
	require.NoError(t, err)

	assert.Zero(t, saved.FuelPrice)
	assert.Zero(t, saved.HourlyRate)
	assert.Zero(t, saved.ToolKitValue)
	assert.Equal(t, "Reparos do Zé", saved.BusinessName)
}

func TestService_ResetRestauraPadroes(t *testing.T) {
	service := NewService(newTestStore(t))

	_, err := service.Update(domain.SettingsProfile{BusinessName: "Outro nome", FuelPrice: 9})
	require.NoError(t, err)

	restored, err := service.Reset()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), restored)

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), loaded)
}
