package backup

import (
	"encoding/json"
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

func seedState(t *testing.T, store *localstore.Store) {
	t.Helper()

	profile := domain.DefaultSettings()
	profile.BusinessName = "Reparos do Zé"
	profile.FuelPrice = 6.10
	require.NoError(t, store.Save(localstore.KeySettings, profile))

	require.NoError(t, store.Save(localstore.KeyHistory, []domain.HistoryRecord{
		{ID: "h1", Date: time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC), Client: "Maria", Total: 191.44},
	}))

	require.NoError(t, store.Save(localstore.KeyCatalog, []domain.CatalogEntry{
		{ID: "c1", Name: "Troca de chuveiro", Value: 120},
	}))

	require.NoError(t, store.Save(localstore.KeyIdentity, domain.Identity{Name: "José"}))
}

func TestService_Export(t *testing.T) {
	store := newTestStore(t)
	seedState(t, store)

	service := NewService(store)
	exportDate := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return exportDate }

	document, err := service.Export()
	require.NoError(t, err)

	assert.Equal(t, domain.BackupVersion, document.Version)
	assert.Equal(t, exportDate, document.ExportDate)
	assert.Equal(t, "Reparos do Zé", document.Settings.BusinessName)
	require.Len(t, document.History, 1)
	assert.Equal(t, "Maria", document.History[0].Client)
	require.Len(t, document.Catalog, 1)
	require.NotNil(t, document.Identity)
	assert.Equal(t, "José", document.Identity.Name)
}

func TestService_ExportSemEstado(t *testing.T) {
	service := NewService(newTestStore(t))

	document, err := service.Export()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(), document.Settings)
	assert.Empty(t, document.History)
	assert.Empty(t, document.Catalog)
	assert.Nil(t, document.Identity)
}

func TestService_ImportDeExportEIdempotente(t *testing.T) {
	store := newTestStore(t)
	seedState(t, store)

	service := NewService(store)

	before, err := service.Export()
	require.NoError(t, err)

	raw, err := json.Marshal(before)
	require.NoError(t, err)

	_, err = service.Import(raw)
	require.NoError(t, err)

	after, err := service.Export()
	require.NoError(t, err)

	// import(export()) não altera configurações, histórico nem catálogo
	assert.Equal(t, before.Settings, after.Settings)
	assert.Equal(t, before.History, after.History)
	assert.Equal(t, before.Catalog, after.Catalog)
	assert.Equal(t, before.Identity, after.Identity)
}

func TestService_ImportDocumentoInvalido(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "JSON malformado",
			raw:  `{quebrado`,
		},
		{
			name: "Array no lugar de objeto",
			raw:  `[1, 2, 3]`,
		},
		{
			name: "String no lugar de objeto",
			raw:  `"não sou um backup"`,
		},
		{
			name: "Null no lugar de objeto",
			raw:  `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			seedState(t, store)

			service := NewService(store)

			before, err := service.Export()
			require.NoError(t, err)

			_, err = service.Import([]byte(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidBackup)

			// Nenhuma mutação aconteceu
			after, err := service.Export()
			require.NoError(t, err)
			assert.Equal(t, before.Settings, after.Settings)
			assert.Equal(t, before.History, after.History)
			assert.Equal(t, before.Catalog, after.Catalog)
		})
	}
}

func TestService_ImportSecoesIndependentes(t *testing.T) {
	store := newTestStore(t)
	seedState(t, store)

	service := NewService(store)

	// Histórico malformado (string no lugar de array) não impede a
	// restauração das configurações do mesmo documento
	raw := []byte(`{
		"version": 1,
		"settings": {"businessName": "Importado", "fuelPrice": 7.25},
		"history": "não sou um array"
	}`)

	_, err := service.Import(raw)
	require.NoError(t, err)

	var profile domain.SettingsProfile
	found, err := store.Load(localstore.KeySettings, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Importado", profile.BusinessName)
	assert.InDelta(t, 7.25, profile.FuelPrice, 1e-9)

	// Histórico original intocado
	var records []domain.HistoryRecord
	found, err = store.Load(localstore.KeyHistory, &records)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, records, 1)
	assert.Equal(t, "Maria", records[0].Client)
}

func TestService_ImportMesclaConfiguracoes(t *testing.T) {
	store := newTestStore(t)
	seedState(t, store)

	service := NewService(store)

	// Só fuelPrice vem no backup: as demais chaves atuais são preservadas
	raw := []byte(`{"settings": {"fuelPrice": 8.00}}`)

	_, err := service.Import(raw)
	require.NoError(t, err)

	var profile domain.SettingsProfile
	found, err := store.Load(localstore.KeySettings, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 8.00, profile.FuelPrice, 1e-9)
	assert.Equal(t, "Reparos do Zé", profile.BusinessName)
}

func TestService_ImportSubstituiHistoricoECatalogo(t *testing.T) {
	store := newTestStore(t)
	seedState(t, store)

	service := NewService(store)

	raw := []byte(`{
		"history": [{"id": "novo1", "client": "Ana", "total": 99.90}],
		"catalog": []
	}`)

	_, err := service.Import(raw)
	require.NoError(t, err)

	var records []domain.HistoryRecord
	found, err := store.Load(localstore.KeyHistory, &records)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, records, 1)
	assert.Equal(t, "Ana", records[0].Client)

	var entries []domain.CatalogEntry
	found, err = store.Load(localstore.KeyCatalog, &entries)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, entries)
}

func TestService_ImportIdentidade(t *testing.T) {
	t.Run("Identidade com nome é restaurada", func(t *testing.T) {
		store := newTestStore(t)
		service := NewService(store)

		_, err := service.Import([]byte(`{"identity": {"name": "Carlos"}}`))
		require.NoError(t, err)

		var identity domain.Identity
		found, err := store.Load(localstore.KeyIdentity, &identity)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Carlos", identity.Name)
	})

	t.Run("Identidade nula é ignorada", func(t *testing.T) {
		store := newTestStore(t)
		seedState(t, store)
		service := NewService(store)

		_, err := service.Import([]byte(`{"identity": null}`))
		require.NoError(t, err)

		var identity domain.Identity
		found, err := store.Load(localstore.KeyIdentity, &identity)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "José", identity.Name)
	})
}

func TestService_ImportToleraCamposDesconhecidos(t *testing.T) {
	store := newTestStore(t)
	service := NewService(store)

	raw := []byte(`{
		"version": 2,
		"novidadeDaVersaoFutura": {"x": 1},
		"settings": {"businessName": "Compatível"}
	}`)

	_, err := service.Import(raw)
	require.NoError(t, err)

	var profile domain.SettingsProfile
	found, err := store.Load(localstore.KeySettings, &profile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Compatível", profile.BusinessName)
}

func TestService_ImportRetornaDataDeExportacao(t *testing.T) {
	service := NewService(newTestStore(t))

	exportDate, err := service.Import([]byte(`{"exportDate": "2026-08-30T12:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), exportDate)

	t.Run("Data ausente vira zero", func(t *testing.T) {
		exportDate, err := service.Import([]byte(`{}`))
		require.NoError(t, err)
		assert.True(t, exportDate.IsZero())
	})

	t.Run("Data malformada vira zero", func(t *testing.T) {
		exportDate, err := service.Import([]byte(`{"exportDate": "ontem"}`))
		require.NoError(t, err)
		assert.True(t, exportDate.IsZero())
	})
}
