package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/domain"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	select {
	case <-store.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("armazenamento não ficou pronto a tempo")
	}

	return NewService(store)
}

func TestService_AppendEmHistoricoVazio(t *testing.T) {
	service := newTestService(t)

	record, err := service.Append(domain.HistoryRecord{Client: "Maria", Total: 191.44})
	require.NoError(t, err)

	records, err := service.List()
	require.NoError(t, err)

	// Um elemento, e é o registro anexado
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.Equal(t, "Maria", records[0].Client)
}

func TestService_AppendInsereNoInicio(t *testing.T) {
	service := newTestService(t)

	_, err := service.Append(domain.HistoryRecord{Client: "Primeiro"})
	require.NoError(t, err)
	_, err = service.Append(domain.HistoryRecord{Client: "Segundo"})
	require.NoError(t, err)
	_, err = service.Append(domain.HistoryRecord{Client: "Terceiro"})
	require.NoError(t, err)

	records, err := service.List()
	require.NoError(t, err)

	// Sempre do mais novo para o mais antigo
	require.Len(t, records, 3)
	assert.Equal(t, "Terceiro", records[0].Client)
	assert.Equal(t, "Segundo", records[1].Client)
	assert.Equal(t, "Primeiro", records[2].Client)
}

func TestService_AppendGeraIDEData(t *testing.T) {
	service := newTestService(t)

	fixedNow := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixedNow }

	record, err := service.Append(domain.HistoryRecord{Client: "Maria"})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, fixedNow, record.Date)
}

func TestService_AppendPreservaIDEDataExistentes(t *testing.T) {
	service := newTestService(t)

	date := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	record, err := service.Append(domain.HistoryRecord{ID: "abc123", Date: date, Client: "Maria"})
	require.NoError(t, err)

	assert.Equal(t, "abc123", record.ID)
	assert.Equal(t, date, record.Date)
}

func TestService_ListVaziaSemRegistros(t *testing.T) {
	service := newTestService(t)

	records, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestService_Clear(t *testing.T) {
	service := newTestService(t)

	_, err := service.Append(domain.HistoryRecord{Client: "Maria"})
	require.NoError(t, err)
	_, err = service.Append(domain.HistoryRecord{Client: "João"})
	require.NoError(t, err)

	require.NoError(t, service.Clear())

	records, err := service.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestBuildRecord(t *testing.T) {
	job := domain.JobInput{
		ClientName:        "Maria",
		MaterialsProvider: domain.MaterialsProviderProfessional,
		Materials: []domain.MaterialLine{
			{Name: "Tomada", Qty: 2, Price: 12},
		},
		Services: []domain.ServiceLine{
			{Name: "Troca de tomadas", Price: 80},
			{Name: "Revisão elétrica", Price: 120},
		},
	}
	result := domain.PriceBreakdown{Total: 250.75}

	record := BuildRecord(job, result)

	assert.Equal(t, "Maria", record.Client)
	assert.InDelta(t, 250.75, record.Total, 1e-9)
	assert.Equal(t, []string{"Troca de tomadas", "Revisão elétrica"}, record.Services)
	assert.Equal(t, job.Materials, record.Materials)

	// Entrada e resultado originais ficam preservados para reexibição
	assert.Equal(t, job, record.Input)
	assert.Equal(t, result, record.Result)
}
