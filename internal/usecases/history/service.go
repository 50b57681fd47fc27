package history

import (
	"time"

	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/pkg/utils"
)

// HistoryService gerencia o histórico de orçamentos salvos. Registros são
// imutáveis depois de anexados; a única remoção possível é limpar a coleção
// inteira.
type HistoryService interface {
	Append(record domain.HistoryRecord) (*domain.HistoryRecord, error)
	List() ([]domain.HistoryRecord, error)
	Clear() error
}

type Service struct {
	store *localstore.Store
	now   func() time.Time
}

func NewService(store *localstore.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// BuildRecord monta o registro de histórico a partir do orçamento calculado,
// preservando a entrada e o resultado originais para reexibição.
func BuildRecord(job domain.JobInput, result domain.PriceBreakdown) domain.HistoryRecord {
	services := make([]string, 0, len(job.Services))
	for _, service := range job.Services {
		services = append(services, service.Name)
	}

	return domain.HistoryRecord{
		Client:    job.ClientName,
		Total:     result.Total,
		Services:  services,
		Materials: job.Materials,
		Input:     job,
		Result:    result,
	}
}

// Append insere o registro no início da lista: o histórico é sempre do mais
// novo para o mais antigo, garantido pelo próprio armazenamento.
func (s *Service) Append(record domain.HistoryRecord) (*domain.HistoryRecord, error) {
	if record.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		record.ID = id
	}

	if record.Date.IsZero() {
		record.Date = s.now()
	}

	records, err := s.List()
	if err != nil {
		return nil, err
	}

	records = append([]domain.HistoryRecord{record}, records...)

	if err := s.store.Save(localstore.KeyHistory, records); err != nil {
		return nil, err
	}

	return &record, nil
}

// List retorna os registros, do mais novo para o mais antigo.
func (s *Service) List() ([]domain.HistoryRecord, error) {
	records := make([]domain.HistoryRecord, 0)

	if _, err := s.store.Load(localstore.KeyHistory, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// Clear apaga o histórico inteiro.
func (s *Service) Clear() error {
	return s.store.Save(localstore.KeyHistory, []domain.HistoryRecord{})
}
