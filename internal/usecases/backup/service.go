package backup

import (
	"encoding/json"
	"time"

	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/internal/usecases/settings"
	"github.com/maridopro/pricing-api/pkg/log"
)

// BackupService exporta e restaura o estado local completo (perfil de
// custos, histórico, catálogo e identidade) como um único documento
// portátil.
type BackupService interface {
	Export() (*domain.BackupDocument, error)
	Import(raw []byte) (time.Time, error)
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

// Export tira um retrato do estado atual com a versão do formato e a data de
// exportação.
func (s *Service) Export() (*domain.BackupDocument, error) {
	profile := domain.DefaultSettings()
	if found, err := s.store.Load(localstore.KeySettings, &profile); err != nil {
		return nil, err
	} else if !found {
		profile = domain.DefaultSettings()
	}

	records := make([]domain.HistoryRecord, 0)
	if _, err := s.store.Load(localstore.KeyHistory, &records); err != nil {
		return nil, err
	}

	entries := make([]domain.CatalogEntry, 0)
	if _, err := s.store.Load(localstore.KeyCatalog, &entries); err != nil {
		return nil, err
	}

	var identity *domain.Identity
	var stored domain.Identity
	if found, err := s.store.Load(localstore.KeyIdentity, &stored); err != nil {
		return nil, err
	} else if found && stored.Name != "" {
		identity = &stored
	}

	return &domain.BackupDocument{
		Version:    domain.BackupVersion,
		ExportDate: s.now(),
		Identity:   identity,
		Settings:   profile,
		History:    records,
		Catalog:    entries,
	}, nil
}

// Import restaura um documento de backup. A forma externa é validada antes
// de qualquer mutação: um documento que não seja um objeto JSON falha com
// ErrInvalidBackup sem tocar no estado. Depois disso cada seção é restaurada
// de forma independente: uma seção malformada é pulada silenciosamente e não
// impede as demais.
//
// Configurações são mescladas (chaves novas sobrepõem as existentes);
// histórico e catálogo são substituições completas.
func (s *Service) Import(raw []byte) (time.Time, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return time.Time{}, ErrInvalidBackup
	}

	// Unmarshal aceita o literal null sem erro e deixa o mapa nulo: também
	// não é um objeto
	if sections == nil {
		return time.Time{}, ErrInvalidBackup
	}

	exportDate := parseExportDate(sections["exportDate"])

	if section, ok := sections["settings"]; ok {
		s.restoreSettings(section)
	}

	if section, ok := sections["history"]; ok {
		s.restoreHistory(section)
	}

	if section, ok := sections["catalog"]; ok {
		s.restoreCatalog(section)
	}

	if section, ok := sections["identity"]; ok {
		s.restoreIdentity(section)
	}

	return exportDate, nil
}

// restoreSettings mescla as chaves do backup por cima do perfil atual.
// Chaves desconhecidas são toleradas; chaves conhecidas com tipo errado
// invalidam a seção inteira, que é pulada.
func (s *Service) restoreSettings(section json.RawMessage) {
	var incoming map[string]any
	if err := json.Unmarshal(section, &incoming); err != nil {
		log.L.WithError(err).Warn("Seção de configurações do backup malformada, pulando")
		return
	}

	current := domain.DefaultSettings()
	if _, err := s.store.Load(localstore.KeySettings, &current); err != nil {
		log.L.WithError(err).Warn("Erro ao carregar configurações atuais, pulando restauração")
		return
	}

	currentRaw, err := json.Marshal(current)
	if err != nil {
		return
	}

	merged := make(map[string]any)
	if err := json.Unmarshal(currentRaw, &merged); err != nil {
		return
	}

	for key, value := range incoming {
		merged[key] = value
	}

	mergedRaw, err := json.Marshal(merged)
	if err != nil {
		return
	}

	var profile domain.SettingsProfile
	if err := json.Unmarshal(mergedRaw, &profile); err != nil {
		log.L.WithError(err).Warn("Configurações do backup com tipos inválidos, pulando")
		return
	}

	if err := s.store.Save(localstore.KeySettings, settings.Sanitize(profile)); err != nil {
		log.L.WithError(err).Error("Erro ao restaurar configurações do backup")
	}
}

// restoreHistory substitui o histórico inteiro quando a seção é um array
// bem-formado.
func (s *Service) restoreHistory(section json.RawMessage) {
	var records []domain.HistoryRecord
	if err := json.Unmarshal(section, &records); err != nil {
		log.L.WithError(err).Warn("Seção de histórico do backup malformada, pulando")
		return
	}

	if records == nil {
		records = make([]domain.HistoryRecord, 0)
	}

	if err := s.store.Save(localstore.KeyHistory, records); err != nil {
		log.L.WithError(err).Error("Erro ao restaurar histórico do backup")
	}
}

// restoreCatalog substitui o catálogo inteiro quando a seção é um array
// bem-formado.
func (s *Service) restoreCatalog(section json.RawMessage) {
	var entries []domain.CatalogEntry
	if err := json.Unmarshal(section, &entries); err != nil {
		log.L.WithError(err).Warn("Seção de catálogo do backup malformada, pulando")
		return
	}

	if entries == nil {
		entries = make([]domain.CatalogEntry, 0)
	}

	if err := s.store.Save(localstore.KeyCatalog, entries); err != nil {
		log.L.WithError(err).Error("Erro ao restaurar catálogo do backup")
	}
}

// restoreIdentity substitui a identidade quando a seção é um objeto com
// nome. Seção nula ou sem nome é pulada.
func (s *Service) restoreIdentity(section json.RawMessage) {
	var identity domain.Identity
	if err := json.Unmarshal(section, &identity); err != nil {
		log.L.WithError(err).Warn("Seção de identidade do backup malformada, pulando")
		return
	}

	if identity.Name == "" {
		return
	}

	if err := s.store.Save(localstore.KeyIdentity, identity); err != nil {
		log.L.WithError(err).Error("Erro ao restaurar identidade do backup")
	}
}

func parseExportDate(section json.RawMessage) time.Time {
	if len(section) == 0 {
		return time.Time{}
	}

	var exportDate time.Time
	if err := json.Unmarshal(section, &exportDate); err != nil {
		return time.Time{}
	}

	return exportDate
}
