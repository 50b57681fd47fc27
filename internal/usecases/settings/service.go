package settings

import (
	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/pkg/utils"
)

// SettingsService gerencia o perfil de custos do profissional. O perfil
// nunca é apagado, apenas substituído ou restaurado ao padrão.
type SettingsService interface {
	Get() (domain.SettingsProfile, error)
	Update(profile domain.SettingsProfile) (domain.SettingsProfile, error)
	Reset() (domain.SettingsProfile, error)
}

type Service struct {
	store *localstore.Store
}

func NewService(store *localstore.Store) *Service {
	return &Service{store: store}
}

// Get retorna o perfil persistido ou os padrões no primeiro acesso.
func (s *Service) Get() (domain.SettingsProfile, error) {
	profile := domain.DefaultSettings()

	found, err := s.store.Load(localstore.KeySettings, &profile)
	if err != nil {
		return domain.DefaultSettings(), err
	}

	if !found {
		return domain.DefaultSettings(), nil
	}

	return profile, nil
}

// Update substitui o perfil inteiro. Campos numéricos inválidos são
// normalizados para 0, mantendo o invariante de valores finitos e
// não-negativos que o motor de cálculo espera.
func (s *Service) Update(profile domain.SettingsProfile) (domain.SettingsProfile, error) {
	sanitized := Sanitize(profile)

	if err := s.store.Save(localstore.KeySettings, sanitized); err != nil {
		return sanitized, err
	}

	return sanitized, nil
}

// Reset restaura o perfil padrão.
func (s *Service) Reset() (domain.SettingsProfile, error) {
	return s.Update(domain.DefaultSettings())
}

// Sanitize normaliza os campos numéricos do perfil.
func Sanitize(profile domain.SettingsProfile) domain.SettingsProfile {
	profile.FuelPrice = utils.SanitizeAmount(profile.FuelPrice)
	profile.FuelConsumption = utils.SanitizeAmount(profile.FuelConsumption)
	profile.MaintenanceCost = utils.SanitizeAmount(profile.MaintenanceCost)
	profile.HourlyRate = utils.SanitizeAmount(profile.HourlyRate)
	profile.MonthlyGoal = utils.SanitizeAmount(profile.MonthlyGoal)
	profile.ToolKitValue = utils.SanitizeAmount(profile.ToolKitValue)
	profile.TaxRate = utils.SanitizeAmount(profile.TaxRate)
	return profile
}
