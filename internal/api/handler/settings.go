package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/internal/usecases/settings"
	"github.com/maridopro/pricing-api/pkg/apiErrors"
)

// GetSettings retorna o perfil de custos atual
func GetSettings(service settings.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := service.Get()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao carregar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateSettings substitui o perfil de custos inteiro
func UpdateSettings(service settings.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile domain.SettingsProfile

		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.Update(profile)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao salvar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ResetSettings restaura o perfil de custos padrão
func ResetSettings(service settings.SettingsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := service.Reset()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao restaurar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(profile); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
