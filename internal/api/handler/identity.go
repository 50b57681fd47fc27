package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/internal/usecases/identifying"
	"github.com/maridopro/pricing-api/pkg/apiErrors"
)

type loginRequest struct {
	Name string `json:"name"`
}

// Login registra o usuário local do aplicativo
func Login(service identifying.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request loginRequest

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		identity, err := service.Login(request.Name)
		if err != nil {
			if errors.Is(err, identifying.ErrNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome é obrigatório", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao salvar identidade", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(identity); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// Logout remove a identidade local
func Logout(service identifying.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Logout(); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao remover identidade", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna a identidade atual, ou 404 quando ninguém fez login
func GetMe(service identifying.IdentityService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := service.Current()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao carregar identidade", nil)
			return
		}

		if identity == nil {
			apiErrors.WriteError(w, apiErrors.ErrIdentityNotFound, "Nenhum usuário logado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(identity); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
