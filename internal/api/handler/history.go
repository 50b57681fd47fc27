package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/internal/usecases/history"
	"github.com/maridopro/pricing-api/internal/usecases/pricing"
	"github.com/maridopro/pricing-api/internal/usecases/settings"
	"github.com/maridopro/pricing-api/pkg/apiErrors"
)

// ListHistory retorna os orçamentos salvos, do mais novo para o mais antigo
func ListHistory(service history.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := service.List()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao listar histórico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// SaveQuote recalcula o orçamento e anexa o registro ao histórico. O
// recálculo no servidor garante que entrada e resultado salvos são
// consistentes entre si.
func SaveQuote(
	service history.HistoryService,
	calculator pricing.Calculator,
	settingsService settings.SettingsService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var job domain.JobInput

		if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		profile, err := settingsService.Get()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao carregar configurações", nil)
			return
		}

		result := calculator.ComputeBreakdown(job, profile)

		record, err := service.Append(history.BuildRecord(job, result))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao salvar orçamento no histórico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ClearHistory apaga o histórico inteiro
func ClearHistory(service history.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Clear(); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao limpar histórico", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
