package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/infrastructure/integrator/referenceprices"
	"github.com/maridopro/pricing-api/internal/usecases/catalog"
	"github.com/maridopro/pricing-api/pkg/apiErrors"
)

type addCatalogEntryRequest struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ListCatalog retorna o catálogo pessoal na ordem de inserção
func ListCatalog(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.List()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao listar catálogo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// AddCatalogEntry cria uma entrada no catálogo pessoal
func AddCatalogEntry(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request addCatalogEntryRequest

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		entry, err := service.AddEntry(request.Name, request.Value)
		if err != nil {
			if errors.Is(err, catalog.ErrEmptyName) || errors.Is(err, catalog.ErrInvalidValue) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome e valor válidos são obrigatórios", nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao salvar entrada do catálogo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// RemoveCatalogEntry apaga uma entrada do catálogo pessoal
func RemoveCatalogEntry(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada não fornecido", nil)
			return
		}

		if err := service.RemoveEntry(id); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao remover entrada do catálogo", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetSuggestions retorna o índice combinado filtrado pelo termo de busca
func GetSuggestions(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		suggestions, err := service.Suggestions(r.Context(), query)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao montar sugestões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(suggestions); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetReferencePrices retorna a tabela de referência da sessão
func GetReferencePrices(fetcher referenceprices.Fetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := fetcher.Fetch(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar tabela de referência", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
