package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/internal/document"
	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/internal/share"
	"github.com/maridopro/pricing-api/internal/usecases/identifying"
	"github.com/maridopro/pricing-api/internal/usecases/pricing"
	"github.com/maridopro/pricing-api/internal/usecases/settings"
	"github.com/maridopro/pricing-api/pkg/apiErrors"
	"github.com/maridopro/pricing-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// quoteResponse é a visão de apresentação do cálculo: valores arredondados
// para precisão de moeda. O arredondamento acontece só aqui, nunca dentro do
// motor.
type quoteResponse struct {
	Breakdown       domain.Breakdown       `json:"breakdown"`
	Total           float64                `json:"total"`
	InternalMetrics domain.InternalMetrics `json:"internalMetrics"`
}

func newQuoteResponse(result domain.PriceBreakdown) quoteResponse {
	return quoteResponse{
		Breakdown: domain.Breakdown{
			Services:     utils.RoundWithTwoDecimalPlace(result.Breakdown.Services),
			Displacement: utils.RoundWithTwoDecimalPlace(result.Breakdown.Displacement),
			Supplies:     utils.RoundWithTwoDecimalPlace(result.Breakdown.Supplies),
			Tools:        utils.RoundWithTwoDecimalPlace(result.Breakdown.Tools),
			Taxes:        utils.RoundWithTwoDecimalPlace(result.Breakdown.Taxes),
			Margin:       utils.RoundWithTwoDecimalPlace(result.Breakdown.Margin),
		},
		Total: utils.RoundWithTwoDecimalPlace(result.Total),
		InternalMetrics: domain.InternalMetrics{
			RealLaborCost:       utils.RoundWithTwoDecimalPlace(result.InternalMetrics.RealLaborCost),
			EffectiveHourlyRate: utils.RoundWithTwoDecimalPlace(result.InternalMetrics.EffectiveHourlyRate),
		},
	}
}

// ComputeQuote calcula o orçamento de um serviço com o perfil de custos
// atual
func ComputeQuote(calculator pricing.Calculator, settingsService settings.SettingsService) http.HandlerFunc {
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

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(newQuoteResponse(result)); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// QuoteDocument gera o PDF do orçamento para download
func QuoteDocument(
	calculator pricing.Calculator,
	settingsService settings.SettingsService,
	identityService identifying.IdentityService,
	generator document.Generator,
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

		professionalName := ""
		if identity, err := identityService.Current(); err == nil && identity != nil {
			professionalName = identity.Name
		}

		result := calculator.ComputeBreakdown(job, profile)

		pdfBytes, err := generator.Generate(job, result, professionalName, profile.BusinessName)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar documento do orçamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="orcamento.pdf"`)
		if _, err := w.Write(pdfBytes); err != nil {
			logrus.WithError(err).Warn("Erro ao enviar documento do orçamento")
		}
	}
}

// ShareMessage monta a mensagem de compartilhamento do orçamento
func ShareMessage(calculator pricing.Calculator, settingsService settings.SettingsService) http.HandlerFunc {
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
		message := share.ComposeMessage(job, result)

		response := map[string]string{
			"message": message,
			"url":     share.WhatsAppURL(message),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
