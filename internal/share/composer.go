package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/pkg/utils"
)

// ComposeMessage monta a mensagem de compartilhamento do orçamento no
// formato enviado ao cliente via aplicativos de mensagem.
func ComposeMessage(job domain.JobInput, result domain.PriceBreakdown) string {
	greeting := "Olá!"
	if job.ClientName != "" {
		greeting = fmt.Sprintf("Olá %s!", job.ClientName)
	}

	serviceNames := make([]string, 0, len(job.Services))
	for _, service := range job.Services {
		serviceNames = append(serviceNames, service.Name)
	}

	servicesText := strings.Join(serviceNames, ", ")
	if servicesText == "" {
		servicesText = "Manutenção Geral"
	}

	var materialsText string
	if len(job.Materials) > 0 {
		lines := make([]string, 0, len(job.Materials))
		for _, material := range job.Materials {
			lines = append(lines, fmt.Sprintf("- %gx %s", material.Qty, material.Name))
		}
		list := strings.Join(lines, "\n")

		if job.MaterialsProvider == domain.MaterialsProviderClient {
			materialsText = fmt.Sprintf("\n*Materiais (Comprar):*\n%s", list)
		} else {
			materialsText = fmt.Sprintf(
				"\n*Materiais (Incluso):* R$ %.2f\n%s",
				utils.RoundWithTwoDecimalPlace(result.Breakdown.Supplies),
				list,
			)
		}
	}

	return fmt.Sprintf(
		"%s Aqui está o orçamento:\n*Serviços:* %s\n*Tempo:* %gh%s\n*Total:* R$ %.2f\nEnviado via Marido de Aluguel Pro.",
		greeting,
		servicesText,
		job.TotalHours,
		materialsText,
		utils.RoundWithTwoDecimalPlace(result.Total),
	)
}

// WhatsAppURL monta o link de compartilhamento pré-preenchido.
func WhatsAppURL(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}
