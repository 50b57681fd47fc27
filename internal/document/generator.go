package document

import "github.com/maridopro/pricing-api/internal/domain"

// Generator produz o documento de orçamento entregável ao cliente a partir
// do serviço calculado, da identidade do profissional e do nome do negócio.
type Generator interface {
	Generate(job domain.JobInput, result domain.PriceBreakdown, professionalName, businessName string) ([]byte, error)
}
