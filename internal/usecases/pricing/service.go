package pricing

import (
	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/pkg/utils"
)

// Constantes do modelo de custo.
const (
	// JobsPerMonth é o volume mensal de serviços assumido para diluir a
	// depreciação das ferramentas em uma cobrança por serviço.
	JobsPerMonth = 40

	// MonthlyDepreciationRate é a fração do valor das ferramentas
	// depreciada por mês.
	MonthlyDepreciationRate = 0.01

	// SafetyMarginRate é a margem de segurança fixa aplicada depois dos
	// impostos.
	SafetyMarginRate = 0.10
)

// Calculator calcula o orçamento de um serviço a partir dos dados do serviço
// e do perfil de custos do profissional.
type Calculator interface {
	ComputeBreakdown(job domain.JobInput, settings domain.SettingsProfile) domain.PriceBreakdown
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) ComputeBreakdown(job domain.JobInput, settings domain.SettingsProfile) domain.PriceBreakdown {
	return ComputeBreakdown(job, settings)
}

// ComputeBreakdown é o motor de cálculo: função pura e determinística, sem
// I/O e sem erro possível. Entrada malformada (negativa, NaN) degrada para
// contribuição zero em vez de falhar o cálculo.
//
// Derivação, no modo empreitada (preço fixo por serviço):
//
//  1. serviços     = soma dos preços dos serviços adicionados
//  2. deslocamento = (distância / consumo × preço combustível) + distância × manutenção
//  3. materiais    = soma de preço × quantidade (se fornecidos pelo profissional)
//  4. ferramentas  = depreciação mensal / serviços por mês
//  5. subtotal     = serviços + deslocamento + materiais + ferramentas
//  6. impostos     = subtotal × taxa%
//  7. margem       = (subtotal + impostos) × 10%
//  8. total        = subtotal + impostos + margem
//
// Horas trabalhadas são apenas métrica interna: não afetam o preço cobrado.
// Nenhum arredondamento acontece aqui; precisão de moeda é aplicada somente
// na apresentação.
func ComputeBreakdown(job domain.JobInput, settings domain.SettingsProfile) domain.PriceBreakdown {
	distance := utils.SanitizeAmount(job.DistanceKm)
	totalHours := utils.SanitizeAmount(job.TotalHours)

	fuelPrice := utils.SanitizeAmount(settings.FuelPrice)
	fuelConsumption := utils.SanitizeAmount(settings.FuelConsumption)
	maintenanceCost := utils.SanitizeAmount(settings.MaintenanceCost)
	hourlyRate := utils.SanitizeAmount(settings.HourlyRate)
	toolKitValue := utils.SanitizeAmount(settings.ToolKitValue)
	taxRate := utils.SanitizeAmount(settings.TaxRate)

	// 1. Serviços (preço fixo de cada serviço adicionado)
	servicesTotal := 0.0
	for _, service := range job.Services {
		servicesTotal += utils.SanitizeAmount(service.Price)
	}

	// 2. Deslocamento (consumo zero anula o termo de combustível)
	fuelCost := 0.0
	if fuelConsumption > 0 {
		fuelCost = (distance / fuelConsumption) * fuelPrice
	}
	displacementCost := fuelCost + distance*maintenanceCost

	// 3. Materiais (só entram quando o profissional fornece)
	suppliesCost := 0.0
	if job.MaterialsProvider != domain.MaterialsProviderClient {
		for _, material := range job.Materials {
			suppliesCost += utils.SanitizeAmount(material.Price) * utils.SanitizeAmount(material.Qty)
		}
	}

	// 4. Ferramentas (depreciação por serviço)
	toolCost := (toolKitValue * MonthlyDepreciationRate) / JobsPerMonth

	// 5. Subtotal
	subtotal := servicesTotal + displacementCost + suppliesCost + toolCost

	// 6. Impostos
	taxes := subtotal * (taxRate / 100)

	// 7. Margem de segurança
	margin := (subtotal + taxes) * SafetyMarginRate

	// 8. Total final
	total := subtotal + taxes + margin

	// Métricas internas (nunca afetam o total)
	effectiveHourlyRate := 0.0
	if totalHours > 0 {
		effectiveHourlyRate = total / totalHours
	}

	return domain.PriceBreakdown{
		Breakdown: domain.Breakdown{
			Services:     servicesTotal,
			Displacement: displacementCost,
			Supplies:     suppliesCost,
			Tools:        toolCost,
			Taxes:        taxes,
			Margin:       margin,
		},
		Total: total,
		InternalMetrics: domain.InternalMetrics{
			RealLaborCost:       totalHours * hourlyRate,
			EffectiveHourlyRate: effectiveHourlyRate,
		},
	}
}
