package gofpdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maridopro/pricing-api/internal/domain"
)

func TestGenerator_Generate(t *testing.T) {
	job := domain.JobInput{
		ClientName:        "Maria",
		ClientAddress:     "Rua das Flores, 123",
		TotalHours:        3,
		MaterialsProvider: domain.MaterialsProviderProfessional,
		Materials: []domain.MaterialLine{
			{Name: "Tomada", Qty: 2, Price: 12.50},
		},
		Services: []domain.ServiceLine{
			{Name: "Troca de tomadas", Price: 80},
		},
	}
	result := domain.PriceBreakdown{
		Breakdown: domain.Breakdown{
			Services:     80,
			Displacement: 15,
			Supplies:     25,
			Tools:        0.75,
			Taxes:        6.04,
			Margin:       12.68,
		},
		Total: 139.47,
	}

	pdfBytes, err := New().Generate(job, result, "José", "Preço Certo Marido de Aluguel")
	require.NoError(t, err)

	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerator_GenerateSemDadosOpcionais(t *testing.T) {
	pdfBytes, err := New().Generate(domain.JobInput{}, domain.PriceBreakdown{}, "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
