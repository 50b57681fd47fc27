package gofpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/pkg/utils"
)

const (
	pageWidth    = 210.0
	margin       = 20.0
	contentWidth = pageWidth - margin*2
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate monta o PDF do orçamento: faixa de cabeçalho, dados do cliente,
// serviços, materiais, itemização de custos e total.
func (g *Generator) Generate(job domain.JobInput, result domain.PriceBreakdown, professionalName, businessName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Orçamento de Serviços", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if professionalName == "" {
		professionalName = "Profissional"
	}

	// Cabeçalho em faixa azul
	pdf.SetFillColor(13, 71, 161)
	pdf.Rect(0, 0, pageWidth, 40, "F")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(255, 255, 255)
	pdf.Text(margin, 18, tr(professionalName))

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(200, 210, 230)
	pdf.Text(margin, 27, tr("Orçamento de Serviços"))

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(255, 255, 255)
	dateStr := time.Now().Format("02/01/2006")
	pdf.Text(pageWidth-margin-pdf.GetStringWidth(dateStr), 35, dateStr)

	pdf.SetY(50)
	pdf.SetTextColor(30, 30, 30)

	// Dados do cliente
	if job.ClientName != "" || job.ClientPhone != "" || job.ClientAddress != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(13, 71, 161)
		pdf.CellFormat(contentWidth, 6, tr("DADOS DO CLIENTE"), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(30, 30, 30)

		if job.ClientName != "" {
			pdf.CellFormat(contentWidth, 5, tr(job.ClientName), "", 1, "L", false, 0, "")
		}
		if job.ClientPhone != "" {
			pdf.CellFormat(contentWidth, 5, tr("Tel: "+job.ClientPhone), "", 1, "L", false, 0, "")
		}
		if job.ClientAddress != "" {
			pdf.MultiCell(contentWidth, 5, tr("End: "+job.ClientAddress), "", "L", false)
		}

		pdf.Ln(4)
	}

	// Serviços
	if len(job.Services) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth-30, 7, tr("Serviço"), "B", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, tr("Preço"), "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, service := range job.Services {
			pdf.CellFormat(contentWidth-30, 6, tr(service.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, tr(formatMoney(service.Price)), "", 1, "R", false, 0, "")
		}

		pdf.Ln(4)
	}

	// Materiais
	if len(job.Materials) > 0 {
		title := "Materiais (Comprar)"
		if job.MaterialsProvider == domain.MaterialsProviderProfessional {
			title = "Materiais (Incluso)"
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentWidth, 7, tr(title), "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, material := range job.Materials {
			line := fmt.Sprintf("%gx %s", material.Qty, material.Name)
			if job.MaterialsProvider == domain.MaterialsProviderProfessional {
				line = fmt.Sprintf("%s  (%s)", line, formatMoney(material.Price))
			}
			pdf.CellFormat(contentWidth, 6, tr(line), "", 1, "L", false, 0, "")
		}

		pdf.Ln(4)
	}

	// Itemização de custos
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentWidth, 7, tr("Composição do Valor"), "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	writeBreakdownLine(pdf, tr, "Serviços", result.Breakdown.Services)
	writeBreakdownLine(pdf, tr, "Deslocamento", result.Breakdown.Displacement)
	if job.MaterialsProvider == domain.MaterialsProviderProfessional {
		writeBreakdownLine(pdf, tr, "Materiais", result.Breakdown.Supplies)
	}
	writeBreakdownLine(pdf, tr, "Ferramentas", result.Breakdown.Tools)
	writeBreakdownLine(pdf, tr, "Impostos", result.Breakdown.Taxes)
	writeBreakdownLine(pdf, tr, "Margem de segurança", result.Breakdown.Margin)

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(13, 71, 161)
	pdf.CellFormat(contentWidth-40, 9, tr("TOTAL"), "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 9, tr(formatMoney(result.Total)), "T", 1, "R", false, 0, "")

	// Rodapé
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.Ln(6)
	if businessName != "" {
		pdf.CellFormat(contentWidth, 4, tr(businessName), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentWidth, 4, tr(fmt.Sprintf("Gerado em: %s", time.Now().Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeBreakdownLine(pdf *gofpdf.Fpdf, tr func(string) string, label string, value float64) {
	pdf.CellFormat(contentWidth-40, 6, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, tr(formatMoney(value)), "", 1, "R", false, 0, "")
}

// formatMoney formata para exibição no padrão brasileiro. Único ponto onde o
// valor é arredondado.
func formatMoney(value float64) string {
	return fmt.Sprintf("R$ %.2f", utils.RoundWithTwoDecimalPlace(value))
}
