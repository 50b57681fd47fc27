package domain

// BillingMode define como o serviço é cobrado do cliente.
type BillingMode string

// BillingModeFixed é o único modo suportado: preço fechado por serviço
// (empreitada). O enum existe como ponto de extensão para uma eventual
// cobrança por hora.
const BillingModeFixed BillingMode = "empreitada"

// MaterialsProvider indica quem fornece os materiais do serviço.
type MaterialsProvider string

const (
	MaterialsProviderProfessional MaterialsProvider = "professional"
	MaterialsProviderClient       MaterialsProvider = "client"
)

// MaterialLine é um material usado no serviço. Price só é exigido quando o
// profissional fornece os materiais.
type MaterialLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Qty   float64 `json:"qty"`
	Price float64 `json:"price,omitempty"`
}

// ServiceLine é um item de serviço com preço fechado, digitado livremente ou
// pré-preenchido a partir do catálogo ou da tabela de referência.
type ServiceLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// JobInput reúne os dados de um serviço a orçar. É transiente: só entra no
// histórico quando o profissional salva o orçamento explicitamente.
type JobInput struct {
	ClientName        string            `json:"clientName"`
	ClientPhone       string            `json:"clientPhone"`
	ClientAddress     string            `json:"clientAddress"`
	DistanceKm        float64           `json:"distanceKm"`
	TotalHours        float64           `json:"totalHours"`
	MaterialsProvider MaterialsProvider `json:"materialsProvider"`
	Materials         []MaterialLine    `json:"materials"`
	Services          []ServiceLine     `json:"services"`
	BillingMode       BillingMode       `json:"billingMode"`
}

// Breakdown itemiza os componentes de custo calculados.
type Breakdown struct {
	Services     float64 `json:"services"`
	Displacement float64 `json:"displacement"`
	Supplies     float64 `json:"supplies"`
	Tools        float64 `json:"tools"`
	Taxes        float64 `json:"taxes"`
	Margin       float64 `json:"margin"`
}

// InternalMetrics são métricas visíveis apenas para o profissional. Nunca
// alteram o total cobrado do cliente.
type InternalMetrics struct {
	RealLaborCost       float64 `json:"realLaborCost"`
	EffectiveHourlyRate float64 `json:"effectiveHourlyRate"`
}

// PriceBreakdown é o resultado completo de um cálculo de orçamento.
type PriceBreakdown struct {
	Breakdown       Breakdown       `json:"breakdown"`
	Total           float64         `json:"total"`
	InternalMetrics InternalMetrics `json:"internalMetrics"`
}
