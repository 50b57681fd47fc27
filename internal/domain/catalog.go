package domain

// CatalogEntry é um preço do catálogo pessoal do profissional. Imutável
// depois de criado; só pode ser removido.
type CatalogEntry struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ReferencePriceEntry é um preço da tabela de referência externa. Somente
// leitura, nunca persistido localmente.
type ReferencePriceEntry struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Midpoint é o valor usado ao pré-preencher um serviço a partir de uma faixa
// de referência.
func (e ReferencePriceEntry) Midpoint() float64 {
	return (e.Min + e.Max) / 2
}

// SuggestionOrigin identifica de onde veio uma sugestão de preço.
type SuggestionOrigin string

const (
	SuggestionOriginPersonal  SuggestionOrigin = "personal"
	SuggestionOriginReference SuggestionOrigin = "reference"
)

// Suggestion é uma entrada do índice combinado usado pelo autocomplete do
// formulário de orçamento.
type Suggestion struct {
	Origin   SuggestionOrigin `json:"origin"`
	Name     string           `json:"name"`
	Value    float64          `json:"value"`
	Category string           `json:"category,omitempty"`
}
