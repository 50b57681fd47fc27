package domain

import "time"

// HistoryRecord é um orçamento salvo no histórico. Criado somente quando o
// profissional salva explicitamente; nunca é alterado depois disso.
type HistoryRecord struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	Client    string         `json:"client"`
	Total     float64        `json:"total"`
	Services  []string       `json:"services"`
	Materials []MaterialLine `json:"materials,omitempty"`
	Input     JobInput       `json:"input"`
	Result    PriceBreakdown `json:"result"`
}
