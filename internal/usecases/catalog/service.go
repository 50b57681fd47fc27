package catalog

import (
	"context"
	"math"
	"strings"

	"github.com/maridopro/pricing-api/infrastructure/integrator/referenceprices"
	"github.com/maridopro/pricing-api/infrastructure/storage/localstore"
	"github.com/maridopro/pricing-api/internal/domain"
	"github.com/maridopro/pricing-api/pkg/utils"
)

// CatalogService gerencia o catálogo pessoal de preços e o índice combinado
// de sugestões (catálogo pessoal + tabela de referência externa).
type CatalogService interface {
	AddEntry(name string, value float64) (*domain.CatalogEntry, error)
	RemoveEntry(id string) error
	List() ([]domain.CatalogEntry, error)
	Suggestions(ctx context.Context, query string) ([]domain.Suggestion, error)
}

type Service struct {
	store      *localstore.Store
	references referenceprices.Fetcher
}

func NewService(store *localstore.Store, references referenceprices.Fetcher) *Service {
	return &Service{
		store:      store,
		references: references,
	}
}

// AddEntry cria uma entrada no catálogo pessoal. Nome vazio ou valor não
// numérico são rejeitados sem alterar o estado.
func (s *Service) AddEntry(name string, value float64) (*domain.CatalogEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return nil, ErrInvalidValue
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	entry := domain.CatalogEntry{
		ID:    id,
		Name:  name,
		Value: value,
	}

	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	entries = append(entries, entry)

	if err := s.store.Save(localstore.KeyCatalog, entries); err != nil {
		return nil, err
	}

	return &entry, nil
}

// RemoveEntry apaga a entrada com o id informado. Remover um id inexistente
// não é erro.
func (s *Service) RemoveEntry(id string) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	remaining := make([]domain.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			remaining = append(remaining, entry)
		}
	}

	return s.store.Save(localstore.KeyCatalog, remaining)
}

// List retorna as entradas na ordem de inserção.
func (s *Service) List() ([]domain.CatalogEntry, error) {
	entries := make([]domain.CatalogEntry, 0)

	if _, err := s.store.Load(localstore.KeyCatalog, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Suggestions monta o índice combinado e filtra por substring, sem
// diferenciar maiúsculas. Todos os resultados são retornados na ordem do
// índice; não há desempate.
func (s *Service) Suggestions(ctx context.Context, query string) ([]domain.Suggestion, error) {
	personal, err := s.List()
	if err != nil {
		return nil, err
	}

	references, err := s.references.Fetch(ctx)
	if err != nil {
		// A tabela de referência é melhor-esforço: o catálogo pessoal
		// continua funcionando sem ela.
		references = nil
	}

	index := BuildSuggestionIndex(personal, references)

	return FilterSuggestions(index, query), nil
}

// BuildSuggestionIndex combina catálogo pessoal e tabela de referência em um
// único índice de sugestões, marcando a origem de cada entrada. Entradas de
// referência usam o ponto médio da faixa como valor.
func BuildSuggestionIndex(personal []domain.CatalogEntry, references []domain.ReferencePriceEntry) []domain.Suggestion {
	index := make([]domain.Suggestion, 0, len(personal)+len(references))

	for _, entry := range personal {
		index = append(index, domain.Suggestion{
			Origin: domain.SuggestionOriginPersonal,
			Name:   entry.Name,
			Value:  entry.Value,
		})
	}

	for _, entry := range references {
		index = append(index, domain.Suggestion{
			Origin:   domain.SuggestionOriginReference,
			Name:     entry.Name,
			Value:    entry.Midpoint(),
			Category: entry.Category,
		})
	}

	return index
}

// FilterSuggestions aplica a busca por substring, sem diferenciar
// maiúsculas, preservando a ordem do índice.
func FilterSuggestions(index []domain.Suggestion, query string) []domain.Suggestion {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return index
	}

	matches := make([]domain.Suggestion, 0)
	for _, suggestion := range index {
		if strings.Contains(strings.ToLower(suggestion.Name), query) {
			matches = append(matches, suggestion)
		}
	}

	return matches
}
