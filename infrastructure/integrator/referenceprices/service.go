package referenceprices

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/maridopro/pricing-api/internal/domain"
)

// Fetcher entrega a tabela de preços de referência. A busca externa acontece
// uma vez por sessão e o resultado fica em memória; falha externa degrada
// para a tabela embutida, nunca para um erro ao usuário.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.ReferencePriceEntry, error)
	Refresh(ctx context.Context) ([]domain.ReferencePriceEntry, error)
}

type Service struct {
	client Client

	mu     sync.Mutex
	cached []domain.ReferencePriceEntry
}

func New(client Client) *Service {
	return &Service{client: client}
}

// Fetch retorna a tabela em cache, buscando na fonte externa apenas na
// primeira chamada da sessão.
func (s *Service) Fetch(ctx context.Context) ([]domain.ReferencePriceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	s.cached = s.fetchOrFallback(ctx)
	return s.cached, nil
}

// Refresh força uma nova busca na fonte externa, substituindo o cache da
// sessão.
func (s *Service) Refresh(ctx context.Context) ([]domain.ReferencePriceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = s.fetchOrFallback(ctx)
	return s.cached, nil
}

func (s *Service) fetchOrFallback(ctx context.Context) []domain.ReferencePriceEntry {
	entries, err := s.client.FetchReferencePrices(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Fonte de preços de referência indisponível, usando tabela embutida")
		return FallbackPrices()
	}

	if len(entries) == 0 {
		logrus.Warn("Fonte de preços de referência vazia, usando tabela embutida")
		return FallbackPrices()
	}

	return entries
}
