package referenceprices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/maridopro/pricing-api/internal/config"
	"github.com/maridopro/pricing-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

// Client consulta a fonte externa de preços de referência. Somente leitura;
// pode falhar ou estar indisponível.
type Client interface {
	FetchReferencePrices(ctx context.Context) ([]domain.ReferencePriceEntry, error)
}

type HTTPClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: cfg.ReferencePrices.Timeout,
		},
		config: cfg,
	}
}

func (c *HTTPClient) FetchReferencePrices(ctx context.Context) ([]domain.ReferencePriceEntry, error) {
	if c.config.ReferencePrices.URL == "" {
		return nil, errors.New("nenhuma fonte de preços de referência configurada")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.ReferencePrices.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar requisição de preços de referência")
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar fonte de preços de referência")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fonte de preços de referência respondeu status %d", resp.StatusCode)
	}

	var entries []domain.ReferencePriceEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar preços de referência")
	}

	return entries, nil
}
