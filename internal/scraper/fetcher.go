package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher busca o corpo de uma página
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher faz um GET simples, sem retentativas nem headers extras
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher cria um fetcher com timeout fixo por requisição
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	client := resty.New()
	client.SetTimeout(timeout)
	return &HTTPFetcher{client: client}
}

// Fetch retorna o HTML da página; erros de rede, timeout e status >= 400 viram erro
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("erro na requisição: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("status code: %d", resp.StatusCode())
	}
	return resp.String(), nil
}
