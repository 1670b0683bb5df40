package scraper

import (
	"context"
	"log"
	"strconv"
	"time"

	"ofertas-scraper/internal/models"
)

// StopReason indica por que a coleta terminou
type StopReason int

const (
	StopMaxPages StopReason = iota
	StopEmptyPage
	StopFetchFailure
)

func (r StopReason) String() string {
	switch r {
	case StopEmptyPage:
		return "página sem ofertas"
	case StopFetchFailure:
		return "falha ao buscar página"
	default:
		return "limite de páginas"
	}
}

// Report é o resultado de uma coleta
type Report struct {
	Batch models.Batch
	Pages int // páginas que contribuíram para o lote
	Stop  StopReason
}

// Accumulator percorre as páginas em sequência e junta as ofertas
type Accumulator struct {
	fetcher   Fetcher
	extractor *Extractor
	now       func() time.Time
}

// NewAccumulator cria um acumulador
func NewAccumulator(fetcher Fetcher, extractor *Extractor) *Accumulator {
	return &Accumulator{
		fetcher:   fetcher,
		extractor: extractor,
		now:       time.Now,
	}
}

// WithClock troca o relógio usado para o timestamp do lote
func (a *Accumulator) WithClock(now func() time.Time) *Accumulator {
	a.now = now
	return a
}

// Accumulate busca as páginas 1..maxPages, parando na primeira sem títulos.
// Falha de rede também para a coleta, do mesmo jeito que uma página vazia.
func (a *Accumulator) Accumulate(ctx context.Context, baseURL string, maxPages int) Report {
	var all PageResult
	report := Report{Stop: StopMaxPages}

	for page := 1; page <= maxPages; page++ {
		pageURL := baseURL + strconv.Itoa(page)

		result, fetchErr := a.page(ctx, pageURL)
		if len(result.Titles) == 0 {
			if fetchErr != nil {
				report.Stop = StopFetchFailure
			} else {
				report.Stop = StopEmptyPage
			}
			break
		}

		all.Titles = append(all.Titles, result.Titles...)
		all.Prices = append(all.Prices, result.Prices...)
		all.Discounts = append(all.Discounts, result.Discounts...)
		report.Pages++
	}

	report.Batch = zipOffers(all, a.now())
	return report
}

// page busca e extrai uma página; em caso de erro o documento fica ausente
func (a *Accumulator) page(ctx context.Context, url string) (PageResult, error) {
	if err := ctx.Err(); err != nil {
		log.Printf("Coleta interrompida antes de %s: %v", url, err)
		return a.extractor.Extract(nil), err
	}

	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Printf("Erro ao buscar %s: %v", url, err)
		return a.extractor.Extract(nil), err
	}

	doc, err := ParseDocument(body)
	if err != nil {
		log.Printf("Erro ao interpretar HTML de %s: %v", url, err)
		return a.extractor.Extract(nil), err
	}
	return a.extractor.Extract(doc), nil
}

// zipOffers combina as sequências pela posição, truncando na menor
func zipOffers(r PageResult, includedIn time.Time) models.Batch {
	n := min(len(r.Titles), len(r.Prices), len(r.Discounts))
	batch := make(models.Batch, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, models.Offer{
			Product:    r.Titles[i],
			Price:      r.Prices[i],
			Discount:   r.Discounts[i],
			IncludedIn: includedIn,
		})
	}
	return batch
}
