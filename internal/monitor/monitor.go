package monitor

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"ofertas-scraper/config"
	"ofertas-scraper/internal/database"
	"ofertas-scraper/internal/scraper"
)

// Notifier recebe o resumo de cada coleta concluída
type Notifier interface {
	Notify(text string) error
}

// Monitor executa a coleta completa: páginas -> lote -> banco -> notificação
type Monitor struct {
	cfg         *config.Config
	accumulator *scraper.Accumulator
	notifier    Notifier

	mu sync.Mutex // uma coleta por vez
}

// New cria uma nova instância do monitor
func New(cfg *config.Config, accumulator *scraper.Accumulator, notifier Notifier) *Monitor {
	return &Monitor{
		cfg:         cfg,
		accumulator: accumulator,
		notifier:    notifier,
	}
}

// RunOnce coleta todas as páginas e acrescenta o lote ao banco.
// Erros de persistência são retornados; falhas de rede só encerram a coleta.
func (m *Monitor) RunOnce(ctx context.Context) (scraper.Report, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	report := m.accumulator.Accumulate(ctx, m.cfg.BaseURL, m.cfg.MaxPages)
	log.Printf("Coleta encerrada após %d página(s): %s", report.Pages, report.Stop)

	if err := database.Persist(m.cfg.DatabasePath, m.cfg.TableName, report.Batch); err != nil {
		return report, fmt.Errorf("erro ao salvar ofertas: %w", err)
	}

	log.Printf("Scraped %d items and saved to database.", len(report.Batch))
	m.notify(report)
	return report, nil
}

// Start executa uma coleta imediatamente e depois a cada intervalo,
// até o contexto ser cancelado ou a persistência falhar
func (m *Monitor) Start(ctx context.Context) error {
	log.Printf("Monitor iniciado. Coletando ofertas a cada %v", m.cfg.CheckInterval)

	if _, err := m.RunOnce(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(m.cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Monitor encerrado")
			return nil
		case <-ticker.C:
			if _, err := m.RunOnce(ctx); err != nil {
				return err
			}
		}
	}
}

func (m *Monitor) notify(report scraper.Report) {
	if m.notifier == nil {
		return
	}
	if err := m.notifier.Notify(Summary(report)); err != nil {
		log.Printf("Erro ao enviar notificação: %v", err)
	}
}

// Summary monta a mensagem enviada após cada coleta
func Summary(report scraper.Report) string {
	msg := fmt.Sprintf("🛒 Coleta concluída: %d oferta(s) salva(s) de %d página(s).", len(report.Batch), report.Pages)
	if report.Stop == scraper.StopFetchFailure {
		msg += "\n⚠️ A coleta parou por falha ao buscar uma página."
	}
	return msg
}
