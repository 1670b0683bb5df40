package commands

import (
	"context"
	"fmt"
	"os"

	"ofertas-scraper/config"
	"ofertas-scraper/internal/monitor"
	"ofertas-scraper/internal/scraper"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "scraper",
	Short:         "scraper coleta as ofertas do Mercado Livre e salva num banco SQLite.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScrape,
}

var (
	flagPages int
	flagDB    string
	flagTable string
	flagURL   string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagPages, "pages", 0, "número máximo de páginas (padrão: SCRAPER_MAX_PAGES)")
	pf.StringVar(&flagDB, "db", "", "caminho do banco SQLite (padrão: DATABASE_PATH)")
	pf.StringVar(&flagTable, "table", "", "tabela de ofertas (padrão: SCRAPER_TABLE)")
	pf.StringVar(&flagURL, "url", "", "URL base da listagem, o número da página é concatenado no final")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig junta o ambiente com as flags da linha de comando
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configurações: %w", err)
	}
	if flagPages > 0 {
		cfg.MaxPages = flagPages
	}
	if flagDB != "" {
		cfg.DatabasePath = flagDB
	}
	if flagTable != "" {
		cfg.TableName = flagTable
	}
	if flagURL != "" {
		cfg.BaseURL = flagURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newMonitor monta o pipeline de coleta para o site da URL configurada
func newMonitor(cfg *config.Config, notifier monitor.Notifier) *monitor.Monitor {
	site := scraper.NewRegistry().FindSite(cfg.BaseURL)
	if site == nil {
		site = scraper.NewMercadoLivre()
	}
	acc := scraper.NewAccumulator(
		scraper.NewHTTPFetcher(cfg.RequestTimeout),
		scraper.NewExtractor(site.Selectors()),
	)
	return monitor.New(cfg, acc, notifier)
}
