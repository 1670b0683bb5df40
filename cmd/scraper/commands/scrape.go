package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Coleta as páginas de ofertas uma vez e acrescenta o lote ao banco.",
	RunE:  runScrape,
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, err = newMonitor(cfg, nil).RunOnce(cmd.Context())
	return err
}
