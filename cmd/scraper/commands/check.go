package commands

import (
	"os"

	"ofertas-scraper/internal/database"
	"ofertas-scraper/internal/report"

	"github.com/spf13/cobra"
)

var flagTail int

func init() {
	checkCmd.Flags().IntVar(&flagTail, "tail", 0, "quantidade de ofertas exibidas (padrão: SUMMARY_TAIL)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Mostra o total de ofertas salvas e as últimas linhas da tabela.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tail := cfg.TailSize
		if flagTail > 0 {
			tail = flagTail
		}

		db, err := database.OpenExisting(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		total, err := db.CountOffers(cfg.TableName)
		if err != nil {
			return err
		}
		offers, err := db.TailOffers(cfg.TableName, tail)
		if err != nil {
			return err
		}

		report.PrintSummary(os.Stdout, total, offers, tail)
		return nil
	},
}
