package commands

import (
	"log"

	"ofertas-scraper/internal/bot"
	"ofertas-scraper/internal/monitor"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Coleta periodicamente; com TELEGRAM_BOT_TOKEN também atende comandos do bot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		var telegramBot *tgbotapi.BotAPI
		var notifier monitor.Notifier
		if cfg.TelegramBotToken != "" {
			telegramBot, err = bot.Init(cfg.TelegramBotToken)
			if err != nil {
				return err
			}
			if n := bot.NewNotifier(telegramBot, cfg.TelegramChatID); n != nil {
				notifier = n
			}
		} else {
			log.Println("TELEGRAM_BOT_TOKEN não configurado, rodando sem bot")
		}

		m := newMonitor(cfg, notifier)
		if telegramBot != nil {
			go bot.SetupCommands(ctx, telegramBot, cfg, m)
		}

		if err := m.Start(ctx); err != nil {
			return err
		}
		log.Println("Encerrando...")
		return nil
	},
}
