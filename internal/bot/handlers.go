package bot

import (
	"context"
	"fmt"
	"html"
	"log"
	"strconv"
	"strings"

	"ofertas-scraper/config"
	"ofertas-scraper/internal/database"
	"ofertas-scraper/internal/models"
	"ofertas-scraper/internal/monitor"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxTail = 50

const helpText = `🤖 <b>Bot de Ofertas</b>

<b>Comandos disponíveis:</b>

<b>/total</b> - Quantidade de ofertas salvas no banco

<b>/ultimas [n]</b> - Mostrar as últimas ofertas coletadas
Exemplo: /ultimas 5

<b>/coletar</b> - Executar uma coleta agora

<b>/help</b> - Mostrar esta mensagem de ajuda
`

// SetupCommands trata os comandos do bot até o contexto ser cancelado
func SetupCommands(ctx context.Context, bot *tgbotapi.BotAPI, cfg *config.Config, m *monitor.Monitor) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)
	defer bot.StopReceivingUpdates()

	for {
		var update tgbotapi.Update
		var ok bool
		select {
		case <-ctx.Done():
			return
		case update, ok = <-updates:
			if !ok {
				return
			}
		}

		if update.Message == nil || update.Message.Text == "" {
			continue
		}

		command, args := parseCommand(update.Message.Text)
		if command == "" {
			continue
		}
		chatID := update.Message.Chat.ID

		// Comandos públicos (não precisam de autorização)
		isPublicCommand := command == "/start" || command == "/help"
		if !isPublicCommand && cfg.TelegramChatID != 0 && chatID != cfg.TelegramChatID {
			send(bot, chatID, "Você não está autorizado a usar este bot.", false)
			continue
		}

		switch command {
		case "/start", "/help":
			send(bot, chatID, helpText, true)
		case "/total":
			handleTotal(bot, chatID, cfg)
		case "/ultimas":
			handleTail(bot, chatID, cfg, args)
		case "/coletar":
			handleCollect(ctx, bot, chatID, m)
		default:
			send(bot, chatID, "Comando não reconhecido. Use /help para ver os comandos disponíveis.", false)
		}
	}
}

// parseCommand separa o comando (sem @botname) dos argumentos
func parseCommand(text string) (string, []string) {
	parts := strings.Fields(text)
	if len(parts) == 0 || !strings.HasPrefix(parts[0], "/") {
		return "", nil
	}
	command := strings.ToLower(parts[0])
	if idx := strings.Index(command, "@"); idx > 0 {
		command = command[:idx]
	}
	return command, parts[1:]
}

// tailSize interpreta o argumento de /ultimas
func tailSize(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("quantidade inválida: %s", args[0])
	}
	return min(n, maxTail), nil
}

func handleTotal(bot *tgbotapi.BotAPI, chatID int64, cfg *config.Config) {
	db, err := database.OpenExisting(cfg.DatabasePath)
	if err != nil {
		send(bot, chatID, "📋 Nenhuma oferta coletada ainda.", false)
		return
	}
	defer db.Close()

	n, err := db.CountOffers(cfg.TableName)
	if err != nil {
		send(bot, chatID, fmt.Sprintf("❌ Erro ao contar ofertas: %v", err), false)
		return
	}
	send(bot, chatID, fmt.Sprintf("📦 Total de ofertas salvas: %d", n), false)
}

func handleTail(bot *tgbotapi.BotAPI, chatID int64, cfg *config.Config, args []string) {
	n, err := tailSize(args, cfg.TailSize)
	if err != nil {
		send(bot, chatID, "❌ Formato incorreto.\n\nUso: /ultimas <n>\n\nExemplo: /ultimas 5", false)
		return
	}

	db, err := database.OpenExisting(cfg.DatabasePath)
	if err != nil {
		send(bot, chatID, "📋 Nenhuma oferta coletada ainda.", false)
		return
	}
	defer db.Close()

	offers, err := db.TailOffers(cfg.TableName, n)
	if err != nil {
		send(bot, chatID, fmt.Sprintf("❌ Erro ao listar ofertas: %v", err), false)
		return
	}
	if len(offers) == 0 {
		send(bot, chatID, "📋 Nenhuma oferta coletada ainda.", false)
		return
	}
	send(bot, chatID, formatOffers(offers), true)
}

func handleCollect(ctx context.Context, bot *tgbotapi.BotAPI, chatID int64, m *monitor.Monitor) {
	send(bot, chatID, "⏳ Coletando ofertas...", false)

	report, err := m.RunOnce(ctx)
	if err != nil {
		log.Printf("Erro na coleta pedida pelo chat %d: %v", chatID, err)
		send(bot, chatID, fmt.Sprintf("❌ Erro ao coletar ofertas: %v", err), false)
		return
	}
	send(bot, chatID, monitor.Summary(report), false)
}

// formatOffers monta a lista de ofertas em HTML
func formatOffers(offers []models.Offer) string {
	var response strings.Builder
	response.WriteString("📋 <b>Últimas ofertas:</b>\n\n")

	for _, o := range offers {
		response.WriteString(fmt.Sprintf("📦 %s\n", html.EscapeString(o.Product)))
		response.WriteString(fmt.Sprintf("💰 <b>%s</b>", html.EscapeString(o.Price)))
		if o.Discount != "" {
			response.WriteString(fmt.Sprintf(" 🎉 %s", html.EscapeString(o.Discount)))
		}
		response.WriteString("\n")
		if !o.IncludedIn.IsZero() {
			response.WriteString(fmt.Sprintf("🕐 %s\n", o.IncludedIn.Format("02/01/2006 15:04")))
		}
		response.WriteString("\n")
	}
	return response.String()
}

// send envia a mensagem, tentando sem formatação se o HTML for rejeitado
func send(bot *tgbotapi.BotAPI, chatID int64, text string, asHTML bool) {
	msg := tgbotapi.NewMessage(chatID, text)
	if asHTML {
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Erro ao enviar mensagem: %v", err)
		if asHTML {
			msg.ParseMode = ""
			if _, err2 := bot.Send(msg); err2 != nil {
				log.Printf("Erro ao enviar mensagem sem formatação: %v", err2)
			}
		}
	}
}
