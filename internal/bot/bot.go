package bot

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Init inicializa o bot do Telegram
func Init(token string) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN não configurado. Verifique o arquivo .env")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		if err.Error() == "Unauthorized" {
			return nil, fmt.Errorf("token do Telegram inválido ou expirado. Verifique o TELEGRAM_BOT_TOKEN no arquivo .env. Para obter um token, fale com @BotFather no Telegram")
		}
		return nil, fmt.Errorf("erro ao conectar com Telegram: %v", err)
	}

	bot.Debug = false
	log.Printf("Bot autorizado como: %s", bot.Self.UserName)
	return bot, nil
}

// Notifier envia mensagens para o chat configurado
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier cria um notificador; sem chat configurado retorna nil
func NewNotifier(bot *tgbotapi.BotAPI, chatID int64) *Notifier {
	if bot == nil || chatID == 0 {
		return nil
	}
	return &Notifier{bot: bot, chatID: chatID}
}

// Notify envia o texto ao chat autorizado
func (n *Notifier) Notify(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return err
	}
	log.Printf("Notificação enviada para o chat %d", n.chatID)
	return nil
}
