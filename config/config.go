package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

const (
	DefaultBaseURL      = "https://www.mercadolivre.com.br/ofertas?container_id=MLB779362-1&page="
	DefaultMaxPages     = 20
	DefaultTimeout      = 10 * time.Second
	DefaultDatabasePath = "./scraper.db"
	DefaultTableName    = "offers"
	DefaultTailSize     = 10
	DefaultInterval     = 30
)

// identificadores SQL simples, o nome da tabela é interpolado nas queries
var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config contém as configurações da aplicação
type Config struct {
	BaseURL              string
	MaxPages             int
	RequestTimeout       time.Duration
	DatabasePath         string
	TableName            string
	TailSize             int
	CheckIntervalMinutes int
	CheckInterval        time.Duration
	TelegramBotToken     string
	TelegramChatID       int64
}

// Load carrega as configurações das variáveis de ambiente
func Load() (*Config, error) {
	cfg := &Config{
		BaseURL:              DefaultBaseURL,
		MaxPages:             DefaultMaxPages,
		RequestTimeout:       DefaultTimeout,
		DatabasePath:         DefaultDatabasePath,
		TableName:            DefaultTableName,
		TailSize:             DefaultTailSize,
		CheckIntervalMinutes: DefaultInterval,
		TelegramBotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if v, ok := os.LookupEnv("SCRAPER_BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SCRAPER_TABLE"); v != "" {
		cfg.TableName = v
	}

	cfg.MaxPages = positiveInt("SCRAPER_MAX_PAGES", cfg.MaxPages)
	cfg.TailSize = positiveInt("SUMMARY_TAIL", cfg.TailSize)
	cfg.CheckIntervalMinutes = positiveInt("CHECK_INTERVAL_MINUTES", cfg.CheckIntervalMinutes)
	cfg.CheckInterval = time.Duration(cfg.CheckIntervalMinutes) * time.Minute

	if secs := positiveInt("SCRAPER_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	// Chat ID é opcional, sem ele as notificações ficam desligadas
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		if chatID, err := strconv.ParseInt(chatIDStr, 10, 64); err == nil {
			cfg.TelegramChatID = chatID
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica os campos que não têm fallback
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("SCRAPER_BASE_URL não pode ser vazio")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("número máximo de páginas inválido: %d", c.MaxPages)
	}
	return ValidateTableName(c.TableName)
}

// ValidateTableName garante que o nome pode ser usado direto no SQL
func ValidateTableName(name string) error {
	if !tableNameRe.MatchString(name) {
		return fmt.Errorf("nome de tabela inválido: %q", name)
	}
	return nil
}

// positiveInt lê um inteiro positivo do ambiente, mantendo o padrão se inválido
func positiveInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
