package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	GroqAPIKey  string     `env:"GROQ_API_KEY"`
	Port        string     `env:"PORT"          envDefault:"9000"`
	LLMBaseURL  string     `env:"LLM_BASE_URL"  envDefault:"https://api.groq.com/openai/v1/"`
	LLMModel    string     `env:"LLM_MODEL"     envDefault:"mixtral-8x7b-32768"`
	WikiBaseURL string     `env:"WIKI_BASE_URL" envDefault:"https://en.wikipedia.org"`
	LogLevel    slog.Level `env:"LOG_LEVEL"     envDefault:"INFO"`

	TelegramToken string  `env:"TELEGRAM_TOKEN"`
	AllowedUsers  []int64 `env:"ALLOWED_USERS"`
	DigestChatIDs []int64 `env:"DIGEST_CHAT_IDS"`
	DigestSpec    string  `env:"DIGEST_SPEC"     envDefault:"0 9 * * *"`
}

func LoadConfig() (Config, error) {
	return env.ParseAs[Config]()
}

// BotEnabled reports whether the Telegram front end should be started.
func (c Config) BotEnabled() bool {
	return c.TelegramToken != ""
}
