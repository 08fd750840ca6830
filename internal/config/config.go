package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort        string   `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	RulesFile       string   `env:"RULES_FILE"`
	CORSOrigins     []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	LLMProvider   string  `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey  string  `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string  `env:"OPENAI_BASE_URL"`
	OpenAIModel   string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OllamaBaseURL string  `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaModel   string  `env:"OLLAMA_MODEL" envDefault:"llama3:8b-instruct"`
	AITemperature float64 `env:"AI_TEMPERATURE" envDefault:"0.2"`

	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr               string `env:"REDIS_ADDR"`
	RedisPassword           string `env:"REDIS_PASSWORD"`
	RedisDB                 int    `env:"REDIS_DB" envDefault:"0"`
	AdviceRateLimit         int    `env:"ADVICE_RATE_LIMIT" envDefault:"20"`
	AdviceRateWindowMinutes int    `env:"ADVICE_RATE_WINDOW_MINUTES" envDefault:"10"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AdviceRateWindow expresa la ventana del limitador como duracion.
func (c *Config) AdviceRateWindow() time.Duration {
	return time.Duration(c.AdviceRateWindowMinutes) * time.Minute
}
