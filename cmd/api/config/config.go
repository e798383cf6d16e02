package config

import (
	"github.com/caarlos0/env"
	"github.com/go-playground/validator/v10"
	// auto loads .env
	_ "github.com/joho/godotenv/autoload"
)

// Config for app, read once at startup and never mutated
type Config struct {
	BotToken     string `env:"BOT_TOKEN" validate:"required"`
	AuthToken    string `env:"AUTH_TOKEN" validate:"required"`
	Port         string `env:"PORT" envDefault:"4000"`
	TelegramHost string `env:"TELEGRAM_HOST" envDefault:"https://api.telegram.org"`
}

// New app config
func New() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	err := validator.New().Struct(cfg)
	return cfg, err
}
