package i18n

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig mirrors the construction settings sourced from the process
// environment.
type EnvConfig struct {
	Locale         string `env:"I18N_LOCALE" envDefault:"en"`
	FallbackLocale string `env:"I18N_FALLBACK_LOCALE"`
	MessagesDir    string `env:"I18N_MESSAGES_DIR"`
	MissingWarn    bool   `env:"I18N_MISSING_WARN" envDefault:"true"`
}

// LoadEnvConfig reads EnvConfig from the environment, loading a .env
// file first when one exists.
func LoadEnvConfig() (EnvConfig, error) {
	_ = godotenv.Load()

	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("i18n: parse env: %w", err)
	}
	return cfg, nil
}

// NewFromEnv constructs a Translator from the environment, wiring a
// DirLoader when I18N_MESSAGES_DIR is set. Extra options apply after
// the env derived ones and may override them.
func NewFromEnv(extra ...Option) (*Translator, error) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithLocale(cfg.Locale),
		WithMissingWarn(cfg.MissingWarn),
	}
	if cfg.FallbackLocale != "" {
		opts = append(opts, WithFallbackLocale(cfg.FallbackLocale))
	}
	if cfg.MessagesDir != "" {
		opts = append(opts, WithLoader(NewDirLoader(cfg.MessagesDir)))
	}
	opts = append(opts, extra...)

	return New(opts...)
}
