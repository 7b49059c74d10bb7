package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config se lee una sola vez al arrancar, desde variables de entorno.
type Config struct {
	Port        string `mapstructure:"port" validate:"required,numeric"`
	DatabaseURL string `mapstructure:"database_url"`

	DBMaxOpenConns int  `mapstructure:"db_max_open_conns" validate:"gte=1"`
	DBMaxIdleConns int  `mapstructure:"db_max_idle_conns" validate:"gte=0"`
	AutoMigrate    bool `mapstructure:"auto_migrate"`

	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`
	AppName   string `mapstructure:"app_name"`
}

var defaults = map[string]any{
	"port":              "5000",
	"database_url":      "",
	"db_max_open_conns": 10,
	"db_max_idle_conns": 5,
	"auto_migrate":      true,
	"log_level":         "info",
	"log_format":        "text",
	"app_name":          "medications-api",
}

// Load lee PORT, DATABASE_URL, DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS,
// AUTO_MIGRATE, LOG_LEVEL, LOG_FORMAT y APP_NAME.
// DATABASE_URL vacío no es error: el caller decide (modo memoria).
func Load() (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}
