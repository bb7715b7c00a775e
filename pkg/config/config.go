package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env and
// optionally a file).
type Config struct {
	App     AppConfig
	Bot     BotConfig
	Catalog CatalogConfig
	HTTP    HTTPConfig
	Contact ContactConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// BotConfig Telegram bot settings. Token is a secret and must be present;
// AdminIDs is the static allow-list of Telegram user IDs permitted to
// manage the catalog.
type BotConfig struct {
	Token    string
	AdminIDs []int64
}

// CatalogConfig location of the catalog workbook.
type CatalogConfig struct {
	File  string
	Sheet string // empty = first sheet
}

// HTTPConfig health endpoint listener.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ContactConfig the static "order more" contact surfaces shown in chat.
type ContactConfig struct {
	Phone       string
	TelURL      string
	WhatsAppURL string
}

// ErrMissingToken is fatal: the bot cannot start without its token.
var ErrMissingToken = errors.New("BOT_TOKEN is required")

// Load reads configuration from environment variables (and optionally from
// a .env / config.env file). Env vars take priority.
func Load() (*Config, error) {
	v := viper.New()

	// Optional configuration file (.env or config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignore if absent

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignore if absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "storebot"),
		},
		Bot: BotConfig{
			Token:    getString(v, "BOT_TOKEN", ""),
			AdminIDs: parseAdminIDs(getString(v, "ADMIN_IDS", "")),
		},
		Catalog: CatalogConfig{
			File:  getString(v, "CATALOG_FILE", "catalog.xlsx"),
			Sheet: getString(v, "CATALOG_SHEET", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Contact: ContactConfig{
			Phone:       getString(v, "CONTACT_PHONE", "+7 (928) 100-33-82"),
			TelURL:      getString(v, "CONTACT_TEL_URL", "tel:+79281003382"),
			WhatsAppURL: getString(v, "CONTACT_WHATSAPP_URL", "https://wa.me/79281003382"),
		},
	}

	if cfg.Bot.Token == "" {
		return nil, ErrMissingToken
	}
	return cfg, nil
}

// parseAdminIDs parses a comma-separated list of Telegram user IDs,
// skipping malformed entries.
func parseAdminIDs(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
