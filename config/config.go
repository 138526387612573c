package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment (a .env file is loaded by main in
// development).
type Config struct {
	Port string `env:"PORT" env-default:"8080"`

	// DBURL selects Postgres when set; otherwise SQLitePath is opened.
	DBURL      string `env:"DB_URL" env-default:""`
	SQLitePath string `env:"SQLITE_PATH" env-default:"users.db"`

	JWTSecret string `env:"JWT_SECRET_KEY" env-required:"true"`

	// CookieDomain empty means local development: cookies stay host-only
	// and are sent over plain HTTP.
	CookieDomain string `env:"COOKIE_DOMAIN" env-default:""`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.CookieDomain == ""
}

func (c Config) CookieSecure() bool {
	return !c.IsDevelopment()
}
