package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process settings. Values come from the environment,
// optionally pre-populated from .env files.
type Config struct {
	HTTPAddr      string
	DatabaseDSN   string
	LogLevel      string
	LogFormat     string
	LogFile       string
	HandoffPhone  string
	HandoffLocale string
	SeedOnStart   bool
}

// Load reads envFiles (".env" when none are given) into the environment and
// resolves the configuration. Missing env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("handoff_locale", "ar")
	v.SetDefault("seed_on_start", false)
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", "5432")

	cfg := &Config{
		HTTPAddr:      v.GetString("http_addr"),
		DatabaseDSN:   v.GetString("database_dsn"),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
		LogFile:       v.GetString("log_file"),
		HandoffPhone:  v.GetString("handoff_phone"),
		HandoffLocale: v.GetString("handoff_locale"),
		SeedOnStart:   v.GetBool("seed_on_start"),
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = postgresDSN(v)
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN or POSTGRES_USER/POSTGRES_DB must be set")
	}
	return cfg, nil
}

func postgresDSN(v *viper.Viper) string {
	user, db := v.GetString("postgres_user"), v.GetString("postgres_db")
	if user == "" || db == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, v.GetString("postgres_password")),
		Host:     v.GetString("postgres_host") + ":" + v.GetString("postgres_port"),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
