package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Upstream   Upstream   `yaml:"upstream"`
	Cache      Cache      `yaml:"cache"`
	Session    Session    `yaml:"session"`
	Auth       Auth       `yaml:"auth"`
	Display    Display    `yaml:"display"`
	HTTPServer HTTPServer `yaml:"http_server"`
}

type Upstream struct {
	URL     string        `yaml:"url" env:"UPSTREAM_URL" env-default:"https://api.hackthenorth.com/v3/events"`
	Timeout time.Duration `yaml:"timeout" env-default:"10s"`
}

type Cache struct {
	Fresh time.Duration `yaml:"fresh" env-default:"5m"`
	Stale time.Duration `yaml:"stale" env-default:"10m"`
}

type Session struct {
	Path string `yaml:"path" env:"SESSION_PATH" env-default:"./session.db"`
}

// Auth holds the single hardcoded credential pair. This gate is
// presentation-only: it toggles which events are shown, nothing more.
type Auth struct {
	Username string `yaml:"username" env:"AUTH_USERNAME" env-default:"hacker"`
	Password string `yaml:"password" env:"AUTH_PASSWORD" env-default:"htn2026"`
}

type Display struct {
	// Timezone is the IANA zone used for date grouping and labels.
	// Empty means the process-local zone.
	Timezone string `yaml:"timezone" env:"DISPLAY_TIMEZONE" env-default:""`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}

// Location resolves the configured display timezone.
func (d Display) Location() (*time.Location, error) {
	if d.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(d.Timezone)
}
