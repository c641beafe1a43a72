package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

const (
	defaultHost     = "localhost:8080"
	defaultLogLevel = "error"
)

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// NewConfig reads command line flags. Environment variables, when set,
// override them.
func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", defaultHost, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", defaultLogLevel, "Log level")
	flag.StringVar(&app.Mode, "m", AppModeDevelop, "PROD / DEV")
	flag.Parse()

	return parseEnv(&db, &http, &app)
}

// NewConfigFromEnv is NewConfig without command line flags.
func NewConfigFromEnv() (*Config, error) {
	return parseEnv(
		&Database{},
		&HTTP{HostString: defaultHost},
		&App{LogLevel: defaultLogLevel, Mode: AppModeDevelop},
	)
}

func parseEnv(db *Database, http *HTTP, app *App) (*Config, error) {
	err := env.Parse(db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	return &Config{
		Database: db,
		HTTP:     http,
		App:      app,
	}, nil
}
