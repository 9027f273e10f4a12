// Package config carga la configuración del proceso en capas:
// defaults -> archivo YAML opcional (DOGSHELTER_CONFIG) -> variables DOGSHELTER_*.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "DOGSHELTER_"
	EnvConfigFile = "DOGSHELTER_CONFIG"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	ErrEmptyAddr     = errors.New("config: addr must not be empty")
	ErrUnknownDriver = errors.New("config: unknown db_driver")
	ErrMissingDSN    = errors.New("config: db_dsn is required for postgres")
	ErrMissingPath   = errors.New("config: db_path is required for sqlite")
)

type Config struct {
	// Addr es la dirección de escucha HTTP, p.ej. ":5100".
	Addr string `koanf:"addr"`

	// DBDriver: sqlite | postgres | memory.
	DBDriver string `koanf:"db_driver"`
	DBPath   string `koanf:"db_path"`
	DBDSN    string `koanf:"db_dsn"`

	// SeedFile es un fixture YAML para el driver memory (opcional).
	SeedFile string `koanf:"seed_file"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	AppName   string `koanf:"app_name"`

	MetricsEnabled bool `koanf:"metrics_enabled"`
	SwaggerEnabled bool `koanf:"swagger_enabled"`
}

func Default() *Config {
	return &Config{
		Addr:           ":5100",
		DBDriver:       DriverSQLite,
		DBPath:         "dogshelter.db",
		LogLevel:       "info",
		LogFormat:      "text",
		AppName:        "dogshelter",
		MetricsEnabled: true,
		SwaggerEnabled: true,
	}
}

// Load arma la Config sobre los defaults. ctx queda reservado para providers
// remotos; hoy no se usa.
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(EnvConfigFile)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	// DOGSHELTER_DB_DRIVER -> db_driver (claves planas, se conservan los "_")
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return ErrEmptyAddr
	}

	switch c.DBDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return ErrMissingPath
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return ErrMissingDSN
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.DBDriver)
	}
	return nil
}
