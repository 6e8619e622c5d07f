package config

import (
	"fmt"
	"time"
)

// Config represents the complete configuration for the appo service.
// It provides type-safe access to all configuration values with validation.
type Config struct {
	Server     ServerConfig     `koanf:"server"     validate:"required"`
	Database   DatabaseConfig   `koanf:"database"   validate:"required"`
	Redis      RedisConfig      `koanf:"redis"`
	Runtime    RuntimeConfig    `koanf:"runtime"    validate:"required"`
	Validation ValidationConfig `koanf:"validation" validate:"required"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host        string        `koanf:"host"         validate:"required"        env:"SERVER_HOST"`
	Port        int           `koanf:"port"         validate:"min=1,max=65535" env:"SERVER_PORT"`
	CORSEnabled bool          `koanf:"cors_enabled"                            env:"SERVER_CORS_ENABLED"`
	Timeout     time.Duration `koanf:"timeout"                                 env:"SERVER_TIMEOUT"`
}

// FullAddress returns the host:port pair the server binds to.
func (c *ServerConfig) FullAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig contains database connection configuration.
type DatabaseConfig struct {
	ConnString  string `koanf:"conn_string"  env:"DB_CONN_STRING"`
	Host        string `koanf:"host"         env:"DB_HOST"`
	Port        string `koanf:"port"         env:"DB_PORT"`
	User        string `koanf:"user"         env:"DB_USER"`
	Password    string `koanf:"password"     env:"DB_PASSWORD"    sensitive:"true"`
	DBName      string `koanf:"name"         env:"DB_NAME"`
	SSLMode     string `koanf:"ssl_mode"     env:"DB_SSL_MODE"`
	AutoMigrate bool   `koanf:"auto_migrate" env:"DB_AUTO_MIGRATE"`
}

// DSN returns the connection string, assembling one from the discrete
// fields when conn_string is not set explicitly.
func (c *DatabaseConfig) DSN() string {
	if c.ConnString != "" {
		return c.ConnString
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// RedisConfig contains Redis cache configuration.
type RedisConfig struct {
	Enabled  bool          `koanf:"enabled"   env:"REDIS_ENABLED"`
	Addr     string        `koanf:"addr"      env:"REDIS_ADDR"`
	Password string        `koanf:"password"  env:"REDIS_PASSWORD" sensitive:"true"`
	DB       int           `koanf:"db"        env:"REDIS_DB"`
	CacheTTL time.Duration `koanf:"cache_ttl" env:"REDIS_CACHE_TTL"`
}

// RuntimeConfig contains runtime behavior configuration.
type RuntimeConfig struct {
	Environment string `koanf:"environment" validate:"oneof=development staging production" env:"RUNTIME_ENVIRONMENT"`
	LogLevel    string `koanf:"log_level"   validate:"oneof=debug info warn error"          env:"RUNTIME_LOG_LEVEL"`
	LogJSON     bool   `koanf:"log_json"                                                    env:"RUNTIME_LOG_JSON"`
}

// ValidationConfig carries the identifier patterns enforced on path
// parameters. The grammars are owned by the wider platform, so they are
// configuration rather than code.
type ValidationConfig struct {
	TenantIDPattern      string `koanf:"tenant_id_pattern"       validate:"required" env:"VALIDATION_TENANT_ID_PATTERN"`
	AppInstanceIDPattern string `koanf:"app_instance_id_pattern" validate:"required" env:"VALIDATION_APP_INSTANCE_ID_PATTERN"`
}

const uuidPattern = `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`

// Default returns the configuration defaults applied before env overrides.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8091,
			CORSEnabled: true,
			Timeout:     15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:        "localhost",
			Port:        "5432",
			User:        "appo",
			DBName:      "appo",
			SSLMode:     "disable",
			AutoMigrate: true,
		},
		Redis: RedisConfig{
			Enabled:  false,
			Addr:     "localhost:6379",
			CacheTTL: 30 * time.Second,
		},
		Runtime: RuntimeConfig{
			Environment: "development",
			LogLevel:    "info",
		},
		Validation: ValidationConfig{
			TenantIDPattern:      uuidPattern,
			AppInstanceIDPattern: uuidPattern,
		},
	}
}
