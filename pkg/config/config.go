// Package config reads the service configuration from the environment.
//
// Values come from process environment variables, optionally preloaded from a
// .env file. Every key has a default so the API can boot against a local
// postgres with no configuration at all.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppName string
	Port    string

	DB DatabaseConfig

	JWTSecret string
	TokenTTL  time.Duration

	PasswordMinLength     int
	PasswordMaxSimilarity float64

	AMQPURL      string
	AMQPExchange string

	SeedAdminEmail        string
	SeedAdminPassword     string
	SeedAdminSecretAnswer string
}

type DatabaseConfig struct {
	Driver       string
	URL          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	TimeZone     string
	LogLevel     string
	MaxIdleConns int
	MaxOpenConns int
}

var defaults = map[string]any{
	"app_name":                "Netplas Inventory API v1.0",
	"port":                    "3000",
	"db_driver":               DriverPostgres,
	"db_host":                 "localhost",
	"db_port":                 "5432",
	"db_user":                 "postgres",
	"db_name":                 "netplas",
	"db_timezone":             "UTC",
	"db_log_level":            "warn",
	"db_max_idle_conns":       10,
	"db_max_open_conns":       100,
	"jwt_secret":              "your-super-secret-key-change-in-production",
	"token_ttl":               "8760h",
	"password_min_length":     8,
	"password_max_similarity": 0.7,
	"amqp_exchange":           "netplas.events",
	"seed_admin_email":        "admin@example.com",
	"seed_admin_password":     "",
}

// Load reads the optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// Keys without a default are still bound so AutomaticEnv picks them up.
	for _, key := range []string{"database_url", "db_password", "amqp_url", "seed_admin_secret_answer"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		AppName: v.GetString("app_name"),
		Port:    v.GetString("port"),
		DB: DatabaseConfig{
			Driver:       v.GetString("db_driver"),
			URL:          v.GetString("database_url"),
			Host:         v.GetString("db_host"),
			Port:         v.GetString("db_port"),
			User:         v.GetString("db_user"),
			Password:     v.GetString("db_password"),
			Name:         v.GetString("db_name"),
			TimeZone:     v.GetString("db_timezone"),
			LogLevel:     v.GetString("db_log_level"),
			MaxIdleConns: v.GetInt("db_max_idle_conns"),
			MaxOpenConns: v.GetInt("db_max_open_conns"),
		},
		JWTSecret:             v.GetString("jwt_secret"),
		TokenTTL:              v.GetDuration("token_ttl"),
		PasswordMinLength:     v.GetInt("password_min_length"),
		PasswordMaxSimilarity: v.GetFloat64("password_max_similarity"),
		AMQPURL:               v.GetString("amqp_url"),
		AMQPExchange:          v.GetString("amqp_exchange"),
		SeedAdminEmail:        v.GetString("seed_admin_email"),
		SeedAdminPassword:     v.GetString("seed_admin_password"),
		SeedAdminSecretAnswer: v.GetString("seed_admin_secret_answer"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (use %s or %s)", c.DB.Driver, DriverPostgres, DriverSQLite)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.PasswordMinLength < 1 {
		return fmt.Errorf("PASSWORD_MIN_LENGTH must be at least 1, got %d", c.PasswordMinLength)
	}
	if c.PasswordMaxSimilarity <= 0 || c.PasswordMaxSimilarity > 1 {
		return fmt.Errorf("PASSWORD_MAX_SIMILARITY must be in (0, 1], got %v", c.PasswordMaxSimilarity)
	}
	if c.SeedAdminPassword != "" {
		if c.SeedAdminSecretAnswer == "" {
			return errors.New("SEED_ADMIN_SECRET_ANSWER is required with SEED_ADMIN_PASSWORD")
		}
		if c.SeedAdminSecretAnswer == c.SeedAdminPassword {
			return errors.New("SEED_ADMIN_SECRET_ANSWER must differ from SEED_ADMIN_PASSWORD")
		}
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a DSN assembled from the parts.
// For sqlite the name is used as the database file path.
func (c *Config) DSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	if c.DB.Driver == DriverSQLite {
		return c.DB.Name + ".db?_foreign_keys=1"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.TimeZone,
	)
}
