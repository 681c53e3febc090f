package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"budget-engine/internal/models"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrUnknownDBDriver      = errors.New("DB_DRIVER must be postgres or sqlite")
	ErrInvalidCurrency      = errors.New("BUDGET_DEFAULT_CURRENCY must be a three letter currency code")
	ErrInvalidConcurrency   = errors.New("BUDGET_CONVERSION_CONCURRENCY must be positive")
	ErrInvalidLookupTimeout = errors.New("RATE_LOOKUP_TIMEOUT must be positive")
	ErrUnparsableValue      = errors.New("value does not parse")
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Budget   BudgetConfig
	Rates    RatesConfig
	Sync     SyncConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	SeedDemoData    bool
}

type BudgetConfig struct {
	StartDayOfMonth       int
	DefaultCurrency       string
	ConversionConcurrency int
}

type RatesConfig struct {
	LookupTimeout       time.Duration
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type SyncConfig struct {
	AMQPURL    string
	Exchange   string
	RoutingKey string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads the configuration from the environment. Invalid values are
// reported, never clamped.
func Load() (*Config, error) {
	strict := &strictEnv{}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budget_user"),
			Password:        getEnv("DB_PASSWORD", "budget_password"),
			Name:            getEnv("DB_NAME", "budget_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "budget.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			SeedDemoData:    getBoolEnv("SEED_DEMO_DATA", false),
		},
		Budget: BudgetConfig{
			StartDayOfMonth:       strict.intEnv("BUDGET_START_DAY_OF_MONTH", models.MinStartDayOfMonth),
			DefaultCurrency:       strings.ToUpper(getEnv("BUDGET_DEFAULT_CURRENCY", "USD")),
			ConversionConcurrency: strict.intEnv("BUDGET_CONVERSION_CONCURRENCY", 8),
		},
		Rates: RatesConfig{
			LookupTimeout:       strict.durationEnv("RATE_LOOKUP_TIMEOUT", 2*time.Second),
			BreakerMaxFailures:  strict.intEnv("RATE_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: strict.durationEnv("RATE_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Sync: SyncConfig{
			AMQPURL:    os.Getenv("SYNC_AMQP_URL"),
			Exchange:   getEnv("SYNC_AMQP_EXCHANGE", "budget.sync"),
			RoutingKey: getEnv("SYNC_AMQP_ROUTING_KEY", "budgets.changed"),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	if err := strict.err(); err != nil {
		return nil, err
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that would otherwise fail later at construction time.
func (c *Config) Validate() error {
	if err := models.ValidateStartDayOfMonth(c.Budget.StartDayOfMonth); err != nil {
		return fmt.Errorf("BUDGET_START_DAY_OF_MONTH=%d: %w", c.Budget.StartDayOfMonth, err)
	}
	if !models.IsValidCurrencyCode(c.Budget.DefaultCurrency) {
		return ErrInvalidCurrency
	}
	if c.Budget.ConversionConcurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.Rates.LookupTimeout <= 0 {
		return ErrInvalidLookupTimeout
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnknownDBDriver
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in URL form, as golang-migrate expects it.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// SyncEnabled reports whether reorders are announced over AMQP.
func (c *Config) SyncEnabled() bool {
	return c.Sync.AMQPURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// strictEnv reads engine settings. A value that is set but does not parse is
// recorded as an error instead of falling back to the default.
type strictEnv struct {
	errs []error
}

func (e *strictEnv) intEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s=%q: %w", key, value, ErrUnparsableValue))
		return defaultValue
	}
	return intVal
}

func (e *strictEnv) durationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s=%q: %w", key, value, ErrUnparsableValue))
		return defaultValue
	}
	return duration
}

func (e *strictEnv) err() error {
	return errors.Join(e.errs...)
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
