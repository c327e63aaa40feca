package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	SQLitePath      string
	ServerPort      string
	LogLevel        string
	GinMode         string
	AutoMigrate     bool
	ShutdownTimeout time.Duration
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", DriverPostgres),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "inspo_user"),
		DBPassword:      getEnv("DB_PASSWORD", "inspo_pass"),
		DBName:          getEnv("DB_NAME", "inspo_db"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		SQLitePath:      getEnv("SQLITE_PATH", "file::memory:?cache=shared"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GinMode:         getEnv("GIN_MODE", "release"),
		AutoMigrate:     getEnvBool("AUTO_MIGRATE", true),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// PostgresDSN is the keyword/value connection string used by the gorm driver.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSSLMode
}

// MigrateURL is the same database addressed as a golang-migrate pgx/v5 URL.
func (c *Config) MigrateURL() string {
	return "pgx5://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value)
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value)
		return defaultVal
	}
	return d
}
