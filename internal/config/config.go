package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config carries all runtime settings, read once from the environment.
type Config struct {
	Port        int
	JWTSecret   []byte
	DatabaseURL string
	RedisAddr   string // empty disables login throttling
	KafkaBroker string // empty disables entity change events
	SentryDSN   string // empty disables error capture
	CORSOrigins []string
}

// Load reads configuration from the environment. DB settings are required;
// redis, kafka and sentry are optional integrations.
func Load() (*Config, error) {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	dsn, err := databaseURL()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        port,
		JWTSecret:   []byte(secret),
		DatabaseURL: dsn,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
		CORSOrigins: []string{"*"},
	}

	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.CORSOrigins = []string{origin}
	}

	return cfg, nil
}

func databaseURL() (string, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn, nil
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return "", fmt.Errorf("DB_HOST environment variable is required")
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		return "", fmt.Errorf("DB_PORT environment variable is required")
	}
	user := os.Getenv("DB_USERNAME")
	if user == "" {
		return "", fmt.Errorf("DB_USERNAME environment variable is required")
	}
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		return "", fmt.Errorf("DB_PASSWORD environment variable is required")
	}
	database := os.Getenv("DB_DATABASE")
	if database == "" {
		return "", fmt.Errorf("DB_DATABASE environment variable is required")
	}

	// Use url.UserPassword to properly encode username and password.
	userInfo := url.UserPassword(user, password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		host,
		port,
		url.PathEscape(database),
	), nil
}
