package config

import (
	"fmt"
	"os"
	"time"
)

// Config carries every external endpoint the services talk to. It is loaded
// once in main and injected, so no package reads the environment on its own.
type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	SMTPAddr string
	SMTPFrom string

	// Peer service base URLs. Empty keeps the module in-process; in a
	// split deployment these point at the peers and switch the wiring to
	// the HTTP clients.
	ScheduleBaseURL string
	ProfileBaseURL  string

	PeerTimeout time.Duration

	JWTSecret string
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "worknest"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		RedisAddr:   get("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: get("KAFKA_BROKER", "localhost:9092"),

		SMTPAddr: get("SMTP_ADDR", ""),
		SMTPFrom: get("SMTP_FROM", ""),

		ScheduleBaseURL: get("SCHEDULE_BASE_URL", ""),
		ProfileBaseURL:  get("PROFILE_BASE_URL", ""),

		PeerTimeout: 5 * time.Second,

		JWTSecret: get("JWT_SECRET", ""),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
