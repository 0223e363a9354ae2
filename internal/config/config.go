package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default; nothing is required, so a bare `go run` works.
type Config struct {
	// Server
	Host string
	Port string
	Env  string

	// HTTP timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// Request size limits
	MaxHeaderBytes int
	MaxBodyBytes   int64
}

// Load reads configuration from the environment. A .env file in the working
// directory seeds the environment first when present; a missing file is not
// an error, and real environment variables always win over .env values.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Host: getEnv("HOST", "0.0.0.0"),
		Port: getEnv("PORT", "8000"),
		Env:  getEnv("APP_ENV", "dev"),

		ReadTimeout:       getDuration("READ_TIMEOUT", 5*time.Second),
		ReadHeaderTimeout: getDuration("READ_HEADER_TIMEOUT", 2*time.Second),
		WriteTimeout:      getDuration("WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:       getDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		MaxHeaderBytes: getInt("MAX_HEADER_BYTES", 64<<10),
		MaxBodyBytes:   int64(getInt("MAX_BODY_BYTES", 1<<20)),
	}
}

// Addr returns the host:port pair the HTTP server binds.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
