package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
}

type ServerConfig struct {
	Port            int
	Root            string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	// Load .env if present (a missing file is not an error)
	_ = godotenv.Load()

	// A set-but-unparseable PORT (including an empty value) is a startup
	// error, never a silent fallback to the default.
	portValue, ok := os.LookupEnv("PORT")
	if !ok {
		portValue = "10000"
	}
	port, err := strconv.Atoi(portValue)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT: %d is out of range", port)
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	root := getEnv("ROOT", ".")
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("invalid ROOT: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("invalid ROOT: %s is not a directory", root)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            port,
			Root:            root,
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ShutdownTimeout: shutdownTimeout,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
