package config

import "os"

// Config carries process-level settings, all sourced from the environment
// (a .env file is loaded first when present).
type Config struct {
	HTTPAddr    string
	StoreDriver string // "memory" (default) or "sqlite"
	SqlitePath  string
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		StoreDriver: getenv("STORE_DRIVER", "memory"),
		SqlitePath:  getenv("SQLITE_PATH", "restaurant-ops.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
