package config

import "os"

type Config struct {
	DatabaseDSN string
	Env         string
}

// Load reads configuration from the environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by the caller) > default.
func Load() Config {
	return Config{
		DatabaseDSN: getEnv("DATABASE_DSN", "data/brewcode.db"),
		Env:         getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
