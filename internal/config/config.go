package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultLogLevel = "info"

// Config holds the bookshelf runtime settings.
type Config struct {
	LogLevel string
}

// Load reads .env and .env.local, then the process environment.
func Load() Config {
	loadEnvFiles()
	return Config{
		LogLevel: getEnv("BOOKSHELF_LOG_LEVEL", defaultLogLevel),
	}
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
