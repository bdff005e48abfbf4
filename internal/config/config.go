package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string
	ListenAddr string
	GinMode    string
}

func Load() *Config {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "recorduser"),
		DBPassword: getEnv("DB_PASSWORD", "recordpassword"),
		DBName:     getEnv("DB_NAME", "recordstore"),
		SQLitePath: getEnv("SQLITE_PATH", "database.db"),
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
