package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DataDir         string
	UserStoreDriver string // "yaml" or "sqlite3"
	UsersFile       string
	UserStoreDSN    string
	SecretKey       string
}

// Load reads configuration from the environment, optionally seeded from an
// env file named by ENV_FILE (default ".env").
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		Addr:            getEnv("ADDR", ":8080"),
		DataDir:         getEnv("DATA_DIR", "data"),
		UserStoreDriver: getEnv("USER_STORE_DRIVER", "yaml"),
		UsersFile:       getEnv("USERS_FILE", "users.yml"),
		UserStoreDSN:    getEnv("USER_STORE_DSN", "inkwell.db"),
		SecretKey:       getEnv("SECRET_KEY", "change-me-in-production"),
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
