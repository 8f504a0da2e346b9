package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env (or the environment when no .env exists)
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error loading .env file: %v", err)
		}
	}
	return os.Getenv(key)
}
