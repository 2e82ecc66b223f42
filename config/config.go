package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
		return
	}

	log.Println("Successfully loaded environment variables")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// GetEnvOr returns the variable or a fallback when it is unset.
func GetEnvOr(v, fallback string) string {
	if b, err := GetEnvVariable(v); err == nil {
		return b
	}
	return fallback
}
