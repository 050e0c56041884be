package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	GoogleProject   string
	CredentialsFile string
	Environment     string
	JWTSecret       string
	JWTExpiry       int64
	GatewayKey      string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "5000"),
		GoogleProject:   getEnv("GOOGLE_CLOUD_PROJECT", ""),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTExpiry:       getEnvAsInt64("JWT_EXPIRY", 60*60), // 1 hour
		GatewayKey:      getEnv("PAYMENT_GATEWAY_KEY", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
