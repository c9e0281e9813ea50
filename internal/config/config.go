package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI         string
	DBName           string
	Port             string
	FrontendURL      string
	StrictOrderRules bool
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:           getEnvOrDefault("DB_NAME", "thehook"),
		Port:             getEnvOrDefault("PORT", "8080"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", ""),
		StrictOrderRules: getBoolEnv("ORDER_STRICT_VALIDATION", false),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
