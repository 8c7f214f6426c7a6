package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort            string
	AppDebug           bool
	DBDriver           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	SQLitePath         string
	DBMaxIdleConns     int
	DBMaxOpenConns     int
	JWTSecret          string
	JWTExpirationHours int
	AllowedOrigins     string
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
		log.Printf("Invalid boolean value for %s, defaulting to %t", key, defaultValue)
	}
	return defaultValue
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present. Defaults suit local development
// (sqlite store, debug signing secret); override them in production.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	return Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		AppDebug:           getEnvAsBool("APP_DEBUG", false),
		DBDriver:           getEnv("DB_DRIVER", "sqlite"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "taskflow"),
		DBPassword:         getEnv("DB_PASSWORD", "taskflow"),
		DBName:             getEnv("DB_NAME", "taskflow"),
		SQLitePath:         getEnv("SQLITE_PATH", "taskflow.db"),
		DBMaxIdleConns:     getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:     getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret-key"),
		JWTExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
	}
}
