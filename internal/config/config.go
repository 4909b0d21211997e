package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration.
type AppConfig struct {
	DBHost             string
	DBPort             int
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	DBTimezone         string
	ServerPort         int
	ServerHost         string
	ServerFramework    string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	AppEnv             string
	LogLevel           string
	AppName            string
	CorsAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int
	SwaggerHost        string
	SwaggerBasePath    string
	SwaggerSchemes     []string
	JWTSecret          string
	JWTExpiration      time.Duration
	BcryptCost         int
}

// LoadConfig loads configuration from .env file or environment variables.
func LoadConfig(envFile ...string) (*AppConfig, error) {
	if len(envFile) > 0 {
		if _, err := os.Stat(envFile[0]); err == nil {
			if err := godotenv.Load(envFile[0]); err != nil {
				log.Printf("Warning: Could not load .env file: %v. Using environment variables or defaults.", err)
			}
		} else {
			log.Printf("Warning: Specified .env file %s not found. Using environment variables or defaults.", envFile[0])
		}
	} else {
		if _, err := os.Stat("config.env"); err == nil {
			if err := godotenv.Load("config.env"); err != nil {
				log.Printf("Warning: Could not load default config.env file: %v. Using environment variables or defaults.", err)
			}
		}
	}

	cfg := &AppConfig{
		DBHost:             getStringEnv("DB_HOST", "localhost"),
		DBPort:             getIntEnv("DB_PORT", 5432),
		DBUser:             getStringEnv("DB_USER", "postgres"),
		DBPassword:         getStringEnv("DB_PASSWORD", "password"),
		DBName:             getStringEnv("DB_NAME", "samadhi_tracker"),
		DBSslMode:          getStringEnv("DB_SSL_MODE", "disable"),
		DBTimezone:         getStringEnv("DB_TIMEZONE", "UTC"),
		ServerPort:         getIntEnv("SERVER_PORT", 8080),
		ServerHost:         getStringEnv("SERVER_HOST", "0.0.0.0"),
		ServerFramework:    strings.ToLower(getStringEnv("SERVER_FRAMEWORK", "fiber")),
		ServerReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", "15s"),
		ServerWriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", "15s"),
		ServerIdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", "60s"),
		AppEnv:             strings.ToLower(getStringEnv("APP_ENV", "development")),
		LogLevel:           strings.ToLower(getStringEnv("LOG_LEVEL", "info")),
		AppName:            getStringEnv("APP_NAME", "Samadhi Tracker"),
		CorsAllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", "*"),
		RateLimitPerSecond: getFloatEnv("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		SwaggerHost:        getStringEnv("SWAGGER_HOST", "localhost:8080"),
		SwaggerBasePath:    getStringEnv("SWAGGER_BASE_PATH", "/api/v1"),
		SwaggerSchemes:     getSliceEnv("SWAGGER_SCHEMES", "http,https"),
		JWTSecret:          getStringEnv("JWT_SECRET", ""),
		JWTExpiration:      getDurationEnv("JWT_EXPIRATION", "168h"),
		BcryptCost:         getIntEnv("BCRYPT_COST", 12),
	}

	if cfg.ServerFramework != "fiber" && cfg.ServerFramework != "gin" {
		log.Printf("Warning: Invalid SERVER_FRAMEWORK '%s'. Defaulting to 'fiber'.", cfg.ServerFramework)
		cfg.ServerFramework = "fiber"
	}

	validAppEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validAppEnvs[cfg.AppEnv] {
		log.Printf("Warning: Invalid APP_ENV '%s'. Defaulting to 'development'.", cfg.AppEnv)
		cfg.AppEnv = "development"
	}

	if cfg.JWTSecret == "" {
		log.Printf("Warning: JWT_SECRET not set. Using an insecure development default.")
		cfg.JWTSecret = "insecure-dev-secret"
	}

	return cfg, nil
}

func getStringEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid value for %s: %s. Using default %d.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func getDurationEnv(key, defaultValue string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s: %s. Using default %s.", key, valueStr, defaultValue)
		defaultDur, _ := time.ParseDuration(defaultValue)
		return defaultDur
	}
	return value
}

func getSliceEnv(key, defaultValue string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		valueStr = defaultValue
	}
	if valueStr == "" {
		return []string{}
	}
	return strings.Split(valueStr, ",")
}

func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s: %s. Using default %f.", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
