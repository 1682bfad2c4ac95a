package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AppMode       string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	JWTSecret     string
	JWTExpiryMin  int
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Remote media storage credentials. Passed explicitly to the
	// storage client constructor, never read from the environment
	// inside request handling code.
	StorageRegion     string
	StorageBucket     string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageEndpoint   string
	StoragePublicBase string

	CleanupIntervalHours int
	ImageMaxWidth        int
	ImageQuality         int

	CORSAllowOrigins []string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		AppMode:       getEnv("APP_MODE", "debug"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "continuity"),
		DBPort:        getEnv("DB_PORT", "5432"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		JWTExpiryMin:  getEnvAsInt("JWT_EXPIRY_MIN", 60),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		StorageRegion:     getEnv("STORAGE_REGION", "us-east-1"),
		StorageBucket:     getEnv("STORAGE_BUCKET", ""),
		StorageAccessKey:  getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey:  getEnv("STORAGE_SECRET_KEY", ""),
		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", ""),
		StoragePublicBase: getEnv("STORAGE_PUBLIC_BASE", ""),

		CleanupIntervalHours: getEnvAsInt("CLEANUP_INTERVAL_HOURS", 48),
		ImageMaxWidth:        getEnvAsInt("IMAGE_MAX_WIDTH", 1200),
		ImageQuality:         getEnvAsInt("IMAGE_QUALITY", 80),

		CORSAllowOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsSlice(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
