// Package config reads the service configuration from the environment. A
// .env file in the working directory is loaded first when present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
)

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// StorageBackend selects the snapshot repository.
	StorageBackend string
	StorageKey     string
	StoragePath    string
	SQLiteDSN      string

	SnapshotsTable   string
	AWSRegion        string
	DynamoDBEndpoint string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PhoneRegion    string
	AssistantDelay time.Duration
}

// Load reads the configuration. Missing or malformed values fall back to
// defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:     getenvDefault("PORT", "8080"),
		AppEnv:   getenvDefault("APP_ENV", "development"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),

		StorageBackend: strings.ToLower(getenvDefault("STORAGE_BACKEND", BackendFile)),
		StorageKey:     getenvDefault("STORAGE_KEY", "xtimator-storage"),
		StoragePath:    getenvDefault("STORAGE_PATH", "data"),
		SQLiteDSN:      getenvDefault("SQLITE_DSN", "xtimator.db"),

		SnapshotsTable:   getenvDefault("SNAPSHOTS_TABLE", "snapshots"),
		AWSRegion:        getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),

		RedisAddr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		PhoneRegion:    getenvDefault("PHONE_REGION", "BR"),
		AssistantDelay: getenvDuration("ASSISTANT_DELAY", 500*time.Millisecond),
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getenvDefault(key, ""))
	if err != nil || d < 0 {
		return def
	}
	return d
}
