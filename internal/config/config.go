// Package config loads runtime configuration from the environment. MONGODB_URI
// keeps its conventional name; everything else is FABLE_-prefixed.
package config

import "os"

// Store backend names accepted by FABLE_STORE.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
	StoreFile   = "file"
)

// Config holds everything the binary reads from its environment.
type Config struct {
	// Addr is the listen address of the HTTP API.
	Addr string
	// Store selects the persistence backend: mongo, redis, file or memory.
	Store string
	// MongoURI is the MongoDB connection string (Store == mongo).
	MongoURI string
	// RedisAddr is the Redis address (Store == redis).
	RedisAddr string
	// DataDir is the adventure directory (Store == file).
	DataDir string
	// APIURL is the base URL the client-side commands talk to.
	APIURL string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// FromEnv reads configuration with documented defaults. Unset variables fall
// back to a locally runnable setup (in-memory store, port 3000).
func FromEnv() Config {
	return Config{
		Addr:      getenv("FABLE_ADDR", ":3000"),
		Store:     getenv("FABLE_STORE", StoreMemory),
		MongoURI:  getenv("MONGODB_URI", "mongodb://localhost:27017"),
		RedisAddr: getenv("FABLE_REDIS_ADDR", "localhost:6379"),
		DataDir:   getenv("FABLE_DATA_DIR", ""),
		APIURL:    getenv("FABLE_API_URL", "http://localhost:3000"),
		LogLevel:  getenv("FABLE_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
