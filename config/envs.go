package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP              string // Host IP for the server
	RESTPort            int    // Port for the REST API
	StorageBackend      string // "mongo" keeps mazes in MongoDB with Redis locks, "memory" keeps everything in process
	DBHost              string // Hostname or IP address for the database
	DBPort              int    // Port number for the database
	DBUser              string // Username for the database
	DBPassword          string // Password for the database
	DBName              string // Name of the database
	RedisAddr           string // host:port of the redis server used for locks and the mutation journal
	RedisPassword       string // Password for redis, empty when unauthenticated
	RedisDB             int    // Redis logical database index
	GinMode             string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret           string // Secret key for edit token signing
	JWTIssuer           string // Issuer claim for edit tokens
	MaxMazeDimension    int    // Largest width or height accepted when creating a maze
	EventTTLSeconds     int    // Lifetime of a maze's mutation journal after its last write
	EditTokenTTLMinutes int    // Lifetime of an edit token
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:              mustGetEnv("HOST_IP"),
		RESTPort:            mustGetEnvAsInt("REST_PORT"),
		StorageBackend:      getEnvWithDefault("STORAGE_BACKEND", BackendMongo),
		DBHost:              getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:              getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:              getEnvWithDefault("DB_USER", ""),
		DBPassword:          getEnvWithDefault("DB_PASS", ""),
		DBName:              getEnvWithDefault("DB_NAME", "vinom_maze"),
		RedisAddr:           getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:             getEnvAsIntWithDefault("REDIS_DB", 0),
		GinMode:             getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:           mustGetEnv("JWT_SECRET"),
		JWTIssuer:           mustGetEnv("JWT_ISSUER"),
		MaxMazeDimension:    getEnvAsIntWithDefault("MAX_MAZE_DIMENSION", 50),
		EventTTLSeconds:     getEnvAsIntWithDefault("EVENT_TTL_SECONDS", 24*60*60),
		EditTokenTTLMinutes: getEnvAsIntWithDefault("EDIT_TOKEN_TTL_MINUTES", 24*60),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers; unparsable values are fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
