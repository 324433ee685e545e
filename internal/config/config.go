package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	// Secret signs and verifies access tokens. The server refuses to
	// start without one.
	Secret       string
	TokenTTLMins int
}

// Redis cache configuration. An empty Addr disables the cache.
type RedisConfig struct {
	Addr       string
	Password   string
	TTLSeconds int
}

// Rate limit configuration (per client IP)
type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

// Config holds all application configuration
type Config struct {
	Env       string
	LogLevel  string
	Server    ServerConfig
	Mongo     MongoConfig
	Auth      AuthConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// Default configuration values
const (
	DefaultServerPort   = "5000"
	DefaultServerHost   = ""
	DefaultMongoURI     = "mongodb://localhost:27017"
	DefaultMongoDB      = "hero-tech"
	DefaultTokenTTLMins = 60
	DefaultRedisTTLSec  = 300
	DefaultRateRPS      = 50
	DefaultRateBurst    = 100
	// Pagination defaults
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrMissingSecret is returned by Validate when no signing secret is set.
// Starting without one would issue unverifiable tokens, so it is fatal.
var ErrMissingSecret = errors.New("ACCESS_TOKEN_SECRET is not set")

// New returns a new Config with values from the environment
func New() *Config {
	return &Config{
		Env:      getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", getEnv("PORT", DefaultServerPort)),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			Secret:       getEnv("ACCESS_TOKEN_SECRET", ""),
			TokenTTLMins: getEnvInt("TOKEN_TTL_MINUTES", DefaultTokenTTLMins),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			TTLSeconds: getEnvInt("REDIS_TTL_SECONDS", DefaultRedisTTLSec),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvBool("RATE_LIMIT_ENABLED", true),
			RPS:     float64(getEnvInt("RATE_LIMIT_RPS", DefaultRateRPS)),
			Burst:   getEnvInt("RATE_LIMIT_BURST", DefaultRateBurst),
		},
	}
}

// Validate checks the parts of the configuration the server cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.Secret) == "" {
		return ErrMissingSecret
	}
	if c.Auth.TokenTTLMins <= 0 {
		c.Auth.TokenTTLMins = DefaultTokenTTLMins
	}
	return nil
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
