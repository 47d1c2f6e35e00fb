package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSOrigins       string `mapstructure:"CORS_ORIGINS"`

	// REST backend.
	BackendURL            string `mapstructure:"BACKEND_URL"`
	BackendTimeoutSeconds int    `mapstructure:"BACKEND_TIMEOUT_SECONDS"`

	// Session scopes.
	SessionStore            string `mapstructure:"SESSION_STORE"`
	SessionTTLMinutes       int    `mapstructure:"SESSION_TTL_MINUTES"`
	SessionSealKey          string `mapstructure:"SESSION_SEAL_KEY"`
	IsolatePrivilegedScopes bool   `mapstructure:"ISOLATE_PRIVILEGED_SCOPES"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Availability resolver.
	AvailabilityMode         string `mapstructure:"AVAILABILITY_MODE"`
	AvailabilityWindowMonths int    `mapstructure:"AVAILABILITY_WINDOW_MONTHS"`
	AvailabilityConcurrency  int    `mapstructure:"AVAILABILITY_CONCURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("CORS_ORIGINS", "http://localhost:4200")
	v.SetDefault("BACKEND_URL", "http://localhost:5280/api")
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	v.SetDefault("SESSION_STORE", "memory")
	v.SetDefault("SESSION_TTL_MINUTES", 720)
	v.SetDefault("SESSION_SEAL_KEY", "")
	v.SetDefault("ISOLATE_PRIVILEGED_SCOPES", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("AVAILABILITY_MODE", "snapshot")
	v.SetDefault("AVAILABILITY_WINDOW_MONTHS", 12)
	v.SetDefault("AVAILABILITY_CONCURRENCY", 16)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SessionTTL is the idle lifetime of a session scope.
func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c Config) BackendTimeout() time.Duration {
	return time.Duration(c.BackendTimeoutSeconds) * time.Second
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
