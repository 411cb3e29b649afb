package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisLockDB   int    `mapstructure:"REDIS_LOCK_DB"`

	// Stations without an explicit timezone are evaluated in this zone.
	DefaultTimezone string `mapstructure:"DEFAULT_TIMEZONE"`

	CapacityLockTTLSeconds int `mapstructure:"CAPACITY_LOCK_TTL_SECONDS"`

	// Alternative station search.
	AlternativesRadiusKm       float64 `mapstructure:"ALTERNATIVES_RADIUS_KM"`
	AlternativesCandidateLimit int     `mapstructure:"ALTERNATIVES_CANDIDATE_LIMIT"`
	AlternativesResultLimit    int     `mapstructure:"ALTERNATIVES_RESULT_LIMIT"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real deployments pass plain environment variables.
	_ = godotenv.Load()

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_LOCK_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "bagdrop")
	viper.SetDefault("DEFAULT_TIMEZONE", "UTC")
	viper.SetDefault("CAPACITY_LOCK_TTL_SECONDS", 10)
	viper.SetDefault("ALTERNATIVES_RADIUS_KM", 50.0)
	viper.SetDefault("ALTERNATIVES_CANDIDATE_LIMIT", 10)
	viper.SetDefault("ALTERNATIVES_RESULT_LIMIT", 3)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// DefaultLocation resolves DEFAULT_TIMEZONE, falling back to UTC when it cannot be loaded.
func DefaultLocation() *time.Location {
	if AppConfig.DefaultTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(AppConfig.DefaultTimezone)
	if err != nil {
		log.Printf("invalid DEFAULT_TIMEZONE %q, using UTC: %v", AppConfig.DefaultTimezone, err)
		return time.UTC
	}
	return loc
}

// CapacityLockTTL is how long a station stays locked while a reservation is committed.
func CapacityLockTTL() time.Duration {
	if AppConfig.CapacityLockTTLSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(AppConfig.CapacityLockTTLSeconds) * time.Second
}
