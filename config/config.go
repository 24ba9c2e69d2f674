package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking engine policy.
	AutoConfirmBookings bool `mapstructure:"AUTO_CONFIRM_BOOKINGS"` // create directly in confirmed, skipping manual confirmation
	CancelGraceMinutes  int  `mapstructure:"CANCEL_GRACE_MINUTES"`  // confirmed bookings may be cancelled until start minus this
	BookingWindowDays   int  `mapstructure:"BOOKING_WINDOW_DAYS"`   // how far ahead a slot may be booked
	SweepIntervalMin    int  `mapstructure:"SWEEP_INTERVAL_MIN"`    // completion sweep cadence
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

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "bookit")
	viper.SetDefault("AUTO_CONFIRM_BOOKINGS", false)
	viper.SetDefault("CANCEL_GRACE_MINUTES", 0)
	viper.SetDefault("BOOKING_WINDOW_DAYS", 90)
	viper.SetDefault("SWEEP_INTERVAL_MIN", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// CancelGrace returns the grace window as a duration.
func CancelGrace() time.Duration {
	return time.Duration(AppConfig.CancelGraceMinutes) * time.Minute
}

// BookingWindow returns how far ahead bookings are accepted.
func BookingWindow() time.Duration {
	return time.Duration(AppConfig.BookingWindowDays) * 24 * time.Hour
}
