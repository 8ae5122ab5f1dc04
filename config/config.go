package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Gemini and Google Cloud credentials.
	GeminiAPIKey             string `mapstructure:"GEMINI_API_KEY"`
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	// Scheduling window for support calls.
	CalendarID            string `mapstructure:"CALENDAR_ID"`
	ScheduleTimezone      string `mapstructure:"SCHEDULE_TIMEZONE"`
	ScheduleLookaheadDays int    `mapstructure:"SCHEDULE_LOOKAHEAD_DAYS"`
	ScheduleDayStartHour  int    `mapstructure:"SCHEDULE_DAY_START_HOUR"`
	ScheduleDayEndHour    int    `mapstructure:"SCHEDULE_DAY_END_HOUR"`
	ScheduleSlotMinutes   int    `mapstructure:"SCHEDULE_SLOT_MINUTES"`
	ScheduleMaxOffers     int    `mapstructure:"SCHEDULE_MAX_OFFERS"`

	// Fallback contact surfaced when the calendar backend is down.
	SupportFallbackContact string `mapstructure:"SUPPORT_FALLBACK_CONTACT"`
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
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "frontdesk")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "")
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("SCHEDULE_TIMEZONE", "America/Chicago")
	viper.SetDefault("SCHEDULE_LOOKAHEAD_DAYS", 7)
	viper.SetDefault("SCHEDULE_DAY_START_HOUR", 9)
	viper.SetDefault("SCHEDULE_DAY_END_HOUR", 17)
	viper.SetDefault("SCHEDULE_SLOT_MINUTES", 30)
	viper.SetDefault("SCHEDULE_MAX_OFFERS", 5)
	viper.SetDefault("SUPPORT_FALLBACK_CONTACT", "support@frontdesk.example.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// Origins returns the allowed CORS origins as a slice.
func Origins() []string {
	parts := strings.Split(AppConfig.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
