package config

import (
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"team-scheduler/core/logger"
)

// Config holds all process configuration, loaded once at startup.
type Config struct {
	ServerPort string
	BaseURL    string
	LogLevel   string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SendgridAPIKey    string
	SendgridFromEmail string
	SendgridFromName  string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	GoogleCalendarID   string
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the process configuration, loading it on first use.
// A .env file is honored when present; real env vars win.
func Get() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logger.Info("Config: no .env file, using environment only")
		}

		v := viper.New()
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		v.SetDefault("SERVER_PORT", "7070")
		v.SetDefault("BASE_URL", "http://localhost:7070")
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("DB_HOST", "localhost")
		v.SetDefault("DB_PORT", 5432)
		v.SetDefault("DB_USER", "postgres")
		v.SetDefault("DB_PASSWORD", "postgres")
		v.SetDefault("DB_NAME", "team_scheduler")
		v.SetDefault("REDIS_ADDR", "localhost:6379")
		v.SetDefault("REDIS_DB", 0)
		v.SetDefault("SENDGRID_FROM_NAME", "Team Meeting Scheduler")
		v.SetDefault("GOOGLE_CALENDAR_ID", "primary")

		instance = &Config{
			ServerPort: v.GetString("SERVER_PORT"),
			BaseURL:    v.GetString("BASE_URL"),
			LogLevel:   v.GetString("LOG_LEVEL"),

			DBHost:     v.GetString("DB_HOST"),
			DBPort:     v.GetInt("DB_PORT"),
			DBUser:     v.GetString("DB_USER"),
			DBPassword: v.GetString("DB_PASSWORD"),
			DBName:     v.GetString("DB_NAME"),

			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),

			SendgridAPIKey:    v.GetString("SENDGRID_API_KEY"),
			SendgridFromEmail: v.GetString("SENDGRID_FROM_EMAIL"),
			SendgridFromName:  v.GetString("SENDGRID_FROM_NAME"),

			GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			GoogleRefreshToken: v.GetString("GOOGLE_REFRESH_TOKEN"),
			GoogleCalendarID:   v.GetString("GOOGLE_CALENDAR_ID"),
		}
	})
	return instance
}
