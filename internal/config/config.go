package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Report    ReportConfig
	PDF       PDFConfig
}

type AppConfig struct {
	Name            string
	Env             string
	Port            string
	Debug           bool
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// RateLimitConfig limits PDF exports per user: Requests per Duration seconds.
type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level       string
	Development bool
}

type ReportConfig struct {
	TemplatesDir  string
	Timezone      string
	ExportTimeout time.Duration
}

type PDFConfig struct {
	ChromePath      string
	ContentTimeout  time.Duration
	Format          string
	PrintBackground bool
	Landscape       bool
	Margin          string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "residence-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("APP_SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "residence")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_DEVELOPMENT", false)
	viper.SetDefault("REPORT_TEMPLATES_DIR", "./templates")
	viper.SetDefault("REPORT_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("REPORT_EXPORT_TIMEOUT", "60s")
	viper.SetDefault("PDF_CHROME_PATH", "")
	viper.SetDefault("PDF_CONTENT_TIMEOUT", "30s")
	viper.SetDefault("PDF_FORMAT", "A4")
	viper.SetDefault("PDF_PRINT_BACKGROUND", true)
	viper.SetDefault("PDF_LANDSCAPE", false)
	viper.SetDefault("PDF_MARGIN", "20px")

	return &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Env:             viper.GetString("APP_ENV"),
			Port:            viper.GetString("APP_PORT"),
			Debug:           viper.GetBool("APP_DEBUG"),
			ShutdownTimeout: viper.GetDuration("APP_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level:       viper.GetString("LOG_LEVEL"),
			Development: viper.GetBool("LOG_DEVELOPMENT"),
		},
		Report: ReportConfig{
			TemplatesDir:  viper.GetString("REPORT_TEMPLATES_DIR"),
			Timezone:      viper.GetString("REPORT_TIMEZONE"),
			ExportTimeout: viper.GetDuration("REPORT_EXPORT_TIMEOUT"),
		},
		PDF: PDFConfig{
			ChromePath:      viper.GetString("PDF_CHROME_PATH"),
			ContentTimeout:  viper.GetDuration("PDF_CONTENT_TIMEOUT"),
			Format:          viper.GetString("PDF_FORMAT"),
			PrintBackground: viper.GetBool("PDF_PRINT_BACKGROUND"),
			Landscape:       viper.GetBool("PDF_LANDSCAPE"),
			Margin:          viper.GetString("PDF_MARGIN"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
