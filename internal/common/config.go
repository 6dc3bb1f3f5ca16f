package common

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Redis     RedisConfig
	Queue     QueueConfig
	Server    ServerConfig
	OCR       OCRConfig
	PDF       PDFConfig
	Log       LogConfig
	Retention RetentionConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string // postgres://... or sqlite file path / "file:...".
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// RedisConfig holds the queue backend and upload staging connection
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	StagingTTL time.Duration
}

// QueueConfig holds worker configuration
type QueueConfig struct {
	Concurrency int
	Name        string
	RunTimeout  time.Duration
}

// ServerConfig holds listener addresses
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// OCRConfig holds OCR provider configuration
type OCRConfig struct {
	Primary            string
	Fallback           string // empty disables the fallback
	HFToken            string
	HFBaseURL          string
	HFChatModel        string
	HFProvider         string
	HFImageToTextURL   string
	HFImageToTextModel string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	ServiceURL         string
	TesseractLang      string
	TessdataDir        string
	ProviderTimeout    time.Duration
	MaxConcurrentPages int // 0 = unbounded
	MaxUploadBytes     int64
}

// PDFConfig holds rasterization configuration
type PDFConfig struct {
	Pdftoppm string
	DPI      int
	MaxPages int
	TempDir  string
}

// RetentionConfig controls pruning of stored results
type RetentionConfig struct {
	MaxAge   time.Duration // 0 keeps results forever
	Schedule string        // cron expression or descriptor
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string // "json" | "text"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", "file:scriptsense.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			StagingTTL: getEnvAsDuration("UPLOAD_STAGING_TTL", 30*time.Minute),
		},
		Queue: QueueConfig{
			Concurrency: getEnvAsInt("WORKER_CONCURRENCY", 4),
			Name:        getEnv("QUEUE_NAME", "ocr"),
			RunTimeout:  getEnvAsDuration("RUN_TIMEOUT", 5*time.Minute),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		OCR: OCRConfig{
			Primary:            getEnv("OCR_PRIMARY", "hf-chat"),
			Fallback:           getEnv("OCR_FALLBACK", "hf-image-to-text"),
			HFToken:            getEnv("HF_TOKEN", ""),
			HFBaseURL:          getEnv("HF_BASE_URL", "https://router.huggingface.co/v1"),
			HFChatModel:        getEnv("HF_MODEL", "google/gemma-3-27b-it:featherless-ai"),
			HFProvider:         getEnv("HF_PROVIDER", ""),
			HFImageToTextURL:   getEnv("HF_INFERENCE_URL", "https://router.huggingface.co/hf-inference/models"),
			HFImageToTextModel: getEnv("HF_OCR_MODEL", "microsoft/trocr-base-printed"),
			GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
			GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1"),
			ServiceURL:         getEnv("OCR_SERVICE_URL", "http://localhost:8000"),
			TesseractLang:      getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:        getEnv("TESSDATA_PREFIX", ""),
			ProviderTimeout:    getEnvAsDuration("OCR_PROVIDER_TIMEOUT", 30*time.Second),
			MaxConcurrentPages: getEnvAsInt("OCR_MAX_CONCURRENT_PAGES", 0),
			MaxUploadBytes:     getEnvAsInt64("MAX_UPLOAD_BYTES", 10<<20),
		},
		PDF: PDFConfig{
			Pdftoppm: getEnv("PDFTOPPM", "pdftoppm"),
			DPI:      getEnvAsInt("PDF_DPI", 300),
			MaxPages: getEnvAsInt("PDF_MAX_PAGES", 0),
			TempDir:  getEnv("TEMP_DIR", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Retention: RetentionConfig{
			MaxAge:   getEnvAsDuration("RESULT_RETENTION", 0),
			Schedule: getEnv("RETENTION_SCHEDULE", "@daily"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError(CodeConfig, "DB_URL is required", ErrInvalidInput)
	}
	if strings.TrimSpace(c.OCR.Primary) == "" {
		return NewAppError(CodeConfig, "OCR_PRIMARY is required", ErrInvalidInput)
	}
	if c.OCR.Primary == c.OCR.Fallback {
		return NewAppError(CodeConfig, fmt.Sprintf("OCR_FALLBACK must differ from OCR_PRIMARY (%q)", c.OCR.Primary), ErrInvalidInput)
	}
	if c.OCR.MaxConcurrentPages < 0 {
		return NewAppError(CodeConfig, "OCR_MAX_CONCURRENT_PAGES must not be negative", ErrInvalidInput)
	}
	if c.PDF.DPI < 36 || c.PDF.DPI > 1200 {
		return NewAppError(CodeConfig, fmt.Sprintf("PDF_DPI must be between 36 and 1200, got %d", c.PDF.DPI), ErrInvalidInput)
	}
	if c.Queue.Concurrency < 1 || c.Queue.Concurrency > 100 {
		return NewAppError(CodeConfig, fmt.Sprintf("WORKER_CONCURRENCY must be between 1 and 100, got %d", c.Queue.Concurrency), ErrInvalidInput)
	}
	if c.Retention.MaxAge < 0 {
		return NewAppError(CodeConfig, "RESULT_RETENTION must not be negative", ErrInvalidInput)
	}
	if c.Retention.MaxAge > 0 && strings.TrimSpace(c.Retention.Schedule) == "" {
		return NewAppError(CodeConfig, "RETENTION_SCHEDULE is required when RESULT_RETENTION is set", ErrInvalidInput)
	}
	return nil
}

// SlogLevel maps LOG_LEVEL to a slog level, info when unrecognized.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c LogConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
