package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config содержит все настройки бота
type Config struct {
	TelegramToken    string // TELEGRAM_TOKEN
	IngestAPIBase    string // INGEST_API_BASE - базовый URL сервиса транскрибации
	PresentonAPIBase string // PRESENTON_API_BASE
	PresentonAPIKey  string // PRESENTON_API_KEY
	HTTPTimeout      int    // HTTP_TIMEOUT - таймаут внешних запросов в секундах
	MetricsAddr      string // METRICS_ADDR - адрес health/metrics сервера, пусто = выключен
	Environment      string // ENV
}

const (
	defaultPresentonAPIBase = "https://api.presenton.ai"
	defaultHTTPTimeout      = 120
)

// Load загружает конфигурацию из .env файла и переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		IngestAPIBase:    strings.TrimRight(os.Getenv("INGEST_API_BASE"), "/"),
		PresentonAPIBase: strings.TrimRight(os.Getenv("PRESENTON_API_BASE"), "/"),
		PresentonAPIKey:  os.Getenv("PRESENTON_API_KEY"),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
		Environment:      os.Getenv("ENV"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.PresentonAPIBase == "" {
		cfg.PresentonAPIBase = defaultPresentonAPIBase
	}

	cfg.HTTPTimeout = defaultHTTPTimeout
	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("HTTP_TIMEOUT must be a positive integer, got %q", raw)
		}
		cfg.HTTPTimeout = seconds
	}

	// Проверяем обязательные поля
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.IngestAPIBase == "" {
		return nil, fmt.Errorf("INGEST_API_BASE is required but not set")
	}
	if cfg.PresentonAPIKey == "" {
		return nil, fmt.Errorf("PRESENTON_API_KEY is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}
