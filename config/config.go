package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"momentumBacktester/internal/adapters/logger" // Import the logger package for LogLevel
)

// Config holds all application configuration.
type Config struct {
	// Binance API (only used by the fetch command; kline endpoints are public,
	// so empty keys are allowed)
	APIKey    string
	SecretKey string
	IsTestnet bool

	// Data Selection
	Symbol      string
	Interval    string
	HistoryDays int    // how far back the fetch command reaches
	CSVPath     string // when set, the backtest runner loads candles from this file instead of the store

	// Strategy Parameters
	ProfitThreshold float64 // fractional return counted as a win, e.g. 0.01 for 1%
	RSIPeriod       int     // e.g., 14
	RSIEntry        float64 // e.g., 30.0
	RSIExit         float64 // e.g., 60.0
	SMAPeriod       int     // e.g., 20

	// Database
	DBPath string

	// Logging
	LogLevel logger.LogLevel
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Binance API
	cfg.APIKey = getEnv("BINANCE_API_KEY", "")
	cfg.SecretKey = getEnv("BINANCE_API_SECRET", "")
	cfg.IsTestnet = getEnvAsBool("IS_TESTNET", false)

	// Data Selection
	cfg.Symbol = getEnv("SYMBOL", "ETHUSDT")
	if cfg.Symbol == "" {
		errs = append(errs, "SYMBOL must be set")
	}
	cfg.Interval = getEnv("INTERVAL", "1d")
	if cfg.Interval == "" {
		errs = append(errs, "INTERVAL must be set")
	}

	cfg.HistoryDays = getEnvAsInt("HISTORY_DAYS", 365)
	if cfg.HistoryDays <= 0 {
		errs = append(errs, "HISTORY_DAYS must be positive")
	}

	cfg.CSVPath = getEnv("CSV_PATH", "")

	// Strategy Parameters
	cfg.ProfitThreshold, err = getEnvAsFloatRequired("PROFIT_THRESHOLD", 0.01)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid PROFIT_THRESHOLD: %v", err))
	}

	cfg.RSIPeriod = getEnvAsInt("RSI_PERIOD", 14)
	cfg.SMAPeriod = getEnvAsInt("SMA_PERIOD", 20)
	cfg.RSIEntry = getEnvAsFloat("RSI_ENTRY", 30.0)
	cfg.RSIExit = getEnvAsFloat("RSI_EXIT", 60.0)

	if cfg.RSIPeriod <= 0 || cfg.SMAPeriod <= 0 {
		errs = append(errs, "strategy periods (RSI, SMA) must be positive")
	}
	if cfg.RSIEntry >= cfg.RSIExit || cfg.RSIEntry < 0 || cfg.RSIExit > 100 {
		errs = append(errs, "invalid RSI thresholds (RSI_ENTRY must be < RSI_EXIT, between 0-100)")
	}

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/candles.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
