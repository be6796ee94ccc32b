package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"momentumBacktester/config"
	"momentumBacktester/internal/adapters/binanceclient"
	"momentumBacktester/internal/adapters/logger"
	"momentumBacktester/internal/adapters/sqlite"
	"momentumBacktester/internal/utils"
)

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Exchange Client (Binance Adapter)
	client, err := binanceclient.New(binanceclient.Config{
		APIKey:     cfg.APIKey,
		SecretKey:  cfg.SecretKey,
		UseTestnet: cfg.IsTestnet,
		Logger:     appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize Binance client")
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}

	// 4. Initialize Candle Store
	store, err := sqlite.NewRepository(sqlite.Config{DBPath: cfg.DBPath, Logger: appLogger})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize candle store")
		log.Fatalf("FATAL: Failed to initialize candle store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Error(ctx, err, "Error closing candle store")
		}
	}()

	// 5. Fetch the historical range
	end := time.Now()
	start := end.AddDate(0, 0, -cfg.HistoryDays)
	appLogger.Info(ctx, "Fetching candles", map[string]interface{}{
		"symbol":   cfg.Symbol,
		"interval": cfg.Interval,
		"start":    start.Format(time.RFC3339),
		"end":      end.Format(time.RFC3339),
	})

	candles, err := client.GetCandlesRange(ctx, cfg.Symbol, cfg.Interval, start, end)
	if err != nil {
		appLogger.Error(ctx, err, "Error fetching candles")
		log.Fatalf("Error fetching candles: %v", err)
	}
	appLogger.Info(ctx, "Fetched candles", map[string]interface{}{"count": len(candles)})

	// 6. Save to the store and mirror to CSV
	if err := store.SaveCandles(ctx, candles); err != nil {
		appLogger.Error(ctx, err, "Error saving candles to store")
		log.Fatalf("Error saving candles to store: %v", err)
	}

	filename := fmt.Sprintf("data/%s_%s_%s_to_%s.csv",
		cfg.Symbol, cfg.Interval, start.Format("20060102"), end.Format("20060102"))
	if err := utils.WriteCandlesToCSV(candles, filename); err != nil {
		appLogger.Error(ctx, err, "Error writing CSV")
		log.Fatalf("Error writing CSV: %v", err)
	}
	appLogger.Info(ctx, "Saved candles", map[string]interface{}{"filename": filename, "count": len(candles)})
}
