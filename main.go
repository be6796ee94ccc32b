package main

import (
	"context"
	"fmt"
	"log" // Use standard log only for initial fatal errors before logger is set up

	"momentumBacktester/config"
	"momentumBacktester/internal/adapters/logger"
	"momentumBacktester/internal/adapters/sqlite"
	"momentumBacktester/internal/domain"
	"momentumBacktester/internal/strategy"
	"momentumBacktester/internal/strategy/backtesting"
	"momentumBacktester/internal/utils"
)

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Load candles: CSV file when configured, otherwise the local candle store
	var candles []*domain.Candle
	if cfg.CSVPath != "" {
		candles, err = utils.ReadCandlesFromCSV(cfg.CSVPath)
		if err != nil {
			appLogger.Error(ctx, err, "FATAL: Failed to read candles from CSV")
			log.Fatalf("FATAL: Failed to read candles from CSV: %v", err)
		}
		appLogger.Info(ctx, "Loaded candles from CSV", map[string]interface{}{"path": cfg.CSVPath, "count": len(candles)})
	} else {
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

		candles, err = store.FindBySymbolInterval(ctx, cfg.Symbol, cfg.Interval)
		if err != nil {
			appLogger.Error(ctx, err, "FATAL: Failed to load candles from store")
			log.Fatalf("FATAL: Failed to load candles from store: %v", err)
		}
		appLogger.Info(ctx, "Loaded candles from store", map[string]interface{}{
			"symbol":   cfg.Symbol,
			"interval": cfg.Interval,
			"count":    len(candles),
		})
	}

	if len(candles) == 0 {
		appLogger.Warn(ctx, "No candles available; run the fetch_klines command or set CSV_PATH")
	}

	// 4. Build the strategy
	strat, err := strategy.New(strategy.Config{
		RSIPeriod: cfg.RSIPeriod,
		RSIEntry:  cfg.RSIEntry,
		RSIExit:   cfg.RSIExit,
		SMAPeriod: cfg.SMAPeriod,
	}, appLogger)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to build strategy")
		log.Fatalf("FATAL: Failed to build strategy: %v", err)
	}

	// 5. Run the backtest
	summary, err := backtesting.Run(ctx, strat, candles, backtesting.Config{
		Symbol:          cfg.Symbol,
		ProfitThreshold: cfg.ProfitThreshold,
	}, appLogger)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Backtest failed")
		log.Fatalf("FATAL: Backtest failed: %v", err)
	}

	// 6. Present the summary
	fmt.Printf("Backtest of %s (%s, %d candles)\n", cfg.Symbol, cfg.Interval, len(candles))
	fmt.Printf("  Trades:         %d\n", summary.TradeCount)
	fmt.Printf("  Success rate:   %.2f%% (wins above %.2f%% return)\n", summary.SuccessRate, cfg.ProfitThreshold*100)
	fmt.Printf("  Average return: %.4f%% per trade\n", summary.AvgReturnPct)
}
