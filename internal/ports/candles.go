package ports

import (
	"context"
	"time"

	"momentumBacktester/internal/domain"
)

// CandleSource defines the interface for fetching historical candle data
// from an exchange. Only finished historical candles are ever requested;
// real-time streaming is deliberately outside this interface.
type CandleSource interface {
	// GetCandles retrieves up to limit most recent candles for the given symbol and interval.
	GetCandles(ctx context.Context, symbol, interval string, limit int) ([]*domain.Candle, error)

	// GetCandlesRange retrieves all candles for a symbol/interval between start and end time,
	// paginating as needed.
	GetCandlesRange(ctx context.Context, symbol, interval string, start, end time.Time) ([]*domain.Candle, error)

	// Ping checks connectivity to the exchange API.
	Ping(ctx context.Context) error
}

// CandleStore defines the interface for the local historical candle cache.
// The store holds backtest input data only; strategy results are never persisted.
type CandleStore interface {
	// SaveCandles inserts or replaces a batch of candles.
	SaveCandles(ctx context.Context, candles []*domain.Candle) error

	// FindBySymbolInterval retrieves all stored candles for a symbol/interval,
	// ordered chronologically by open time.
	FindBySymbolInterval(ctx context.Context, symbol, interval string) ([]*domain.Candle, error)

	// CountBySymbolInterval counts the stored candles for a symbol/interval.
	CountBySymbolInterval(ctx context.Context, symbol, interval string) (int, error)
}
