package domain

import "time"

// Candle represents a single candlestick data point.
// Candles are externally supplied and assumed ordered chronologically
// (index 0 is the earliest period).
type Candle struct {
	OpenTime  time.Time // Start time of the interval
	CloseTime time.Time // End time of the interval
	Symbol    string    // Trading symbol
	Interval  string    // Candle interval (e.g., "1d", "1h")
	Open      float64   // Opening price
	High      float64   // Highest price
	Low       float64   // Lowest price
	Close     float64   // Closing price
	Volume    float64   // Trading volume
}

// ClosePrices derives the close-price series from a candle sequence.
// The strategy core only ever consumes closing prices; the returned slice
// is built once and treated as read-only for the rest of the run.
func ClosePrices(candles []*Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}
