package domain

import "time"

// Position represents the single open long position during a backtest run.
// The simulator holds at most one of these at a time; a nil position means
// the strategy is flat. Shorting and pyramiding are not modelled.
type Position struct {
	Symbol     string    // Trading symbol (e.g., "ETHUSDT")
	EntryPrice float64   // Close price at which the position was entered
	EntryTime  time.Time // Open time of the entry candle
	EntryIndex int       // Time index of the entry candle
}
