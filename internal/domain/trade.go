package domain

import "time"

// Trade represents one completed (or force-closed) trade.
type Trade struct {
	Symbol      string      // Trading symbol
	EntryPrice  float64     // Price at which the position was entered
	ExitPrice   float64     // Price at which the position was exited
	Return      float64     // Realized fractional return: (exit-entry)/entry
	EntryTime   time.Time   // Timestamp when the position was entered
	ExitTime    time.Time   // Timestamp when the position was exited
	CloseReason CloseReason // Reason why the position was closed
}

// CloseReason indicates why a position was closed.
type CloseReason string

const (
	// CloseReasonOverbought marks an exit triggered by RSI crossing above the exit threshold.
	CloseReasonOverbought CloseReason = "OVERBOUGHT"
	// CloseReasonTrendBreak marks an exit triggered by the price falling below its SMA.
	CloseReasonTrendBreak CloseReason = "TREND_BREAK"
	// CloseReasonEndOfData marks the forced close of a position still open at the final index.
	CloseReasonEndOfData CloseReason = "END_OF_DATA"
)
