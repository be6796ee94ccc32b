package backtesting

import (
	"context"
	"fmt"

	"momentumBacktester/internal/domain"
	"momentumBacktester/internal/ports"
	"momentumBacktester/internal/strategy/analytics"
)

// Strategy defines the decision interface the simulator drives.
type Strategy interface {
	// RequiredDataPoints returns the first index at which signals are evaluated.
	RequiredDataPoints() int

	// ShouldEnterTrade implements the logic to decide if a position should be opened at index i.
	ShouldEnterTrade(ctx context.Context, closes []float64, i int) bool

	// ShouldClosePosition implements the logic to decide if the open position should be closed at index i.
	ShouldClosePosition(ctx context.Context, closes []float64, i int) (bool, domain.CloseReason)
}

// Config holds configuration for a backtest run.
type Config struct {
	Symbol          string
	ProfitThreshold float64 // fractional return above which a closed trade counts as a win, e.g. 0.01
}

// Run replays the strategy over a historical candle sequence and returns the
// aggregated outcome.
//
// The scan is a strict sequential fold: it starts at the strategy's warm-up
// index (26, the minimum history for the slow EMA) and visits every later
// index in chronological order. Indices before the warm-up are never
// evaluated. The position state alternates strictly between flat and long;
// entry and exit are mutually exclusive within one index, so the entry index
// is never re-evaluated for an exit in the same iteration.
//
// A series too short to reach the warm-up index produces an empty scan and a
// zero-trade summary, not an error.
func Run(ctx context.Context, strat Strategy, candles []*domain.Candle, cfg Config, logger ports.Logger) (*analytics.Summary, error) {
	if strat == nil {
		return nil, fmt.Errorf("strategy is required for backtest")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for backtest")
	}

	closes := domain.ClosePrices(candles)

	var (
		position    *domain.Position // nil means flat
		wins        int
		trades      int
		totalReturn float64
	)

	closeTrade := func(exitIndex int, exitPrice float64, reason domain.CloseReason) {
		ret := (exitPrice - position.EntryPrice) / position.EntryPrice
		totalReturn += ret
		trades++
		if ret > cfg.ProfitThreshold {
			wins++
		}
		logger.Info(ctx, "Position closed", map[string]interface{}{
			"symbol":     cfg.Symbol,
			"entryIndex": position.EntryIndex,
			"exitIndex":  exitIndex,
			"entryPrice": position.EntryPrice,
			"exitPrice":  exitPrice,
			"return":     ret,
			"reason":     reason,
		})
		position = nil
	}

	for i := strat.RequiredDataPoints(); i < len(closes); i++ {
		if position == nil {
			if strat.ShouldEnterTrade(ctx, closes, i) {
				position = &domain.Position{
					Symbol:     cfg.Symbol,
					EntryPrice: closes[i],
					EntryTime:  candles[i].OpenTime,
					EntryIndex: i,
				}
				logger.Info(ctx, "Position opened", map[string]interface{}{
					"symbol":     cfg.Symbol,
					"entryIndex": i,
					"entryPrice": closes[i],
				})
			}
		} else if shouldClose, reason := strat.ShouldClosePosition(ctx, closes, i); shouldClose {
			closeTrade(i, closes[i], reason)
		}
	}

	// A position still open after the scan is force-closed at the last
	// available price with the same accounting as a rule-triggered exit, so
	// every opened position is counted.
	if position != nil {
		closeTrade(len(closes)-1, closes[len(closes)-1], domain.CloseReasonEndOfData)
	}

	return analytics.Summarize(wins, trades, totalReturn), nil
}
