package analytics

import "momentumBacktester/internal/domain"

// Summary holds the aggregate outcome of a backtest run.
type Summary struct {
	SuccessRate  float64         // percentage of closed trades whose return exceeded the profit threshold, 0-100
	AvgReturnPct float64         // mean per-trade return as a percentage, signed
	TradeCount   int             // number of closed trades, including a forced final close
	Trades       []*domain.Trade // per-trade detail, kept for output shape; currently never populated
}

// Summarize reduces the per-trade accumulators into a Summary.
// Both percentage calculations are guarded against a zero trade count and
// default to 0.
func Summarize(wins, trades int, totalReturn float64) *Summary {
	s := &Summary{
		TradeCount: trades,
		Trades:     make([]*domain.Trade, 0),
	}
	if trades > 0 {
		s.SuccessRate = float64(wins) / float64(trades) * 100
		s.AvgReturnPct = totalReturn / float64(trades) * 100
	}
	return s
}
