package strategy

import (
	"context"
	"fmt"

	"momentumBacktester/internal/domain"
	"momentumBacktester/internal/ports"
	"momentumBacktester/internal/strategy/indicators"
)

// Config holds parameters for the trading strategy rules.
// The MACD lengths (12/26) and the resulting warm-up of 26 indices are fixed
// in the indicators package and are not tunable here.
type Config struct {
	RSIPeriod int     // e.g., 14
	RSIEntry  float64 // enter when RSI drops below this, e.g., 30.0
	RSIExit   float64 // exit when RSI rises above this, e.g., 60.0
	SMAPeriod int     // e.g., 20
}

// DefaultConfig returns the canonical rule parameters.
func DefaultConfig() Config {
	return Config{
		RSIPeriod: 14,
		RSIEntry:  30.0,
		RSIExit:   60.0,
		SMAPeriod: 20,
	}
}

// Strategy implements the RSI + MACD + SMA entry/exit rules.
type Strategy struct {
	cfg    Config
	logger ports.Logger
}

// New creates a new Strategy instance.
func New(cfg Config, logger ports.Logger) (*Strategy, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for strategy")
	}
	if cfg.RSIPeriod <= 0 || cfg.SMAPeriod <= 0 {
		return nil, fmt.Errorf("strategy periods (RSI, SMA) must be positive")
	}
	if cfg.RSIEntry >= cfg.RSIExit || cfg.RSIEntry < 0 || cfg.RSIExit > 100 {
		return nil, fmt.Errorf("invalid RSI thresholds (entry must be < exit, between 0-100)")
	}
	return &Strategy{cfg: cfg, logger: logger}, nil
}

// RequiredDataPoints returns the minimum number of indices that must exist
// before the first signal is evaluated. The 26-period EMA inside MACD is the
// binding constraint; the RSI and SMA fallbacks tolerate shorter history.
func (s *Strategy) RequiredDataPoints() int {
	return indicators.MACDSlowLength
}

// ShouldEnterTrade reports whether a new long position should be opened at
// index i: RSI oversold, MACD positive, and price above its SMA.
func (s *Strategy) ShouldEnterTrade(ctx context.Context, closes []float64, i int) bool {
	rsi := indicators.RSI(closes, i, s.cfg.RSIPeriod)
	macd := indicators.MACD(closes, i)
	sma := indicators.SMA(closes, i, s.cfg.SMAPeriod)

	enter := rsi < s.cfg.RSIEntry && macd > 0 && closes[i] > sma
	if enter {
		s.logger.Debug(ctx, "Entry signal", map[string]interface{}{
			"index": i,
			"price": closes[i],
			"rsi":   rsi,
			"macd":  macd,
			"sma":   sma,
		})
	}
	return enter
}

// ShouldClosePosition reports whether the open position should be closed at
// index i: RSI crossed above the exit threshold, or price fell below its SMA.
func (s *Strategy) ShouldClosePosition(ctx context.Context, closes []float64, i int) (bool, domain.CloseReason) {
	rsi := indicators.RSI(closes, i, s.cfg.RSIPeriod)
	if rsi > s.cfg.RSIExit {
		s.logger.Debug(ctx, "Exit signal: RSI overbought", map[string]interface{}{"index": i, "rsi": rsi})
		return true, domain.CloseReasonOverbought
	}

	sma := indicators.SMA(closes, i, s.cfg.SMAPeriod)
	if closes[i] < sma {
		s.logger.Debug(ctx, "Exit signal: price below SMA", map[string]interface{}{"index": i, "price": closes[i], "sma": sma})
		return true, domain.CloseReasonTrendBreak
	}

	return false, ""
}
