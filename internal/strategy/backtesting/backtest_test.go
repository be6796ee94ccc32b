package backtesting

import (
	"context"
	"testing"
	"time"

	"momentumBacktester/internal/domain"
	"momentumBacktester/internal/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLogger implements ports.Logger and counts position transitions.
type countingLogger struct {
	opened int
	closed int
}

func (l *countingLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (l *countingLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	switch msg {
	case "Position opened":
		l.opened++
	case "Position closed":
		l.closed++
	}
}
func (l *countingLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (l *countingLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

func candlesFromCloses(closes []float64) []*domain.Candle {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]*domain.Candle, len(closes))
	for i, c := range closes {
		candles[i] = &domain.Candle{
			OpenTime:  start.AddDate(0, 0, i),
			CloseTime: start.AddDate(0, 0, i+1),
			Symbol:    "ETHUSDT",
			Interval:  "1d",
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
		}
	}
	return candles
}

func newTestStrategy(t *testing.T) *strategy.Strategy {
	t.Helper()
	strat, err := strategy.New(strategy.DefaultConfig(), &countingLogger{})
	require.NoError(t, err)
	return strat
}

// singleTradeCloses builds a series with exactly one trade: a steep ramp
// (26 steps of +6 from 100) keeps MACD positive and the price above its SMA,
// fourteen small declines of 0.2 drive RSI to 0 and trigger the entry at
// index 40 (price 253.2), and the following rally of +6 per step pushes RSI
// above 60 at index 41 (price 259.2), triggering the exit.
func singleTradeCloses() []float64 {
	closes := []float64{100}
	last := func() float64 { return closes[len(closes)-1] }
	for i := 0; i < 26; i++ {
		closes = append(closes, last()+6)
	}
	for i := 0; i < 14; i++ {
		closes = append(closes, last()-0.2)
	}
	for i := 0; i < 6; i++ {
		closes = append(closes, last()+6)
	}
	return closes
}

func TestRun_ConstantSeriesNeverTrades(t *testing.T) {
	closes := make([]float64, 50)
	for i := range closes {
		closes[i] = 100
	}

	logger := &countingLogger{}
	summary, err := Run(context.Background(), newTestStrategy(t), candlesFromCloses(closes),
		Config{Symbol: "ETHUSDT", ProfitThreshold: 0.01}, logger)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TradeCount)
	assert.Equal(t, 0.0, summary.SuccessRate)
	assert.Equal(t, 0.0, summary.AvgReturnPct)
	assert.Empty(t, summary.Trades)
	assert.Equal(t, 0, logger.opened)
	assert.Equal(t, 0, logger.closed)
}

func TestRun_SingleWinningTrade(t *testing.T) {
	closes := singleTradeCloses()
	logger := &countingLogger{}

	summary, err := Run(context.Background(), newTestStrategy(t), candlesFromCloses(closes),
		Config{Symbol: "ETHUSDT", ProfitThreshold: 0.01}, logger)
	require.NoError(t, err)

	require.Equal(t, 1, summary.TradeCount)
	assert.Equal(t, 100.0, summary.SuccessRate)
	// Entry 253.2 at index 40, exit 259.2 at index 41: (259.2-253.2)/253.2*100.
	assert.InDelta(t, 2.369668246445, summary.AvgReturnPct, 1e-6)
	assert.Equal(t, 1, logger.opened)
	assert.Equal(t, 1, logger.closed)
}

func TestRun_ForcedCloseAtEndOfData(t *testing.T) {
	// Truncate the single-trade series right after the entry index so the
	// scan ends while the position is still open. The forced close uses the
	// last price, which equals the entry price here, so the trade counts with
	// a return of zero.
	closes := singleTradeCloses()[:41]
	logger := &countingLogger{}

	summary, err := Run(context.Background(), newTestStrategy(t), candlesFromCloses(closes),
		Config{Symbol: "ETHUSDT", ProfitThreshold: 0.01}, logger)
	require.NoError(t, err)

	require.Equal(t, 1, summary.TradeCount)
	assert.Equal(t, 0.0, summary.SuccessRate)
	assert.InDelta(t, 0.0, summary.AvgReturnPct, 1e-9)
	assert.Equal(t, 1, logger.opened)
	assert.Equal(t, 1, logger.closed)
}

func TestRun_EntriesAlwaysMatchExits(t *testing.T) {
	// Several series shapes, including ones that end mid-position: every
	// opened position must be closed and counted exactly once.
	series := [][]float64{
		singleTradeCloses(),
		singleTradeCloses()[:41],
		singleTradeCloses()[:44],
		append(singleTradeCloses(), singleTradeCloses()...),
	}

	for _, closes := range series {
		logger := &countingLogger{}
		summary, err := Run(context.Background(), newTestStrategy(t), candlesFromCloses(closes),
			Config{Symbol: "ETHUSDT", ProfitThreshold: 0.01}, logger)
		require.NoError(t, err)

		assert.Equal(t, logger.opened, logger.closed, "every entry must have a matching exit")
		assert.Equal(t, logger.closed, summary.TradeCount, "trade count must equal closed positions")
	}
}

func TestRun_ShortSeriesYieldsZeroTrades(t *testing.T) {
	for _, n := range []int{0, 1, 26} {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}

		summary, err := Run(context.Background(), newTestStrategy(t), candlesFromCloses(closes),
			Config{Symbol: "ETHUSDT", ProfitThreshold: 0.01}, &countingLogger{})
		require.NoError(t, err)

		assert.Equal(t, 0, summary.TradeCount, "series of length %d", n)
		assert.Equal(t, 0.0, summary.SuccessRate)
		assert.Equal(t, 0.0, summary.AvgReturnPct)
	}
}

// alwaysEnterStrategy fires an entry at every evaluated index, to observe the
// scan boundary directly.
type alwaysEnterStrategy struct {
	evaluated []int
}

func (s *alwaysEnterStrategy) RequiredDataPoints() int { return 26 }

func (s *alwaysEnterStrategy) ShouldEnterTrade(ctx context.Context, closes []float64, i int) bool {
	s.evaluated = append(s.evaluated, i)
	return true
}

func (s *alwaysEnterStrategy) ShouldClosePosition(ctx context.Context, closes []float64, i int) (bool, domain.CloseReason) {
	s.evaluated = append(s.evaluated, i)
	return false, ""
}

func TestRun_NeverEvaluatesBeforeWarmup(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	strat := &alwaysEnterStrategy{}
	summary, err := Run(context.Background(), strat, candlesFromCloses(closes),
		Config{Symbol: "ETHUSDT", ProfitThreshold: 0.01}, &countingLogger{})
	require.NoError(t, err)

	require.NotEmpty(t, strat.evaluated)
	for _, i := range strat.evaluated {
		assert.GreaterOrEqual(t, i, 26, "no index below the warm-up boundary may be evaluated")
	}
	// Entry at 26, held to the end, forced close: one trade.
	assert.Equal(t, 1, summary.TradeCount)
}

func TestRun_RequiresStrategyAndLogger(t *testing.T) {
	candles := candlesFromCloses([]float64{100, 101})

	_, err := Run(context.Background(), nil, candles, Config{}, &countingLogger{})
	assert.Error(t, err)

	_, err = Run(context.Background(), newTestStrategy(t), candles, Config{}, nil)
	assert.Error(t, err)
}
