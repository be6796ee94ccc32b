package indicators

// Pure, window-local indicator functions over a close-price series.
// Each call recomputes from scratch over the trailing window ending at the
// given index and retains no state between calls. Computation at index i
// only ever reads prices at indices <= i.

const (
	// MACDFastLength is the short EMA length used by MACD.
	MACDFastLength = 12
	// MACDSlowLength is the long EMA length used by MACD. It also defines the
	// minimum history the strategy needs before any signal is evaluated.
	MACDSlowLength = 26
)

// RSI computes the Relative Strength Index over the trailing window
// [index-period+1, index] of one-step price changes.
//
// With insufficient history (index < period) it returns the neutral value 50
// rather than an error, which suppresses entry signals during warm-up.
// A window with no losses returns the maximum value 100.
func RSI(closes []float64, index, period int) float64 {
	if index < period {
		return 50.0
	}

	var gain, loss float64
	for i := index - period + 1; i <= index; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}

	if loss == 0 {
		return 100.0
	}

	rs := gain / loss
	return 100 - (100 / (1 + rs))
}

// EMA computes an exponential moving average seeded at the oldest value of
// the trailing window, closes[index-length+1], and folded forward to index.
//
// The seed restarts on every call instead of carrying a single continuous
// average across the whole series. Downstream signal values depend on this
// exact re-seeding behaviour, so it must not be "corrected" to the textbook
// continuously-seeded EMA.
//
// Callers must guarantee index-length+1 >= 0; MACD satisfies this because the
// simulator never evaluates signals before index 26.
func EMA(closes []float64, index, length int) float64 {
	k := 2.0 / float64(length+1)
	ema := closes[index-length+1]
	for i := index - length + 2; i <= index; i++ {
		ema = closes[i]*k + ema*(1-k)
	}
	return ema
}

// MACD computes the Moving Average Convergence Divergence as
// EMA(12) - EMA(26) at the given index. It performs no bounds check of its
// own: the caller must only invoke it once at least 26 prior indices exist.
func MACD(closes []float64, index int) float64 {
	return EMA(closes, index, MACDFastLength) - EMA(closes, index, MACDSlowLength)
}

// SMA computes the arithmetic mean of the trailing period closes ending at
// index. With insufficient history (index < period) it returns the price at
// index itself rather than an error.
func SMA(closes []float64, index, period int) float64 {
	if index < period {
		return closes[index]
	}

	sum := 0.0
	for i := index - period + 1; i <= index; i++ {
		sum += closes[i]
	}
	return sum / float64(period)
}
