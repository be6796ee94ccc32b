package strategy

import (
	"context"
	"testing"

	"momentumBacktester/internal/domain"
	"momentumBacktester/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct {
	debugMsgs []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.debugMsgs = append(m.debugMsgs, msg)
}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		logger  ports.Logger
		wantErr bool
	}{
		{
			name:    "valid config",
			cfg:     DefaultConfig(),
			logger:  &mockLogger{},
			wantErr: false,
		},
		{
			name:    "nil logger",
			cfg:     DefaultConfig(),
			logger:  nil,
			wantErr: true,
		},
		{
			name:    "zero RSI period",
			cfg:     Config{RSIPeriod: 0, RSIEntry: 30, RSIExit: 60, SMAPeriod: 20},
			logger:  &mockLogger{},
			wantErr: true,
		},
		{
			name:    "zero SMA period",
			cfg:     Config{RSIPeriod: 14, RSIEntry: 30, RSIExit: 60, SMAPeriod: 0},
			logger:  &mockLogger{},
			wantErr: true,
		},
		{
			name:    "entry threshold above exit threshold",
			cfg:     Config{RSIPeriod: 14, RSIEntry: 60, RSIExit: 30, SMAPeriod: 20},
			logger:  &mockLogger{},
			wantErr: true,
		},
		{
			name:    "exit threshold above 100",
			cfg:     Config{RSIPeriod: 14, RSIEntry: 30, RSIExit: 101, SMAPeriod: 20},
			logger:  &mockLogger{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strat, err := New(tt.cfg, tt.logger)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, strat)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, strat)
			assert.Equal(t, 26, strat.RequiredDataPoints())
		})
	}
}

func TestStrategy_ShouldEnterTrade(t *testing.T) {
	strat, err := New(DefaultConfig(), &mockLogger{})
	require.NoError(t, err)
	ctx := context.Background()

	// Steep ramp followed by fourteen small declines: RSI is 0, the re-seeded
	// MACD is still positive and the price is still above its 20-period mean.
	closes := []float64{100}
	for i := 0; i < 26; i++ {
		closes = append(closes, closes[len(closes)-1]+6)
	}
	for i := 0; i < 14; i++ {
		closes = append(closes, closes[len(closes)-1]-0.2)
	}
	assert.True(t, strat.ShouldEnterTrade(ctx, closes, len(closes)-1))

	// A pure ramp keeps RSI saturated at 100, well above the entry threshold.
	ramp := make([]float64, 40)
	for i := range ramp {
		ramp[i] = 100 + float64(i)
	}
	assert.False(t, strat.ShouldEnterTrade(ctx, ramp, 39))
}

func TestStrategy_ShouldClosePosition(t *testing.T) {
	strat, err := New(DefaultConfig(), &mockLogger{})
	require.NoError(t, err)
	ctx := context.Background()

	// Rising series: RSI saturates above the exit threshold.
	ramp := make([]float64, 40)
	for i := range ramp {
		ramp[i] = 100 + float64(i)
	}
	shouldClose, reason := strat.ShouldClosePosition(ctx, ramp, 39)
	assert.True(t, shouldClose)
	assert.Equal(t, domain.CloseReasonOverbought, reason)

	// Falling series: RSI is 0 but the price sits below its SMA.
	fall := make([]float64, 40)
	for i := range fall {
		fall[i] = 200 - float64(i)
	}
	shouldClose, reason = strat.ShouldClosePosition(ctx, fall, 39)
	assert.True(t, shouldClose)
	assert.Equal(t, domain.CloseReasonTrendBreak, reason)

	// Constant series: RSI is 100 via the no-loss rule, so the overbought
	// exit fires even without movement.
	flat := make([]float64, 40)
	for i := range flat {
		flat[i] = 100
	}
	shouldClose, reason = strat.ShouldClosePosition(ctx, flat, 39)
	assert.True(t, shouldClose)
	assert.Equal(t, domain.CloseReasonOverbought, reason)
}
