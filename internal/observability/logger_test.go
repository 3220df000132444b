package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetLogLevel(t *testing.T) {
	cases := []struct {
		env, level string
		want       zapcore.Level
	}{
		{"dev", "", zap.DebugLevel},
		{"production", "", zap.InfoLevel},
		{"dev", "warn", zap.WarnLevel},
		{"", "ERROR", zap.ErrorLevel},
		{"", "bogus", zap.InfoLevel},
	}
	for _, tc := range cases {
		t.Setenv("ENV", tc.env)
		t.Setenv("LOG_LEVEL", tc.level)
		assert.Equal(t, tc.want, getLogLevel(), "ENV=%q LOG_LEVEL=%q", tc.env, tc.level)
	}
}

func TestInitLoggerWithLevel(t *testing.T) {
	logger, err := InitLoggerWithLevel(zap.WarnLevel, "adsense-test")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}
