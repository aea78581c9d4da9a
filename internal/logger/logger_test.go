package logger_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/abdidvp/easydelivery/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.Disabled, logger.ParseLevel("disabled"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("loud"))
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "warn")

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Str("picking_id", "42").Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "42")
}

func TestNew_LeavesGlobalsAlone(t *testing.T) {
	prevFormat, prevInteger := zerolog.TimeFieldFormat, zerolog.DurationFieldInteger
	t.Cleanup(func() {
		zerolog.TimeFieldFormat, zerolog.DurationFieldInteger = prevFormat, prevInteger
	})

	zerolog.TimeFieldFormat = time.Kitchen
	zerolog.DurationFieldInteger = false

	logger.New(&bytes.Buffer{}, "info")
	logger.New(&bytes.Buffer{}, "debug")

	assert.Equal(t, time.Kitchen, zerolog.TimeFieldFormat)
	assert.False(t, zerolog.DurationFieldInteger)
}
