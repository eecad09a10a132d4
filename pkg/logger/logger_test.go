package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/architeacher/idevices/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: logger.LogLevelDebug, expected: zerolog.DebugLevel},
		{name: "info", level: logger.LogLevelInfo, expected: zerolog.InfoLevel},
		{name: "warn", level: logger.LogLevelWarn, expected: zerolog.WarnLevel},
		{name: "warning alias", level: logger.LogLevelWarning, expected: zerolog.WarnLevel},
		{name: "upper case error", level: "ERROR", expected: zerolog.ErrorLevel},
		{name: "unknown falls back to info", level: "verbose", expected: zerolog.InfoLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expected, logger.ParseLevel(tc.level))
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		level     string
		format    string
		logged    bool
		jsonLines bool
	}{
		{
			name:      "json format at info logs info",
			level:     logger.LogLevelInfo,
			format:    logger.JSONLoggingFormat,
			logged:    true,
			jsonLines: true,
		},
		{
			name:   "console format at debug logs info",
			level:  logger.LogLevelDebug,
			format: logger.ConsoleLoggingFormat,
			logged: true,
		},
		{
			name:   "error level drops info",
			level:  logger.LogLevelError,
			format: logger.JSONLoggingFormat,
			logged: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewWithWriter(tc.level, tc.format, &buf)

			log.Info().Msg("device created")

			if !tc.logged {
				require.Empty(t, buf.String())

				return
			}

			require.Contains(t, buf.String(), "device created")

			if tc.jsonLines {
				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				require.Equal(t, "info", entry["level"])
				require.NotEmpty(t, entry["time"])
			}
		})
	}
}

func TestForDevice(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewBufferedTestLogger(&buf).ForDevice("phone")

	log.Info().Msg("printed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "phone", entry["device_kind"])
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	traceID, err := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	require.NoError(t, err)

	spanID, err := trace.SpanIDFromHex("0102030405060708")
	require.NoError(t, err)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	cases := []struct {
		name          string
		setupContext  func() context.Context
		correlationID string
		traceID       string
	}{
		{
			name: "adds correlation ID",
			setupContext: func() context.Context {
				return logger.ContextWithCorrelationID(context.Background(), "catalog-1")
			},
			correlationID: "catalog-1",
		},
		{
			name: "adds trace and span IDs",
			setupContext: func() context.Context {
				return trace.ContextWithSpanContext(context.Background(), spanCtx)
			},
			traceID: traceID.String(),
		},
		{
			name:         "handles empty context",
			setupContext: context.Background,
		},
		{
			name: "ignores empty correlation ID",
			setupContext: func() context.Context {
				return logger.ContextWithCorrelationID(context.Background(), "")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := logger.NewBufferedTestLogger(&buf)

			ctxLogger := log.WithContext(tc.setupContext())
			ctxLogger.Info().Msg("test message")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			if tc.correlationID != "" {
				require.Equal(t, tc.correlationID, entry["correlation_id"])
			} else {
				require.NotContains(t, entry, "correlation_id")
			}

			if tc.traceID != "" {
				require.Equal(t, tc.traceID, entry["trace_id"])
				require.Equal(t, spanID.String(), entry["span_id"])
			} else {
				require.NotContains(t, entry, "trace_id")
			}
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	require.NotPanics(t, func() { log.Error().Msg("discarded") })
}
