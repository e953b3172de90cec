package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FormatFollowsEnvironment(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{name: "production uses json", environment: "production", wantJSON: true},
		{name: "development uses pretty", environment: "development", wantJSON: false},
		{name: "staging uses pretty", environment: "staging", wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(Config{Level: slog.LevelInfo, Environment: tt.environment, Writer: &buf})

			log.Info("dataset loaded", "rows", 42)

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"dataset loaded"`)
				assert.Contains(t, buf.String(), `"rows":42`)
			} else {
				assert.Contains(t, buf.String(), "dataset loaded")
				assert.Contains(t, buf.String(), "rows=42")
				assert.Contains(t, buf.String(), colorGreen)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelWarn, Format: formatPretty, Writer: &buf})

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("visible warn")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible warn")
	assert.Contains(t, buf.String(), "WRN")
}

func TestPrettyHandler_GroupsQualifyKeys(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)

	log := slog.New(h.WithGroup("dataset"))
	log.Info("reloaded", "rows", 10)

	assert.Contains(t, buf.String(), "dataset.rows=10")
}

func TestPrettyHandler_WithAttrsDoesNotLeakBetweenRecords(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(NewPrettyHandler(&buf, nil)).With("component", "watcher")

	base.Info("first", "path", "a.csv")
	base.Info("second")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "path=a.csv")
	assert.NotContains(t, string(lines[1]), "path=a.csv")
	assert.Contains(t, string(lines[1]), "component=watcher")
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	record := slog.NewRecord(time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC), slog.LevelDebug, "pivot built", 0)
	record.AddAttrs(slog.Duration("took", 1500*time.Millisecond))

	require.NoError(t, h.Handle(context.Background(), record))
	assert.Contains(t, buf.String(), "15:04:05")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "took=1.5s")
}

func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Format: formatJSON, Writer: &buf})

	log.Component("watcher").Info("watching")

	assert.Contains(t, buf.String(), `"component":"watcher"`)
}

func TestPrettyHandler_FlattensGroupAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil))

	log.Info("dataset loaded", slog.Group("dataset", slog.Int("rows", 610), slog.String("years", "1986-2016")))

	assert.Contains(t, buf.String(), "dataset.rows=610")
	assert.Contains(t, buf.String(), "dataset.years=1986-2016")
}

func TestPrettyHandler_QuotesStringsWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil))

	log.Info("reload failed", "error", "missing column gross", "path", "movies.csv")

	assert.Contains(t, buf.String(), `"missing column gross"`)
	assert.Contains(t, buf.String(), "path=movies.csv")
}

func TestDiscard(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)
	log.Error("nothing to see")
}
