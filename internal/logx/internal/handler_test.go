package internal

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(level slog.Level, msg string, kv ...any) slog.Record {
	r := slog.NewRecord(time.Time{}, level, msg, 0)
	r.AddAttrs(KVToAttrs(kv)...)
	return r
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(Options{Level: slog.LevelWarn}, &bytes.Buffer{})
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(Options{Level: slog.LevelDebug, DisableTimestamp: true}, &buf)

	require.NoError(t, h.Handle(context.Background(), record(slog.LevelInfo, "stage done", "stage", "models", "files", 3)))
	assert.Equal(t, "level=INFO msg=\"stage done\" files=3 stage=\"models\"\n", buf.String())
}

func TestHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(Options{Level: slog.LevelInfo, DisableTimestamp: true}, &buf)

	require.NoError(t, h.Handle(context.Background(), record(slog.LevelDebug, "hidden")))
	assert.Empty(t, buf.String())
}

func TestHandler_Timestamp(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(Options{}, &buf)
	require.NoError(t, h.Handle(context.Background(), record(slog.LevelInfo, "x")))
	assert.True(t, strings.HasPrefix(buf.String(), "time="))
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	base := NewHandler(Options{DisableTimestamp: true}, &buf)
	h := base.WithAttrs([]slog.Attr{slog.String("project", "Shop")}).WithGroup("gen")

	require.NoError(t, h.Handle(context.Background(), record(slog.LevelInfo, "m", "stage", "models")))
	out := buf.String()
	assert.Contains(t, out, `project="Shop"`)
	assert.Contains(t, out, `gen.stage="models"`)
}

func TestHandler_Concurrency(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(Options{DisableTimestamp: true}, &buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.Handle(context.Background(), record(slog.LevelInfo, "m"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, strings.Count(buf.String(), "\n"))
}

func TestKVToAttrs(t *testing.T) {
	attrs := KVToAttrs([]any{"a", 1, []any{"b", "x"}, "dangling"})
	require.Len(t, attrs, 2)
	assert.Equal(t, "a", attrs[0].Key)
	assert.Equal(t, "b", attrs[1].Key)
}

func TestSortAttrs(t *testing.T) {
	sorted := SortAttrs([]slog.Attr{slog.Int("z", 1), slog.Int("a", 2), slog.Int("m", 3)})
	assert.Equal(t, "a", sorted[0].Key)
	assert.Equal(t, "m", sorted[1].Key)
	assert.Equal(t, "z", sorted[2].Key)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    slog.Value
		want string
	}{
		{"string", slog.StringValue("a b"), `"a b"`},
		{"int", slog.IntValue(7), "7"},
		{"float", slog.Float64Value(1.50), "1.5"},
		{"bool", slog.BoolValue(true), "true"},
		{"duration", slog.DurationValue(1500 * time.Millisecond), "1500"},
		{"error", slog.AnyValue(errors.New("disk full")), `"disk full"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.v))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelString(slog.LevelDebug))
	assert.Equal(t, "ERROR", LevelString(slog.LevelError))
	assert.Equal(t, "LEVEL(2)", LevelString(slog.Level(2)))
}

func TestColorizeLevel(t *testing.T) {
	assert.Contains(t, ColorizeLevel("INFO"), "\x1b[")
	assert.Equal(t, "CUSTOM", ColorizeLevel("CUSTOM"))
}
