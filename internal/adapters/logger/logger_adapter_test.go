package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFluent struct {
	mu     sync.Mutex
	posts  []fluentPost
	closed bool
}

type fluentPost struct {
	tag  string
	data port.Fields
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, fluentPost{tag: tag, data: message.(port.Fields)})
	return nil
}

func (f *fakeFluent) Close() error {
	f.closed = true
	return nil
}

func TestSlogAdapter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelInfo, IsJSON: true})

	logger.WithFields(port.Fields{"trace_id": "abc"}).Info("request handled", port.Fields{"status": 200})
	logger.Debug("hidden", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "request handled", record["msg"])
	assert.Equal(t, "abc", record["trace_id"])
	assert.Equal(t, float64(200), record["status"])
}

func TestSlogAdapter_ErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug})

	logger.Error("use case failed", errors.New("storage unavailable"), port.Fields{"use_case": "FindObjects"})

	out := buf.String()
	assert.Contains(t, out, "use case failed")
	assert.Contains(t, out, "storage unavailable")
	assert.Contains(t, out, "use_case=FindObjects")
}

func TestFluentLoggerAdapter(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, slog.LevelInfo)
	require.NoError(t, err)

	logger := adapter.WithFields(port.Fields{"service_name": "estate-site"})
	logger.Debug("dropped", nil)
	logger.Warn("slow request", port.Fields{"duration_ms": 1500})
	logger.Error("failed", errors.New("boom"), nil)

	require.Len(t, client.posts, 2)
	assert.Equal(t, "warn", client.posts[0].tag)
	assert.Equal(t, "slow request", client.posts[0].data["message"])
	assert.Equal(t, "estate-site", client.posts[0].data["service_name"])
	assert.Equal(t, 1500, client.posts[0].data["duration_ms"])

	assert.Equal(t, "error", client.posts[1].tag)
	assert.Equal(t, "boom", client.posts[1].data["error"])

	require.NoError(t, adapter.Close())
	assert.True(t, client.closed)
}

func TestNewFluentLoggerAdapter_NilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiloggerAdapter(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	require.Error(t, err)

	first, second := &fakeFluent{}, &fakeFluent{}
	a, err := NewFluentLoggerAdapter(first, slog.LevelDebug)
	require.NoError(t, err)
	b, err := NewFluentLoggerAdapter(second, slog.LevelDebug)
	require.NoError(t, err)

	multi, err := NewMultiloggerAdapter(a, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"component": "app"}).Info("started", nil)

	for _, client := range []*fakeFluent{first, second} {
		require.Len(t, client.posts, 1)
		assert.Equal(t, "app", client.posts[0].data["component"])
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
