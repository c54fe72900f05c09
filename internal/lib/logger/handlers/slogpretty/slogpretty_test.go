package slogpretty

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}

	return slog.New(opts.NewPrettyHandler(buf))
}

func decodeFields(t *testing.T, out string) map[string]any {
	t.Helper()

	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	require.True(t, start >= 0 && end > start, out)

	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(out[start:end+1]), &fields))

	return fields
}

func TestPrettyHandlerFlatAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestLogger(&buf).With(slog.String("op", "handlers.auth.signup.New")).
		Info("user registered", slog.Int64("user_id", 7))

	out := buf.String()
	assert.Contains(t, out, "user registered")

	fields := decodeFields(t, out)
	assert.Equal(t, "handlers.auth.signup.New", fields["op"])
	assert.Equal(t, float64(7), fields["user_id"])
}

func TestPrettyHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestLogger(&buf).
		With(slog.String("op", "x")).
		WithGroup("request").
		With(slog.String("method", "POST")).
		Info("request completed", slog.Int("status", 201), slog.Group("client", slog.String("ip", "127.0.0.1")))

	fields := decodeFields(t, buf.String())

	assert.Equal(t, "x", fields["op"])

	request, ok := fields["request"].(map[string]any)
	require.True(t, ok, fields)
	assert.Equal(t, "POST", request["method"])
	assert.Equal(t, float64(201), request["status"])
	assert.Equal(t, map[string]any{"ip": "127.0.0.1"}, request["client"])

	assert.NotContains(t, fields, "status")
	assert.NotContains(t, fields, "method")
}

func TestPrettyHandlerEmptyGroupName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newTestLogger(&buf).WithGroup("").Info("msg", slog.Int("n", 1))

	assert.Equal(t, float64(1), decodeFields(t, buf.String())["n"])
}
