package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestConfigure_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: DebugLevel, Output: &buf, Service: "alumnisphere"})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}) })

	l := Component("analytics")
	l.Debug().Str("selector", "ALL").Msg("run")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "alumnisphere", entry["service"])
	assert.Equal(t, "analytics", entry["component"])
	assert.Equal(t, "ALL", entry["selector"])
	assert.Equal(t, "debug", entry["level"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout}) })

	assert.NotNil(t, FromContext(context.Background()))

	ctx := WithContext(context.Background(), WithField("request_id", "req-1"))
	FromContext(ctx).Info().Msg("scoped")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}
