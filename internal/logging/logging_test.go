package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sakinahapp/sakinah/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sakinah.log")

	log, err := New(config.LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)
	log.Debug("cache hit", zap.Int("ordinal", 12))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"cache hit"`)
	assert.Contains(t, string(data), `"ordinal":12`)
}

func TestNew_DefaultsToStateDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)

	log, err := New(config.LogConfig{})
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, log.Sync())

	_, err = os.Stat(filepath.Join(tmp, "sakinah", "sakinah.log"))
	assert.NoError(t, err)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}

func TestNewWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(zapcore.AddSync(&buf), zapcore.WarnLevel, "console")
	log.Info("quiet")
	log.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
