package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qrpanels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, 4, cfg.Panels)
	assert.Equal(t, "qrcode.png", cfg.DefaultFilename)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
panels: 2
box_size: 6
border: 2
error_correction: medium
default_filename: out.png
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Panels)
	assert.Equal(t, 6, cfg.BoxSize)
	assert.Equal(t, 2, cfg.Border)
	assert.Equal(t, "out.png", cfg.DefaultFilename)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	// untouched keys keep defaults
	assert.Equal(t, 40, cfg.PreviewSize)

	opts, err := cfg.EncoderOptions()
	require.NoError(t, err)
	assert.Equal(t, qrcode.Medium, opts.Level)
	assert.Equal(t, 6, opts.BoxSize)
	assert.Equal(t, 2, opts.Border)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "panels: 2\nlog_level: warn\n")
	t.Setenv("QRPANELS_PANELS", "6")
	t.Setenv("QRPANELS_DEFAULT_FILENAME", "env.png")
	t.Setenv("QRPANELS_LOG_FILE", "/tmp/qrpanels.log")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Panels)
	assert.Equal(t, "env.png", cfg.DefaultFilename)
	assert.Equal(t, "/tmp/qrpanels.log", cfg.LogFile)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

func TestLoad_BadEnvInteger(t *testing.T) {
	t.Setenv("QRPANELS_BOX_SIZE", "ten")
	_, err := Load("")
	assert.ErrorContains(t, err, "QRPANELS_BOX_SIZE")
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "panels: [oops"))
	assert.ErrorContains(t, err, "parsing config file")
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Panels = 0
	cfg.Border = -1
	cfg.ErrorCorrection = "extreme"
	cfg.LogLevel = "chatty"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "panels must be at least 1")
	assert.ErrorContains(t, err, "border must not be negative")
	assert.ErrorContains(t, err, `unknown error correction level "extreme"`)
	assert.ErrorContains(t, err, `unknown log level "chatty"`)
}
