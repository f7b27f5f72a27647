package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"glowframe/internal/config"
	"glowframe/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config-*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	err = tmpFile.Close()
	require.NoError(t, err)
	return tmpFile.Name()
}

const (
	validYAML = `
slideshow:
  folder: "/media/frame"
  pattern: "*.bmp"
  order: "alpha"
  direction: "backward"
  loop: true
  dwell: 5
  fade_effect: true
  auto_advance: true
backlight:
  device: "rpi_backlight"
  level: 40000
  step: 32
watch_mode:
  enabled: true
`
	invalidOrderYAML = `
slideshow:
  order: "chronological"
`
	invalidLevelYAML = `
backlight:
  level: 70000
`
	invalidSyntaxYAML = `
slideshow:
  folder: "/media/frame
  order: [broken
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		configFile := createTestYAML(t, validYAML)
		cfg, err := config.LoadConfigFile(configFile)

		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "/media/frame", cfg.Slideshow.Folder)
		assert.Equal(t, types.Alpha, cfg.Order())
		assert.Equal(t, types.Backward, cfg.Direction())
		assert.True(t, cfg.Slideshow.Loop)
		assert.Equal(t, 5.0, cfg.Slideshow.Dwell)
		assert.Equal(t, "rpi_backlight", cfg.Backlight.Device)
		assert.Equal(t, 40000, cfg.Backlight.Level)
		assert.Equal(t, 32, cfg.Backlight.Step)
		assert.True(t, cfg.WatchMode.Enabled)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.Slideshow.Folder)
		assert.Equal(t, "*.bmp", cfg.Slideshow.Pattern)
		assert.Equal(t, types.Random, cfg.Order())
		assert.Equal(t, types.Forward, cfg.Direction())
		assert.Equal(t, 3.0, cfg.Slideshow.Dwell)
		assert.Equal(t, 1<<15, cfg.Backlight.Level)
		assert.Equal(t, 16, cfg.Backlight.Step)
	})

	t.Run("partial config keeps defaults for unset fields", func(t *testing.T) {
		configFile := createTestYAML(t, "slideshow:\n  folder: \"/pics\"\n  loop: true\n")
		cfg, err := config.LoadConfigFile(configFile)
		require.NoError(t, err)
		assert.Equal(t, "/pics", cfg.Slideshow.Folder)
		assert.Equal(t, "*.bmp", cfg.Slideshow.Pattern)
		assert.Equal(t, 16, cfg.Backlight.Step)
	})

	t.Run("invalid order is rejected", func(t *testing.T) {
		configFile := createTestYAML(t, invalidOrderYAML)
		_, err := config.LoadConfigFile(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order")
	})

	t.Run("invalid backlight level is rejected", func(t *testing.T) {
		configFile := createTestYAML(t, invalidLevelYAML)
		_, err := config.LoadConfigFile(configFile)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backlight level")
	})

	t.Run("bad yaml syntax is rejected", func(t *testing.T) {
		configFile := createTestYAML(t, invalidSyntaxYAML)
		_, err := config.LoadConfigFile(configFile)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults validate", func(t *testing.T) {
		assert.NoError(t, config.New().Validate())
	})

	t.Run("negative dwell rejected", func(t *testing.T) {
		cfg := config.New()
		cfg.Slideshow.Dwell = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty pattern rejected", func(t *testing.T) {
		cfg := config.New()
		cfg.Slideshow.Pattern = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad direction rejected", func(t *testing.T) {
		cfg := config.New()
		cfg.Slideshow.Direction = "sideways"
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero step rejected", func(t *testing.T) {
		cfg := config.New()
		cfg.Backlight.Step = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.Slideshow.Folder = "/media/frame"
	cfg.Slideshow.Order = types.Alpha.String()

	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/media/frame", loaded.Slideshow.Folder)
	assert.Equal(t, types.Alpha, loaded.Order())
}
