package backlight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeDevice lays out a sysfs-style backlight directory
func newFakeDevice(t *testing.T, maxBrightness string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "max_brightness"), []byte(maxBrightness), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brightness"), []byte("0"), 0644))
	return dir
}

func readBrightness(t *testing.T, dir string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "brightness"))
	require.NoError(t, err)
	return string(raw)
}

func TestSysfsScaling(t *testing.T) {
	dir := newFakeDevice(t, "255\n")

	bl, err := NewSysfsAt(dir)
	require.NoError(t, err)
	assert.Equal(t, 255, bl.Max())

	require.NoError(t, bl.SetDuty(0xffff))
	assert.Equal(t, "255", readBrightness(t, dir))

	require.NoError(t, bl.SetDuty(0))
	assert.Equal(t, "0", readBrightness(t, dir))

	require.NoError(t, bl.SetDuty(0x8000))
	assert.Equal(t, "127", readBrightness(t, dir))
}

func TestSysfsErrors(t *testing.T) {
	t.Run("missing device", func(t *testing.T) {
		_, err := NewSysfsAt(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})

	t.Run("garbage max_brightness", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "max_brightness"), []byte("lots"), 0644))
		_, err := NewSysfsAt(dir)
		assert.Error(t, err)
	})

	t.Run("zero max_brightness", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "max_brightness"), []byte("0"), 0644))
		_, err := NewSysfsAt(dir)
		assert.Error(t, err)
	})
}

func TestNullBacklight(t *testing.T) {
	n := &Null{}
	require.NoError(t, n.SetDuty(1234))
	assert.Equal(t, uint16(1234), n.Duty())
}
