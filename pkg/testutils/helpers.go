package testutils

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// CreateTestBMP writes a small valid BMP image to dir/name
func CreateTestBMP(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

// CreateTestBMPs writes a set of valid BMP images into dir
func CreateTestBMPs(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		CreateTestBMP(t, dir, name)
	}
}

// CreateCorruptImage writes a file that no image decoder can parse
func CreateCorruptImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte("this is not an image"), 0644)
	require.NoError(t, err)
	return path
}

// CreateTestFiles creates plain files with the given names in dir, useful
// for exercising catalog filtering against non-image entries
func CreateTestFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		err := os.WriteFile(filepath.Join(dir, name), []byte("content"), 0644)
		require.NoError(t, err)
	}
}
