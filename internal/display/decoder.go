// Package display provides the image decoding and presentation
// collaborators consumed by the playback engine.
package display

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"glowframe/internal/errors"

	_ "golang.org/x/image/bmp"
)

// FileDecoder opens image files from disk and decodes them. BMP is the
// primary photo-frame format; PNG, JPEG, and GIF are registered as well.
type FileDecoder struct{}

// OpenAndDecode reads and decodes the image at path. Files that cannot be
// parsed fail with an incompatible-image error so the engine can skip them.
func (FileDecoder) OpenAndDecode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewImageError("cannot open image", path, errors.ImageOpenFailed, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.NewImageError("incompatible image", path, errors.IncompatibleImage, err)
	}
	return img, nil
}
