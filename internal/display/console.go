package display

import (
	"image"

	"glowframe/internal/log"
)

// Console is a display surface that only logs what would be shown. Used
// for headless runs and for driving the engine from the remote-control
// terminal UI.
type Console struct{}

// Present logs the presented image dimensions
func (c *Console) Present(img image.Image) error {
	b := img.Bounds()
	log.LogWithFields(log.F("width", b.Dx()), log.F("height", b.Dy())).Debug("Presenting image")
	return nil
}

// RemoveCurrent logs the removal
func (c *Console) RemoveCurrent() {
	log.Debug("Removing current image")
}
