package playback

import (
	"image"
	"time"
)

// Display is the surface the slideshow presents images on. Both calls are
// synchronous; Present replaces the currently shown element.
type Display interface {
	// Present makes img the visible element
	Present(img image.Image) error

	// RemoveCurrent clears the visible element
	RemoveCurrent()
}

// Decoder opens and decodes an image file into a displayable handle.
// Undecodable files fail with an incompatible-image error.
type Decoder interface {
	OpenAndDecode(path string) (image.Image, error)
}

// Backlight drives the display backlight hardware. Duty covers the full
// 16-bit range regardless of the hardware's native resolution.
type Backlight interface {
	SetDuty(duty uint16) error
}

// Clock supplies time to the engine so fade pacing and dwell timing can be
// controlled in tests.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// nopDisplay is used when no display surface is attached (headless runs)
type nopDisplay struct{}

func (nopDisplay) Present(image.Image) error { return nil }
func (nopDisplay) RemoveCurrent()            {}

// nopBacklight is used when no backlight hardware is attached
type nopBacklight struct{}

func (nopBacklight) SetDuty(uint16) error { return nil }
