package display

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Window presents slideshow images in a fyne window, full screen by
// default. It implements the playback Display interface for desktop and
// kiosk use.
type Window struct {
	fyneApp fyne.App
	win     fyne.Window
	blank   *canvas.Rectangle
}

// NewWindow creates the display window. The window is not shown until
// ShowAndRun is called from the main goroutine.
func NewWindow(title string, fullscreen bool) *Window {
	fyneApp := app.NewWithID("io.github.glowframe")
	win := fyneApp.NewWindow(title)
	win.SetPadded(false)
	win.SetFullScreen(fullscreen)
	if !fullscreen {
		win.Resize(fyne.NewSize(800, 480))
	}

	blank := canvas.NewRectangle(color.Black)
	win.SetContent(blank)

	return &Window{
		fyneApp: fyneApp,
		win:     win,
		blank:   blank,
	}
}

// Present replaces the window content with img
func (w *Window) Present(img image.Image) error {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.ScaleMode = canvas.ImageScaleSmooth
	w.win.SetContent(ci)
	ci.Refresh()
	return nil
}

// RemoveCurrent clears the window back to black
func (w *Window) RemoveCurrent() {
	w.win.SetContent(w.blank)
	w.blank.Refresh()
}

// ShowAndRun shows the window and runs the fyne event loop. Blocks until
// the window is closed; must run on the main goroutine.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

// Close shuts the window and stops the fyne event loop
func (w *Window) Close() {
	w.fyneApp.Quit()
}
