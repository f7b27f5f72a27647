// Package playback contains the slideshow transition controller: a
// tick-driven state machine sequencing backlight fades, dwell timing, and
// image loading.
package playback

import (
	"math/rand"
	"path/filepath"
	"time"

	"glowframe/internal/catalog"
	"glowframe/internal/config"
	"glowframe/internal/errors"
	"glowframe/internal/log"
	"glowframe/pkg/types"
)

const (
	// LevelMax is the upper bound of the backlight target level range
	LevelMax = 0xffff

	// DefaultLevelStep is the increment applied by backlight level
	// adjustments when the config does not override it
	DefaultLevelStep = 16

	// fadeSteps and fadeStepDelay pace the blocking fade ramp: 100 steps
	// of 10ms, so a full ramp blocks Update for about one second
	fadeSteps     = 100
	fadeStepDelay = 10 * time.Millisecond
)

// Engine is the slideshow engine. It owns the catalog, the cursor, and the
// transition state machine, and talks to the display, decoder, and
// backlight collaborators.
//
// The engine is single-owner: all methods must be called from the same
// goroutine that calls Update. Update blocks for the duration of a fade
// ramp (about one second) when the fade effect is enabled.
type Engine struct {
	catalog *catalog.Catalog
	cursor  *catalog.Cursor

	display   Display
	decoder   Decoder
	backlight Backlight
	clock     Clock

	dwell       time.Duration
	fadeEffect  bool
	autoAdvance bool
	levelStep   int

	state        types.State
	level        int
	dwellStart   time.Time
	stopped      bool
	loadFailures int
	current      string
}

// Options carries the collaborators wired into an Engine. Decoder is
// required; nil Display and Backlight fall back to no-ops, nil Clock to the
// system clock, and nil Rand to a time-seeded source.
type Options struct {
	Display   Display
	Decoder   Decoder
	Backlight Backlight
	Clock     Clock
	Rand      *rand.Rand
}

// NewWithConfig builds an engine from the validated configuration and the
// given collaborators. The catalog is scanned immediately.
func NewWithConfig(cfg *config.Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Decoder == nil {
		return nil, errors.New("a decoder is required")
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cat, err := catalog.NewWithRand(cfg.Slideshow.Folder, cfg.Slideshow.Pattern, cfg.Order(), rng)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog:     cat,
		cursor:      catalog.NewCursor(cat, cfg.Direction(), cfg.Slideshow.Loop),
		display:     opts.Display,
		decoder:     opts.Decoder,
		backlight:   opts.Backlight,
		clock:       opts.Clock,
		dwell:       time.Duration(cfg.Slideshow.Dwell * float64(time.Second)),
		fadeEffect:  cfg.Slideshow.FadeEffect,
		autoAdvance: cfg.Slideshow.AutoAdvance,
		levelStep:   cfg.Backlight.Step,
		state:       types.LoadImage,
		level:       cfg.Backlight.Level,
	}
	if e.display == nil {
		e.display = nopDisplay{}
	}
	if e.backlight == nil {
		e.backlight = nopBacklight{}
	}
	if e.clock == nil {
		e.clock = systemClock{}
	}
	if e.levelStep < 1 {
		e.levelStep = DefaultLevelStep
	}
	return e, nil
}

// Update advances the state machine by one tick. State transitions cascade
// within a single call when their exit conditions are already satisfied, so
// one tick can fade out, remove the image, and load the next one.
//
// Returns true while playback continues. Once the cursor is exhausted
// during a load attempt it returns false and the engine stays stopped.
func (e *Engine) Update() bool {
	if e.stopped {
		return false
	}
	now := e.clock.Now()

	if e.state == types.FadeIn {
		e.fadeIn()
		e.state = types.ShowImage
		e.dwellStart = e.clock.Now()
	}

	if e.state == types.ShowImage {
		e.setDuty(e.level)
		if now.Sub(e.dwellStart) > e.dwell {
			if e.autoAdvance {
				e.state = types.FadeOut
			} else {
				e.state = types.Wait
			}
		}
	}

	if e.state == types.Wait {
		// Held at full brightness until Advance is called.
		e.setDuty(e.level)
	}

	if e.state == types.FadeOut {
		e.fadeOut()
		e.display.RemoveCurrent()
		e.current = ""
		e.state = types.LoadImage
	}

	if e.state == types.LoadImage {
		if !e.loadNext() {
			e.stopped = true
			return false
		}
	}

	return true
}

// loadNext pulls the next image from the cursor and presents it. The cursor
// advances before presentation is attempted, so a failed image is already
// skipped when the next tick retries. Returns false when playback is over.
func (e *Engine) loadNext() bool {
	name, err := e.cursor.Next()
	if err != nil {
		log.Info("Slideshow finished")
		return false
	}

	path := filepath.Join(e.catalog.Folder(), name)
	img, err := e.decoder.OpenAndDecode(path)
	if err == nil {
		err = e.display.Present(img)
	}
	if err != nil {
		e.loadFailures++
		log.LogWithFields(log.F("image", name), log.F("error", err)).Warn("Skipping image")
		// A full catalog of consecutive failures means nothing is
		// displayable; give up instead of ticking forever.
		if e.loadFailures >= e.catalog.Len() {
			log.Error("No displayable images in %s", e.catalog.Folder())
			return false
		}
		return true
	}

	e.loadFailures = 0
	e.current = name
	e.state = types.FadeIn
	log.LogWithFields(log.F("image", name)).Debug("Presented image")
	return true
}

// fadeIn ramps the backlight duty from zero to the target level. With the
// fade effect disabled the duty is set directly. The target level is
// captured at ramp start; level adjustments during a ramp apply to the
// next one.
func (e *Engine) fadeIn() {
	level := e.level
	if !e.fadeEffect {
		e.setDuty(level)
		return
	}
	for step := 1; step <= fadeSteps; step++ {
		e.setDuty(level * step / fadeSteps)
		e.clock.Sleep(fadeStepDelay)
	}
}

// fadeOut ramps the backlight duty from the target level down to zero.
// With the fade effect disabled the duty holds at the target level.
func (e *Engine) fadeOut() {
	if !e.fadeEffect {
		return
	}
	level := e.level
	for step := fadeSteps - 1; step >= 0; step-- {
		e.setDuty(level * step / fadeSteps)
		e.clock.Sleep(fadeStepDelay)
	}
}

func (e *Engine) setDuty(level int) {
	if err := e.backlight.SetDuty(uint16(level)); err != nil {
		log.Warnf("Backlight write failed: %v", err)
	}
}

// Advance requests a manual transition to the next image. An optional
// direction updates the traversal direction for subsequent cursor calls.
// The state change only takes effect while the engine is waiting for
// manual input; a transition already in progress is never interrupted.
func (e *Engine) Advance(direction ...types.Direction) {
	if len(direction) > 0 {
		if err := e.cursor.SetDirection(direction[0]); err != nil {
			log.Warnf("Ignoring advance direction: %v", err)
		}
	}
	if e.state == types.Wait {
		e.state = types.FadeOut
	}
}

// BacklightLevelUp raises the target backlight level by the configured
// step, clamped to the valid range. Takes effect immediately in states
// that hold the duty; an active ramp keeps the level it captured.
func (e *Engine) BacklightLevelUp() {
	e.level += e.levelStep
	if e.level > LevelMax {
		e.level = LevelMax
	}
}

// BacklightLevelDown lowers the target backlight level by the configured
// step, clamped to the valid range.
func (e *Engine) BacklightLevelDown() {
	e.level -= e.levelStep
	if e.level < 0 {
		e.level = 0
	}
}

// BacklightLevel returns the current target backlight level
func (e *Engine) BacklightLevel() int {
	return e.level
}

// SetOrder changes the playback order. Invalid values are rejected and the
// prior order is retained. An actual order transition reorders the catalog
// and restarts the traversal; re-setting the current value is a no-op.
func (e *Engine) SetOrder(order types.Order) error {
	changed, err := e.catalog.SetOrder(order)
	if err != nil {
		return err
	}
	if changed {
		e.cursor.Rewind()
		e.stopped = false
		e.loadFailures = 0
	}
	return nil
}

// Order returns the current playback order
func (e *Engine) Order() types.Order {
	return e.catalog.Order()
}

// SetDirection changes the traversal direction, honored on the next
// cursor call.
func (e *Engine) SetDirection(direction types.Direction) error {
	return e.cursor.SetDirection(direction)
}

// Direction returns the current traversal direction
func (e *Engine) Direction() types.Direction {
	return e.cursor.Direction()
}

// SetLoop changes whether playback restarts after a full pass
func (e *Engine) SetLoop(loop bool) {
	e.cursor.SetLoop(loop)
}

// SetDwell changes how long each image stays fully visible. Negative
// durations are rejected.
func (e *Engine) SetDwell(d time.Duration) error {
	if d < 0 {
		return errors.NewConfigError("dwell must not be negative", d.String(), errors.InvalidConfig, nil)
	}
	e.dwell = d
	return nil
}

// Dwell returns the current dwell duration
func (e *Engine) Dwell() time.Duration {
	return e.dwell
}

// SetFadeEffect toggles the backlight fade between images
func (e *Engine) SetFadeEffect(fade bool) {
	e.fadeEffect = fade
}

// SetAutoAdvance toggles timer-driven advancing. When disabled, playback
// parks in the wait state after each dwell until Advance is called.
func (e *Engine) SetAutoAdvance(auto bool) {
	e.autoAdvance = auto
}

// SetFolder changes the image folder. The catalog is not rebuilt until the
// next Reload.
func (e *Engine) SetFolder(folder string) {
	e.catalog.SetFolder(folder)
}

// Reload rescans the image folder, reorders the catalog, and restarts the
// traversal. Used by watch mode when the folder contents change; also
// clears a previous exhaustion so playback can resume.
func (e *Engine) Reload() error {
	if err := e.catalog.Reload(); err != nil {
		return err
	}
	e.cursor.Rewind()
	e.stopped = false
	e.loadFailures = 0
	return nil
}

// State returns the active playback state
func (e *Engine) State() types.State {
	return e.state
}

// Current returns the name of the image being shown, empty between images
func (e *Engine) Current() string {
	return e.current
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}
