package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowframe/internal/backlight"
	"glowframe/internal/display"
	"glowframe/internal/log"
	"glowframe/internal/playback"
	"glowframe/internal/watch"

	"github.com/spf13/cobra"
)

// tickPause keeps the autonomous play loop from spinning between ticks
const tickPause = 10 * time.Millisecond

// NewPlayCmd creates the play command
func NewPlayCmd() *cobra.Command {
	var (
		order       string
		direction   string
		loop        bool
		dwell       float64
		fade        bool
		autoAdvance bool
		headless    bool
		fullscreen  bool
		watchFolder bool
	)

	cmd := &cobra.Command{
		Use:   "play [folder]",
		Short: "Run the slideshow",
		Long: `Play the slideshow from the configured folder, or from the folder given
as an argument. Playback runs until the playlist is exhausted (when looping
is disabled) or until interrupted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Slideshow.Folder = args[0]
			}
			if cmd.Flags().Changed("order") {
				cfg.Slideshow.Order = order
			}
			if cmd.Flags().Changed("direction") {
				cfg.Slideshow.Direction = direction
			}
			if cmd.Flags().Changed("loop") {
				cfg.Slideshow.Loop = loop
			}
			if cmd.Flags().Changed("dwell") {
				cfg.Slideshow.Dwell = dwell
			}
			if cmd.Flags().Changed("fade") {
				cfg.Slideshow.FadeEffect = fade
			}
			if cmd.Flags().Changed("auto-advance") {
				cfg.Slideshow.AutoAdvance = autoAdvance
			}
			if cmd.Flags().Changed("watch") {
				cfg.WatchMode.Enabled = watchFolder
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := playback.Options{
				Decoder:   display.FileDecoder{},
				Backlight: newBacklight(),
			}

			var win *display.Window
			if headless {
				opts.Display = &display.Console{}
			} else {
				win = display.NewWindow("glowframe", fullscreen)
				opts.Display = win
			}

			engine, err := playback.NewWithConfig(cfg, opts)
			if err != nil {
				return err
			}
			if engine.Catalog().Len() == 0 {
				fmt.Printf("No images matching %q in %s\n", cfg.Slideshow.Pattern, cfg.Slideshow.Folder)
			}

			var changes <-chan struct{}
			if cfg.WatchMode.Enabled {
				watcher, err := watch.New(cfg.Slideshow.Folder, cfg.Slideshow.Pattern)
				if err != nil {
					return fmt.Errorf("cannot watch folder: %w", err)
				}
				if err := watcher.Start(); err != nil {
					return err
				}
				defer watcher.Stop()
				changes = watcher.Changes()
			}

			stop := make(chan struct{})
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigs
				close(stop)
			}()

			if win != nil {
				// fyne needs the main goroutine; the engine ticks beside it
				go func() {
					runLoop(engine, changes, stop)
					win.Close()
				}()
				win.ShowAndRun()
				return nil
			}

			runLoop(engine, changes, stop)
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "playback order: alpha or random")
	cmd.Flags().StringVar(&direction, "direction", "", "traversal direction: forward or backward")
	cmd.Flags().BoolVar(&loop, "loop", true, "restart after the last image")
	cmd.Flags().Float64Var(&dwell, "dwell", 3, "seconds each image stays visible")
	cmd.Flags().BoolVar(&fade, "fade", true, "fade the backlight between images")
	cmd.Flags().BoolVar(&autoAdvance, "auto-advance", true, "advance on a timer")
	cmd.Flags().BoolVar(&watchFolder, "watch", false, "reload the catalog when the folder changes")
	cmd.Flags().BoolVar(&headless, "headless", false, "run without a display window")
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", true, "show the window full screen")

	return cmd
}

// runLoop ticks the engine until playback finishes or stop closes. Folder
// change notifications are drained between ticks so the catalog reload
// happens on the engine's own goroutine.
func runLoop(engine *playback.Engine, changes <-chan struct{}, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			log.Info("Slideshow interrupted")
			return
		case <-changes:
			if err := engine.Reload(); err != nil {
				log.Warnf("Catalog reload failed: %v", err)
			}
		default:
		}

		if !engine.Update() {
			return
		}
		time.Sleep(tickPause)
	}
}

// newBacklight picks the backlight driver from the configuration
func newBacklight() playback.Backlight {
	if cfg.Backlight.Device == "" {
		return &backlight.Null{}
	}
	bl, err := backlight.NewSysfs(cfg.Backlight.Device)
	if err != nil {
		log.Warnf("Backlight unavailable, brightness control disabled: %v", err)
		return &backlight.Null{}
	}
	return bl
}
