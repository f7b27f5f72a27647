package main

import (
	"fmt"

	"glowframe/internal/display"
	"glowframe/internal/playback"
	"glowframe/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewRemoteCmd creates the remote command
func NewRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote [folder]",
		Short: "Drive the slideshow manually from the keyboard",
		Long: `Remote runs the slideshow with auto-advance disabled and maps keyboard
keys onto the engine's manual controls: arrow keys advance forward or
backward, plus and minus adjust the backlight level. It stands in for the
touch buttons of a physical frame.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				cfg.Slideshow.Folder = args[0]
			}
			// Manual playback: park at each image until a key arrives
			cfg.Slideshow.AutoAdvance = false
			cfg.Slideshow.Dwell = 0
			if err := cfg.Validate(); err != nil {
				return err
			}

			engine, err := playback.NewWithConfig(cfg, playback.Options{
				Display:   &display.Console{},
				Decoder:   display.FileDecoder{},
				Backlight: newBacklight(),
			})
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("remote UI failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}
