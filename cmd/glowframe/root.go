package main

import (
	"fmt"

	"glowframe/internal/config"
	"glowframe/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "glowframe",
		Short:   "A slideshow engine for photo-frame style devices",
		Long: `Glowframe drives an unattended image slideshow on devices with a
built-in display and a dimmable backlight. It walks a folder of images in
a configurable order, shows each for a configurable dwell time, and fades
the backlight between images.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				fmt.Printf("Warning: %v\n", configErr)
				fmt.Println("Using default settings.")
				cfg = config.New()
			}

			log.SetDebug(cfg.Settings.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/glowframe/config.yaml)")

	rootCmd.AddCommand(NewPlayCmd())
	rootCmd.AddCommand(NewRemoteCmd())

	return rootCmd
}
