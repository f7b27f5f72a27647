package config

import (
	"fmt"
	"os"
	"path/filepath"

	"glowframe/pkg/types"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines the slideshow playback parameters, the backlight device, and
// watch mode settings.
type Config struct {
	Slideshow struct {
		Folder      string  `yaml:"folder"`       // Directory containing the images
		Pattern     string  `yaml:"pattern"`      // Glob pattern for eligible files
		Order       string  `yaml:"order"`        // Playback order: alpha or random
		Direction   string  `yaml:"direction"`    // Traversal direction: forward or backward
		Loop        bool    `yaml:"loop"`         // Restart after the last image
		Dwell       float64 `yaml:"dwell"`        // Seconds each image stays fully visible
		FadeEffect  bool    `yaml:"fade_effect"`  // Fade the backlight between images
		AutoAdvance bool    `yaml:"auto_advance"` // Advance on a timer instead of manual input
	} `yaml:"slideshow"`
	Backlight struct {
		Device string `yaml:"device"` // sysfs backlight device name, empty for none
		Level  int    `yaml:"level"`  // Target brightness at full show, 0-65535
		Step   int    `yaml:"step"`   // Increment for brightness adjustments
	} `yaml:"backlight"`
	WatchMode struct {
		Enabled bool `yaml:"enabled"` // Reload the catalog when the folder changes
	} `yaml:"watch_mode"`
	Settings struct {
		Debug bool `yaml:"debug"` // Enable debug logging
	} `yaml:"settings"`
}

// LoadConfig loads configuration from the default location
// (~/.config/glowframe/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "glowframe", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Slideshow.Folder != "" {
		cfg.Slideshow.Folder = tempCfg.Slideshow.Folder
	}
	if tempCfg.Slideshow.Pattern != "" {
		cfg.Slideshow.Pattern = tempCfg.Slideshow.Pattern
	}
	if tempCfg.Slideshow.Order != "" {
		cfg.Slideshow.Order = tempCfg.Slideshow.Order
	}
	if tempCfg.Slideshow.Direction != "" {
		cfg.Slideshow.Direction = tempCfg.Slideshow.Direction
	}
	cfg.Slideshow.Loop = tempCfg.Slideshow.Loop
	if tempCfg.Slideshow.Dwell > 0 {
		cfg.Slideshow.Dwell = tempCfg.Slideshow.Dwell
	}
	cfg.Slideshow.FadeEffect = tempCfg.Slideshow.FadeEffect
	cfg.Slideshow.AutoAdvance = tempCfg.Slideshow.AutoAdvance

	if tempCfg.Backlight.Device != "" {
		cfg.Backlight.Device = tempCfg.Backlight.Device
	}
	if tempCfg.Backlight.Level > 0 {
		cfg.Backlight.Level = tempCfg.Backlight.Level
	}
	if tempCfg.Backlight.Step > 0 {
		cfg.Backlight.Step = tempCfg.Backlight.Step
	}

	cfg.WatchMode.Enabled = tempCfg.WatchMode.Enabled
	cfg.Settings.Debug = tempCfg.Settings.Debug

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
// The defaults match the classic photo-frame behavior: shuffled playback,
// three second dwell, fading transitions, timer-driven advance.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Slideshow.Folder = "."
	cfg.Slideshow.Pattern = "*.bmp"
	cfg.Slideshow.Order = types.Random.String()
	cfg.Slideshow.Direction = types.Forward.String()
	cfg.Slideshow.Loop = true
	cfg.Slideshow.Dwell = 3
	cfg.Slideshow.FadeEffect = true
	cfg.Slideshow.AutoAdvance = true

	cfg.Backlight.Device = ""
	cfg.Backlight.Level = 1 << 15 // half of the 16-bit duty range
	cfg.Backlight.Step = 16

	cfg.WatchMode.Enabled = false
	cfg.Settings.Debug = false

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if _, err := types.ParseOrder(c.Slideshow.Order); err != nil {
		return fmt.Errorf("invalid order setting: %w", err)
	}

	if _, err := types.ParseDirection(c.Slideshow.Direction); err != nil {
		return fmt.Errorf("invalid direction setting: %w", err)
	}

	if c.Slideshow.Pattern == "" {
		return fmt.Errorf("image pattern is required")
	}

	if c.Slideshow.Dwell < 0 {
		return fmt.Errorf("dwell must be >= 0 seconds")
	}

	if c.Backlight.Level < 0 || c.Backlight.Level > 0xffff {
		return fmt.Errorf("backlight level must be within 0-65535")
	}

	if c.Backlight.Step < 1 {
		return fmt.Errorf("backlight step must be >= 1")
	}

	return nil
}

// Order returns the parsed playback order.
// Validate must have accepted the config first.
func (c *Config) Order() types.Order {
	o, _ := types.ParseOrder(c.Slideshow.Order)
	return o
}

// Direction returns the parsed traversal direction.
// Validate must have accepted the config first.
func (c *Config) Direction() types.Direction {
	d, _ := types.ParseDirection(c.Slideshow.Direction)
	return d
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Slideshow.Order = types.Alpha.String()
	cfg.Slideshow.Loop = false
	cfg.Slideshow.Dwell = 0
	cfg.Slideshow.FadeEffect = false
	return cfg
}
