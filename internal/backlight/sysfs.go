// Package backlight provides backlight drivers implementing the playback
// Backlight interface.
package backlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// dutyMax is the top of the 16-bit duty range the engine works in
const dutyMax = 0xffff

// Sysfs drives a Linux backlight device through the kernel's
// /sys/class/backlight interface. The 16-bit duty the engine writes is
// scaled into the device's own max_brightness range.
type Sysfs struct {
	brightnessPath string
	max            int
}

// NewSysfs opens the backlight device named device under
// /sys/class/backlight.
func NewSysfs(device string) (*Sysfs, error) {
	return NewSysfsAt(filepath.Join("/sys/class/backlight", device))
}

// NewSysfsAt opens a backlight device at an explicit sysfs directory.
// Split out so tests can point at a fixture directory.
func NewSysfsAt(dir string) (*Sysfs, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "max_brightness"))
	if err != nil {
		return nil, fmt.Errorf("cannot read backlight max_brightness: %w", err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || max <= 0 {
		return nil, fmt.Errorf("invalid max_brightness value %q", strings.TrimSpace(string(raw)))
	}

	return &Sysfs{
		brightnessPath: filepath.Join(dir, "brightness"),
		max:            max,
	}, nil
}

// SetDuty writes the scaled brightness value to the device
func (s *Sysfs) SetDuty(duty uint16) error {
	value := int(duty) * s.max / dutyMax
	if err := os.WriteFile(s.brightnessPath, []byte(strconv.Itoa(value)), 0644); err != nil {
		return fmt.Errorf("cannot write brightness: %w", err)
	}
	return nil
}

// Max returns the device's native brightness range
func (s *Sysfs) Max() int {
	return s.max
}
