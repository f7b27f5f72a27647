package types

// State is the current phase of the playback state machine.
// Exactly one state is active at a time.
type State int

const (
	// LoadImage pulls the next image from the catalog and presents it
	LoadImage State = iota
	// FadeIn ramps the backlight up to the target level
	FadeIn
	// ShowImage holds the image at full brightness for the dwell time
	ShowImage
	// Wait holds the image until an external advance request arrives.
	// Only reachable when auto-advance is disabled.
	Wait
	// FadeOut ramps the backlight down and removes the image
	FadeOut
)

func (s State) String() string {
	switch s {
	case LoadImage:
		return "load"
	case FadeIn:
		return "fade-in"
	case ShowImage:
		return "show"
	case Wait:
		return "wait"
	case FadeOut:
		return "fade-out"
	default:
		return "unknown"
	}
}
