package backlight

// Null is a backlight that accepts duty writes and does nothing. Used when
// no backlight hardware is configured; it remembers the last duty so
// callers can inspect it.
type Null struct {
	duty uint16
}

// SetDuty records the duty and succeeds
func (n *Null) SetDuty(duty uint16) error {
	n.duty = duty
	return nil
}

// Duty returns the last duty written
func (n *Null) Duty() uint16 {
	return n.duty
}
