package catalog

import (
	"glowframe/internal/errors"
	"glowframe/pkg/types"
)

// Cursor is a cyclic traversal position over a Catalog: an explicit index
// plus direction plus done flag, so the walk is inspectable without any
// hidden iterator state.
//
// The cursor starts one-before-the-first element (Forward) or one-past-the
// last (Backward), so the first call to Next always yields the first or
// last image without counting as a wrap. When looping is disabled, the
// first wrap event ends the traversal: every image is yielded exactly once
// per pass, then Next fails with ErrExhausted.
type Cursor struct {
	catalog   *Catalog
	direction types.Direction
	loop      bool
	index     int
	done      bool
}

// NewCursor creates a cursor over c starting just outside the catalog in
// the given direction.
func NewCursor(c *Catalog, direction types.Direction, loop bool) *Cursor {
	cur := &Cursor{
		catalog:   c,
		direction: direction,
		loop:      loop,
	}
	cur.Rewind()
	return cur
}

// Rewind resets the traversal to its starting position and clears the done
// flag. Used after catalog rebuilds.
func (cur *Cursor) Rewind() {
	cur.done = false
	if cur.direction == types.Backward {
		cur.index = cur.catalog.Len()
	} else {
		cur.index = -1
	}
}

// SetDirection changes the traversal direction. Takes effect on the next
// call to Next; already-shown images are not replayed.
func (cur *Cursor) SetDirection(direction types.Direction) error {
	if !direction.Valid() {
		return errors.NewConfigError("invalid direction", direction.String(), errors.InvalidDirection, nil)
	}
	cur.direction = direction
	return nil
}

// Direction returns the current traversal direction
func (cur *Cursor) Direction() types.Direction {
	return cur.direction
}

// SetLoop changes the loop policy. Takes effect at the next wrap event.
func (cur *Cursor) SetLoop(loop bool) {
	cur.loop = loop
}

// Loop returns whether the traversal restarts after a full pass
func (cur *Cursor) Loop() bool {
	return cur.loop
}

// Index returns the current position in the catalog
func (cur *Cursor) Index() int {
	return cur.index
}

// Next returns the next image name in the configured direction. Advancing
// past either end wraps to the opposite end; with looping disabled a wrap
// event terminates the traversal and Next returns ErrExhausted, as does
// every call after that. An empty catalog is exhausted immediately.
func (cur *Cursor) Next() (string, error) {
	if cur.done {
		return "", errors.ErrExhausted
	}

	n := cur.catalog.Len()
	if n == 0 {
		cur.done = true
		return "", errors.ErrExhausted
	}

	index := cur.index + cur.direction.Step()
	wrapped := false
	if index >= n {
		index = 0
		wrapped = true
	} else if index < 0 {
		index = n - 1
		wrapped = true
	}

	if wrapped && !cur.loop {
		cur.done = true
		return "", errors.ErrExhausted
	}

	cur.index = index
	return cur.catalog.entries[index], nil
}
