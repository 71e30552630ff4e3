package state

import "github.com/google/uuid"

// newStrokeID returns a fresh random identifier for a stroke.
func newStrokeID() string {
	return uuid.NewString()
}
