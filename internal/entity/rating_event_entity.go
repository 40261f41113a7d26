package entity

import (
	"time"

	"github.com/google/uuid"
)

// RatingEvent is immutable once created and never deleted through the
// modeled surface.
type RatingEvent struct {
	Id            uuid.UUID
	Stars         int
	Source        string
	WasRedirected bool
	CreatedAt     time.Time
}
