package session

import "github.com/google/uuid"

// RatingSession is the in-memory state of one customer rating flow.
type RatingSession struct {
	ID         string    `json:"id"`
	ConfigId   uuid.UUID `json:"config_id"`
	Slug       string    `json:"slug"`
	Source     string    `json:"source"`
	State      string    `json:"state"` // RATING | FEEDBACK | REDIRECTING | THANKS
	Stars      int       `json:"stars"` // live star value, editable while in FEEDBACK
	EventId    uuid.UUID `json:"event_id"`
	Threshold  int       `json:"threshold"`
	PlaceUrl   string    `json:"place_url"`
	ExitUrl    string    `json:"exit_url"`
	// Offline marks a session served from the default dataset because the
	// store was unreachable when it was opened.
	Offline bool `json:"offline"`
}

const (
	StateRating      = "RATING"
	StateFeedback    = "FEEDBACK"
	StateRedirecting = "REDIRECTING"
	StateThanks      = "THANKS"
)

// Terminal reports whether the session can accept further transitions.
// REDIRECTING and THANKS are terminal; there is no path back to RATING.
func (s *RatingSession) Terminal() bool {
	return s.State == StateRedirecting || s.State == StateThanks
}
