package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackStatus string

const (
	FeedbackStatusNew     FeedbackStatus = "NEW"
	FeedbackStatusRead    FeedbackStatus = "READ"
	FeedbackStatusReplied FeedbackStatus = "REPLIED"
)

// Feedback is an intercepted sub-threshold rating captured as structured
// internal feedback. Stars may diverge from the originating event if the
// customer changed the rating inside the form before submitting.
// Invariant: Reply is set if and only if Status is REPLIED.
type Feedback struct {
	Id            uuid.UUID
	RatingEventId uuid.UUID
	Stars         int
	Text          string
	Answers       map[string][]string
	CustomerName  string
	CustomerEmail string
	Status        FeedbackStatus
	Flagged       bool
	Reply         *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
