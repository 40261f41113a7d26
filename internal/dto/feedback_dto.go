package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListFeedbackRequest struct {
	Status  string `query:"status"`
	Flagged *bool  `query:"flagged"`
}

type FeedbackResponse struct {
	Id            uuid.UUID           `json:"id"`
	RatingEventId uuid.UUID           `json:"rating_event_id"`
	Stars         int                 `json:"stars"`
	Text          string              `json:"text"`
	Answers       map[string][]string `json:"answers"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail string              `json:"customer_email"`
	Status        string              `json:"status"`
	Flagged       bool                `json:"flagged"`
	Reply         *string             `json:"reply,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     *time.Time          `json:"updated_at,omitempty"`
}

type ReplyRequest struct {
	Body string `json:"body" validate:"required"`
}

type ReplyResponse struct {
	Id      uuid.UUID `json:"id"`
	Status  string    `json:"status"`
	Warning string    `json:"warning,omitempty"`
}

type DeleteFeedbackRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type SummaryResponse struct {
	TotalEvents       int64            `json:"total_events"`
	RedirectedEvents  int64            `json:"redirected_events"`
	InterceptedEvents int64            `json:"intercepted_events"`
	FeedbackByStatus  map[string]int64 `json:"feedback_by_status"`
	FlaggedFeedback   int64            `json:"flagged_feedback"`
	EventsBySource    map[string]int64 `json:"events_by_source"`
}
