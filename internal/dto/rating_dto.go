package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartSessionRequest struct {
	Slug string `json:"slug" validate:"required"`
	Src  string `json:"src"`
}

type StartSessionResponse struct {
	SessionId string                `json:"session_id"`
	State     string                `json:"state"`
	Business  *BusinessViewResponse `json:"business"`
}

type BusinessViewResponse struct {
	Name              string         `json:"name"`
	Slug              string         `json:"slug"`
	MinStarThreshold  int            `json:"min_star_threshold"`
	Theme             ThemeView      `json:"theme"`
	FeedbackQuestions []QuestionView `json:"feedback_questions"`
}

type ThemeView struct {
	Brand string `json:"brand"`
	Page  string `json:"page"`
	Admin string `json:"admin"`
	Card  string `json:"card"`
}

type QuestionView struct {
	Id      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Mode    string   `json:"mode"`
	Options []string `json:"options"`
}

type RateRequest struct {
	Stars int `json:"stars" validate:"required,min=1,max=5"`
}

type RateResponse struct {
	State       string `json:"state"`
	EventId     string `json:"event_id,omitempty"`
	RedirectUrl string `json:"redirect_url,omitempty"`
	Warning     string `json:"warning,omitempty"`
}

type UpdateStarsRequest struct {
	Stars int `json:"stars" validate:"required,min=1,max=5"`
}

type UpdateStarsResponse struct {
	State           string `json:"state"`
	RedirectUrl     string `json:"redirect_url,omitempty"`
	RedirectDelayMs int    `json:"redirect_delay_ms,omitempty"`
}

type SubmitFeedbackRequest struct {
	Text          string              `json:"text" validate:"required"`
	CustomerName  string              `json:"customer_name" validate:"required"`
	CustomerEmail string              `json:"customer_email" validate:"required,email"`
	Answers       map[string][]string `json:"answers"`
}

type SubmitFeedbackResponse struct {
	State      string `json:"state"`
	FeedbackId string `json:"feedback_id,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

type RatingEventResponse struct {
	Id            uuid.UUID `json:"id"`
	Stars         int       `json:"stars"`
	Source        string    `json:"source"`
	WasRedirected bool      `json:"was_redirected"`
	CreatedAt     time.Time `json:"created_at"`
}
