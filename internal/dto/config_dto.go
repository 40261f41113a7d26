package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateConfigRequest struct {
	Name              string         `json:"name" validate:"required"`
	Slug              string         `json:"slug" validate:"required"`
	MinStarThreshold  int            `json:"min_star_threshold" validate:"required,min=1,max=5"`
	GooglePlaceUrl    string         `json:"google_place_url" validate:"required,url"`
	RedirectUrl       string         `json:"redirect_url" validate:"omitempty,url"`
	Theme             ThemeView      `json:"theme"`
	FeedbackQuestions []QuestionView `json:"feedback_questions"`
}

type ConfigResponse struct {
	Id                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	Slug              string           `json:"slug"`
	MinStarThreshold  int              `json:"min_star_threshold"`
	GooglePlaceUrl    string           `json:"google_place_url"`
	RedirectUrl       string           `json:"redirect_url"`
	Theme             ThemeView        `json:"theme"`
	EntryPoints       []EntryPointView `json:"entry_points"`
	FeedbackQuestions []QuestionView   `json:"feedback_questions"`
	UpdatedAt         *time.Time       `json:"updated_at,omitempty"`
}

type EntryPointView struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Src   string `json:"src"`
	// ShareUrl is the composed customer link for this entry point.
	ShareUrl string `json:"share_url,omitempty"`
}

type UpsertEntryPointRequest struct {
	Id    string `json:"id"`
	Label string `json:"label" validate:"required"`
	Src   string `json:"src" validate:"required"`
}

type UndoSnapshotResponse struct {
	Kind    string          `json:"kind"`
	TakenAt time.Time       `json:"taken_at"`
	Config  *ConfigResponse `json:"config"`
}
