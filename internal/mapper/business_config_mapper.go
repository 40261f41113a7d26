package mapper

import (
	"encoding/json"
	"time"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/model"
)

type BusinessConfigMapper struct{}

func NewBusinessConfigMapper() *BusinessConfigMapper {
	return &BusinessConfigMapper{}
}

func (m *BusinessConfigMapper) ToEntity(c *model.BusinessConfig) *entity.BusinessConfig {
	if c == nil {
		return nil
	}

	var theme entity.Theme
	if len(c.Theme) > 0 {
		_ = json.Unmarshal(c.Theme, &theme)
	}

	entryPoints := make([]entity.EntryPoint, 0)
	if len(c.EntryPoints) > 0 {
		_ = json.Unmarshal(c.EntryPoints, &entryPoints)
	}

	questions := make([]entity.FeedbackQuestion, 0)
	if len(c.FeedbackQuestions) > 0 {
		_ = json.Unmarshal(c.FeedbackQuestions, &questions)
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.BusinessConfig{
		Id:                c.Id,
		Name:              c.Name,
		Slug:              c.Slug,
		MinStarThreshold:  c.MinStarThreshold,
		GooglePlaceUrl:    c.GooglePlaceUrl,
		RedirectUrl:       c.RedirectUrl,
		Theme:             theme,
		EntryPoints:       entryPoints,
		FeedbackQuestions: questions,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *BusinessConfigMapper) ToModel(c *entity.BusinessConfig) *model.BusinessConfig {
	if c == nil {
		return nil
	}

	theme, _ := json.Marshal(c.Theme)

	entryPoints := c.EntryPoints
	if entryPoints == nil {
		entryPoints = make([]entity.EntryPoint, 0)
	}
	rawEntryPoints, _ := json.Marshal(entryPoints)

	questions := c.FeedbackQuestions
	if questions == nil {
		questions = make([]entity.FeedbackQuestion, 0)
	}
	rawQuestions, _ := json.Marshal(questions)

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.BusinessConfig{
		Id:                c.Id,
		Name:              c.Name,
		Slug:              c.Slug,
		MinStarThreshold:  c.MinStarThreshold,
		GooglePlaceUrl:    c.GooglePlaceUrl,
		RedirectUrl:       c.RedirectUrl,
		Theme:             theme,
		EntryPoints:       rawEntryPoints,
		FeedbackQuestions: rawQuestions,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}
