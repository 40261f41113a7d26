package mapper

import (
	"encoding/json"
	"time"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/model"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}

	answers := make(map[string][]string)
	if len(f.Answers) > 0 {
		// Malformed rows degrade to empty answers rather than failing the read.
		_ = json.Unmarshal(f.Answers, &answers)
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.Feedback{
		Id:            f.Id,
		RatingEventId: f.RatingEventId,
		Stars:         f.Stars,
		Text:          f.Text,
		Answers:       answers,
		CustomerName:  f.CustomerName,
		CustomerEmail: f.CustomerEmail,
		Status:        entity.FeedbackStatus(f.Status),
		Flagged:       f.Flagged,
		Reply:         f.Reply,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}

	answers := f.Answers
	if answers == nil {
		answers = make(map[string][]string)
	}
	raw, _ := json.Marshal(answers)

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.Feedback{
		Id:            f.Id,
		RatingEventId: f.RatingEventId,
		Stars:         f.Stars,
		Text:          f.Text,
		Answers:       raw,
		CustomerName:  f.CustomerName,
		CustomerEmail: f.CustomerEmail,
		Status:        string(f.Status),
		Flagged:       f.Flagged,
		Reply:         f.Reply,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *FeedbackMapper) ToEntities(feedbacks []*model.Feedback) []*entity.Feedback {
	entities := make([]*entity.Feedback, len(feedbacks))
	for i, f := range feedbacks {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
