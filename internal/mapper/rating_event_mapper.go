package mapper

import (
	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/model"
)

type RatingEventMapper struct{}

func NewRatingEventMapper() *RatingEventMapper {
	return &RatingEventMapper{}
}

func (m *RatingEventMapper) ToEntity(e *model.RatingEvent) *entity.RatingEvent {
	if e == nil {
		return nil
	}
	return &entity.RatingEvent{
		Id:            e.Id,
		Stars:         e.Stars,
		Source:        e.Source,
		WasRedirected: e.WasRedirected,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *RatingEventMapper) ToModel(e *entity.RatingEvent) *model.RatingEvent {
	if e == nil {
		return nil
	}
	return &model.RatingEvent{
		Id:            e.Id,
		Stars:         e.Stars,
		Source:        e.Source,
		WasRedirected: e.WasRedirected,
		CreatedAt:     e.CreatedAt,
	}
}

func (m *RatingEventMapper) ToEntities(events []*model.RatingEvent) []*entity.RatingEvent {
	entities := make([]*entity.RatingEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
