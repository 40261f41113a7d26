package service

import (
	"context"

	"ratesignal-be/internal/apperrors"
	"ratesignal-be/internal/dto"
	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/repository/specification"
	"ratesignal-be/internal/repository/unitofwork"
)

type IDashboardService interface {
	// ListEvents returns rating events newest first. Events are read-only:
	// they are never deleted through this surface.
	ListEvents(ctx context.Context) ([]*dto.RatingEventResponse, error)
	// Summary returns simple aggregate counts only.
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
	}
}

func (s *dashboardService) ListEvents(ctx context.Context) ([]*dto.RatingEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	eventsList, err := uow.RatingEventRepository().FindAll(ctx, specification.NewestFirst{})
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("list rating events", err)
	}

	result := make([]*dto.RatingEventResponse, 0, len(eventsList))
	for _, e := range eventsList {
		result = append(result, &dto.RatingEventResponse{
			Id:            e.Id,
			Stars:         e.Stars,
			Source:        e.Source,
			WasRedirected: e.WasRedirected,
			CreatedAt:     e.CreatedAt,
		})
	}
	return result, nil
}

func (s *dashboardService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	eventRepo := uow.RatingEventRepository()
	feedbackRepo := uow.FeedbackRepository()

	total, err := eventRepo.Count(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("count events", err)
	}

	redirected, err := eventRepo.Count(ctx, specification.ByRedirected{Redirected: true})
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("count redirected events", err)
	}

	byStatus := make(map[string]int64)
	for _, status := range []entity.FeedbackStatus{
		entity.FeedbackStatusNew,
		entity.FeedbackStatusRead,
		entity.FeedbackStatusReplied,
	} {
		count, err := feedbackRepo.Count(ctx, specification.ByStatus{Status: status})
		if err != nil {
			return nil, apperrors.NewStorageUnavailable("count feedback by status", err)
		}
		byStatus[string(status)] = count
	}

	flagged, err := feedbackRepo.Count(ctx, specification.ByFlagged{Flagged: true})
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("count flagged feedback", err)
	}

	allEvents, err := eventRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("list events for source counts", err)
	}
	bySource := make(map[string]int64)
	for _, e := range allEvents {
		bySource[e.Source]++
	}

	return &dto.SummaryResponse{
		TotalEvents:       total,
		RedirectedEvents:  redirected,
		InterceptedEvents: total - redirected,
		FeedbackByStatus:  byStatus,
		FlaggedFeedback:   flagged,
		EventsBySource:    bySource,
	}, nil
}
