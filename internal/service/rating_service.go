package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ratesignal-be/internal/apperrors"
	"ratesignal-be/internal/dto"
	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/pkg/logger"
	"ratesignal-be/internal/repository/memory"
	"ratesignal-be/internal/repository/specification"
	"ratesignal-be/internal/repository/unitofwork"
	"ratesignal-be/pkg/events"
	"ratesignal-be/pkg/session"
)

type IRatingService interface {
	GetBusiness(ctx context.Context, slug string) (*dto.BusinessViewResponse, error)
	StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	Rate(ctx context.Context, sessionId string, req *dto.RateRequest) (*dto.RateResponse, error)
	UpdateStars(ctx context.Context, sessionId string, req *dto.UpdateStarsRequest) (*dto.UpdateStarsResponse, error)
	SubmitFeedback(ctx context.Context, sessionId string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
}

type ratingService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.RatingSessionRepository
	publisherService IPublisherService
	logger           logger.ILogger
	redirectGraceMs  int
}

func NewRatingService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.RatingSessionRepository,
	publisherService IPublisherService,
	log logger.ILogger,
	redirectGraceMs int,
) IRatingService {
	return &ratingService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		publisherService: publisherService,
		logger:           log,
		redirectGraceMs:  redirectGraceMs,
	}
}

// resolveConfig loads the config for a slug, falling back to the default
// dataset when storage is unreachable so the customer flow keeps working.
func (s *ratingService) resolveConfig(ctx context.Context, slug string) (*entity.BusinessConfig, bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cfg, err := uow.BusinessConfigRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		s.logger.Warn("Rating", "Config read failed, serving default dataset", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		fallback := entity.DefaultBusinessConfig()
		fallback.Slug = slug
		return fallback, true, nil
	}
	if cfg == nil {
		return nil, false, apperrors.NewNotFound("business", slug)
	}
	return cfg, false, nil
}

func (s *ratingService) GetBusiness(ctx context.Context, slug string) (*dto.BusinessViewResponse, error) {
	cfg, _, err := s.resolveConfig(ctx, slug)
	if err != nil {
		return nil, err
	}
	return toBusinessView(cfg), nil
}

func (s *ratingService) StartSession(ctx context.Context, req *dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	cfg, offline, err := s.resolveConfig(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	sess := &session.RatingSession{
		ID:        uuid.NewString(),
		ConfigId:  cfg.Id,
		Slug:      cfg.Slug,
		Source:    CanonicalizeSrc(req.Src),
		State:     session.StateRating,
		Threshold: cfg.MinStarThreshold,
		PlaceUrl:  cfg.GooglePlaceUrl,
		ExitUrl:   cfg.RedirectUrl,
		Offline:   offline,
	}
	s.sessions.Save(sess)

	return &dto.StartSessionResponse{
		SessionId: sess.ID,
		State:     sess.State,
		Business:  toBusinessView(cfg),
	}, nil
}

// routingTarget re-reads the live config so the routing decision always uses
// the threshold current at decision time, not the one cached when the session
// opened. The session's pinned values serve only as the offline fallback.
func (s *ratingService) routingTarget(ctx context.Context, sess *session.RatingSession) (int, string) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cfg, err := uow.BusinessConfigRepository().FindOne(ctx, specification.BySlug{Slug: sess.Slug})
	if err != nil {
		s.logger.Warn("Rating", "Config re-read failed, using session values", map[string]interface{}{
			"session": sess.ID,
			"error":   err.Error(),
		})
		return sess.Threshold, sess.PlaceUrl
	}
	if cfg == nil {
		// Business renamed or removed mid-session; keep the pinned values.
		return sess.Threshold, sess.PlaceUrl
	}

	sess.Threshold = cfg.MinStarThreshold
	sess.PlaceUrl = cfg.GooglePlaceUrl
	sess.ExitUrl = cfg.RedirectUrl
	return cfg.MinStarThreshold, cfg.GooglePlaceUrl
}

// Rate handles the first star tap: it records the immutable RatingEvent and
// decides redirect-vs-capture against the threshold live at decision time.
func (s *ratingService) Rate(ctx context.Context, sessionId string, req *dto.RateRequest) (*dto.RateResponse, error) {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil, apperrors.NewNotFound("rating session", sessionId)
	}
	if sess.State != session.StateRating {
		return nil, apperrors.NewValidationError("state", "rating already submitted for this session")
	}

	threshold, placeUrl := s.routingTarget(ctx, sess)
	redirected := req.Stars >= threshold

	event := &entity.RatingEvent{
		Id:            uuid.New(),
		Stars:         req.Stars,
		Source:        sess.Source,
		WasRedirected: redirected,
		CreatedAt:     time.Now(),
	}

	warning := ""
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RatingEventRepository().Create(ctx, event); err != nil {
		// Best-effort write: the routing decision is still served.
		warning = "rating could not be persisted and may be lost"
		s.logger.Warn("Rating", "Rating event write failed", map[string]interface{}{
			"session": sessionId,
			"error":   err.Error(),
		})
	} else {
		s.publisherService.PublishStoreChanged(ctx, events.EntityRatingEvent, "create", []string{event.Id.String()})
	}

	sess.Stars = req.Stars
	sess.EventId = event.Id

	if redirected {
		sess.State = session.StateRedirecting
		s.sessions.Save(sess)
		return &dto.RateResponse{
			State:       sess.State,
			EventId:     event.Id.String(),
			RedirectUrl: placeUrl,
			Warning:     warning,
		}, nil
	}

	sess.State = session.StateFeedback
	s.sessions.Save(sess)
	return &dto.RateResponse{
		State:   sess.State,
		EventId: event.Id.String(),
		Warning: warning,
	}, nil
}

// UpdateStars edits the live star value while the feedback form is open.
// Raising it to the threshold flips the session into REDIRECTING and tells
// the client to navigate after the grace delay; once signalled the redirect
// always fires, there is no cancellation. The original event stays untouched.
func (s *ratingService) UpdateStars(ctx context.Context, sessionId string, req *dto.UpdateStarsRequest) (*dto.UpdateStarsResponse, error) {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil, apperrors.NewNotFound("rating session", sessionId)
	}
	if sess.State != session.StateFeedback {
		return nil, apperrors.NewValidationError("state", "stars are only editable while the feedback form is open")
	}

	threshold, placeUrl := s.routingTarget(ctx, sess)
	sess.Stars = req.Stars

	if req.Stars >= threshold {
		sess.State = session.StateRedirecting
		s.sessions.Save(sess)
		return &dto.UpdateStarsResponse{
			State:           sess.State,
			RedirectUrl:     placeUrl,
			RedirectDelayMs: s.redirectGraceMs,
		}, nil
	}

	s.sessions.Save(sess)
	return &dto.UpdateStarsResponse{State: sess.State}, nil
}

func (s *ratingService) SubmitFeedback(ctx context.Context, sessionId string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	sess, found := s.sessions.Get(sessionId)
	if !found {
		return nil, apperrors.NewNotFound("rating session", sessionId)
	}
	if sess.State != session.StateFeedback {
		return nil, apperrors.NewValidationError("state", "feedback can only be submitted from the feedback form")
	}

	text := strings.TrimSpace(req.Text)
	name := strings.TrimSpace(req.CustomerName)
	email := strings.TrimSpace(req.CustomerEmail)
	if text == "" {
		return nil, apperrors.NewValidationError("text", "must not be empty")
	}
	if name == "" {
		return nil, apperrors.NewValidationError("customer_name", "must not be empty")
	}
	if email == "" {
		return nil, apperrors.NewValidationError("customer_email", "must not be empty")
	}

	feedback := &entity.Feedback{
		Id:            uuid.New(),
		RatingEventId: sess.EventId,
		Stars:         sess.Stars,
		Text:          text,
		Answers:       req.Answers,
		CustomerName:  name,
		CustomerEmail: email,
		Status:        entity.FeedbackStatusNew,
		Flagged:       false,
		CreatedAt:     time.Now(),
	}

	warning := ""
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FeedbackRepository().Create(ctx, feedback); err != nil {
		warning = "feedback could not be persisted and may be lost"
		s.logger.Warn("Rating", "Feedback write failed", map[string]interface{}{
			"session": sessionId,
			"error":   err.Error(),
		})
	} else {
		s.publisherService.PublishStoreChanged(ctx, events.EntityFeedback, "create", []string{feedback.Id.String()})
	}

	sess.State = session.StateThanks
	s.sessions.Save(sess)

	return &dto.SubmitFeedbackResponse{
		State:      sess.State,
		FeedbackId: feedback.Id.String(),
		Warning:    warning,
	}, nil
}

func toBusinessView(cfg *entity.BusinessConfig) *dto.BusinessViewResponse {
	questions := make([]dto.QuestionView, 0, len(cfg.FeedbackQuestions))
	for _, q := range cfg.FeedbackQuestions {
		questions = append(questions, dto.QuestionView{
			Id:      q.Id,
			Prompt:  q.Prompt,
			Mode:    q.Mode,
			Options: q.Options,
		})
	}

	return &dto.BusinessViewResponse{
		Name:             cfg.Name,
		Slug:             cfg.Slug,
		MinStarThreshold: cfg.MinStarThreshold,
		Theme: dto.ThemeView{
			Brand: cfg.Theme.Brand,
			Page:  cfg.Theme.Page,
			Admin: cfg.Theme.Admin,
			Card:  cfg.Theme.Card,
		},
		FeedbackQuestions: questions,
	}
}
