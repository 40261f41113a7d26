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
	"ratesignal-be/internal/pkg/mailer"
	"ratesignal-be/internal/repository/specification"
	"ratesignal-be/internal/repository/unitofwork"
	"ratesignal-be/pkg/events"
)

type IFeedbackService interface {
	List(ctx context.Context, req *dto.ListFeedbackRequest) ([]*dto.FeedbackResponse, error)
	// MarkRead transitions NEW -> READ. Absent ids and non-NEW records are no-ops.
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
	// ToggleFlag flips the orthogonal flag bit regardless of status.
	ToggleFlag(ctx context.Context, id uuid.UUID) error
	// Reply records the reply body and forces status REPLIED from any prior
	// status, overwriting an existing reply. Returns nil, nil for absent ids.
	Reply(ctx context.Context, id uuid.UUID, req *dto.ReplyRequest) (*dto.ReplyResponse, error)
	// Delete removes all matching records in one transaction; absent ids are no-ops.
	Delete(ctx context.Context, ids []uuid.UUID) error
}

type feedbackService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	emailService     mailer.IEmailService
	logger           logger.ILogger
	businessName     func(ctx context.Context) string
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IFeedbackService {
	svc := &feedbackService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		emailService:     emailService,
		logger:           log,
	}
	svc.businessName = svc.lookupBusinessName
	return svc
}

func (s *feedbackService) List(ctx context.Context, req *dto.ListFeedbackRequest) ([]*dto.FeedbackResponse, error) {
	specs := []specification.Specification{specification.NewestFirst{}}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: entity.FeedbackStatus(req.Status)})
	}
	if req.Flagged != nil {
		specs = append(specs, specification.ByFlagged{Flagged: *req.Flagged})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	feedbacks, err := uow.FeedbackRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("list feedback", err)
	}

	result := make([]*dto.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, toFeedbackResponse(f))
	}
	return result, nil
}

func (s *feedbackService) MarkRead(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	f, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperrors.NewStorageUnavailable("read feedback", err)
	}
	if f == nil || f.Status != entity.FeedbackStatusNew {
		// Missing id or already READ/REPLIED: nothing to do.
		return nil
	}

	f.Status = entity.FeedbackStatusRead
	if err := uow.FeedbackRepository().Update(ctx, f); err != nil {
		return apperrors.NewStorageUnavailable("update feedback", err)
	}

	s.publisherService.PublishStoreChanged(ctx, events.EntityFeedback, "mark_read", []string{id.String()})
	return nil
}

func (s *feedbackService) MarkAllRead(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return apperrors.NewStorageUnavailable("begin mark all read", err)
	}
	defer uow.Rollback()

	fresh, err := uow.FeedbackRepository().FindAll(ctx, specification.ByStatus{Status: entity.FeedbackStatusNew})
	if err != nil {
		return apperrors.NewStorageUnavailable("list unread feedback", err)
	}
	if len(fresh) == 0 {
		return nil
	}

	ids := make([]string, 0, len(fresh))
	for _, f := range fresh {
		f.Status = entity.FeedbackStatusRead
		if err := uow.FeedbackRepository().Update(ctx, f); err != nil {
			return apperrors.NewStorageUnavailable("update feedback", err)
		}
		ids = append(ids, f.Id.String())
	}

	if err := uow.Commit(); err != nil {
		return apperrors.NewStorageUnavailable("commit mark all read", err)
	}

	s.publisherService.PublishStoreChanged(ctx, events.EntityFeedback, "mark_all_read", ids)
	return nil
}

func (s *feedbackService) ToggleFlag(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	f, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperrors.NewStorageUnavailable("read feedback", err)
	}
	if f == nil {
		return nil
	}

	f.Flagged = !f.Flagged
	if err := uow.FeedbackRepository().Update(ctx, f); err != nil {
		return apperrors.NewStorageUnavailable("update feedback", err)
	}

	s.publisherService.PublishStoreChanged(ctx, events.EntityFeedback, "toggle_flag", []string{id.String()})
	return nil
}

func (s *feedbackService) Reply(ctx context.Context, id uuid.UUID, req *dto.ReplyRequest) (*dto.ReplyResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, apperrors.NewValidationError("body", "must not be empty")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	f, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("read feedback", err)
	}
	if f == nil {
		return nil, nil
	}

	f.Reply = &body
	f.Status = entity.FeedbackStatusReplied
	now := time.Now()
	f.UpdatedAt = &now

	if err := uow.FeedbackRepository().Update(ctx, f); err != nil {
		return nil, apperrors.NewStorageUnavailable("update feedback", err)
	}

	s.publisherService.PublishStoreChanged(ctx, events.EntityFeedback, "reply", []string{id.String()})

	warning := ""
	if f.CustomerEmail != "" && s.emailService.Configured() {
		if err := s.emailService.SendFeedbackReply(f.CustomerEmail, f.CustomerName, s.businessName(ctx), body); err != nil {
			warning = "reply saved but the notification email could not be sent"
			s.logger.Warn("Feedback", "Reply email failed", map[string]interface{}{
				"feedback_id": id.String(),
				"error":       err.Error(),
			})
		}
	}

	return &dto.ReplyResponse{
		Id:      f.Id,
		Status:  string(f.Status),
		Warning: warning,
	}, nil
}

func (s *feedbackService) Delete(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return apperrors.NewStorageUnavailable("begin delete feedback", err)
	}
	defer uow.Rollback()

	if err := uow.FeedbackRepository().DeleteByIds(ctx, ids); err != nil {
		return apperrors.NewStorageUnavailable("delete feedback", err)
	}

	if err := uow.Commit(); err != nil {
		return apperrors.NewStorageUnavailable("commit delete feedback", err)
	}

	deleted := make([]string, 0, len(ids))
	for _, id := range ids {
		deleted = append(deleted, id.String())
	}
	s.publisherService.PublishStoreChanged(ctx, events.EntityFeedback, "delete", deleted)
	return nil
}

func (s *feedbackService) lookupBusinessName(ctx context.Context) string {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cfg, err := uow.BusinessConfigRepository().FindFirst(ctx)
	if err != nil || cfg == nil {
		return "the business"
	}
	return cfg.Name
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		Id:            f.Id,
		RatingEventId: f.RatingEventId,
		Stars:         f.Stars,
		Text:          f.Text,
		Answers:       f.Answers,
		CustomerName:  f.CustomerName,
		CustomerEmail: f.CustomerEmail,
		Status:        string(f.Status),
		Flagged:       f.Flagged,
		Reply:         f.Reply,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
