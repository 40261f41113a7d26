package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"ratesignal-be/internal/apperrors"
	"ratesignal-be/internal/dto"
	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/pkg/logger"
	"ratesignal-be/internal/repository/unitofwork"
	"ratesignal-be/pkg/events"

	"github.com/google/uuid"
)

type IConfigService interface {
	// EnsureDefault seeds the documented default dataset when the store is empty.
	EnsureDefault(ctx context.Context) error
	GetConfig(ctx context.Context) (*dto.ConfigResponse, error)
	UpdateConfig(ctx context.Context, req *dto.UpdateConfigRequest) (*dto.ConfigResponse, error)
	UpsertEntryPoint(ctx context.Context, req *dto.UpsertEntryPointRequest) (*dto.ConfigResponse, error)
	DeleteEntryPoint(ctx context.Context, id string) (*dto.ConfigResponse, error)
	GetUndoSnapshot(ctx context.Context) (*dto.UndoSnapshotResponse, error)
	Undo(ctx context.Context) (*dto.ConfigResponse, error)
	ClearUndoSnapshot(ctx context.Context) error
}

type configService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
	clientURL        string
}

func NewConfigService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
	clientURL string,
) IConfigService {
	return &configService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
		clientURL:        clientURL,
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// CanonicalizeSrc trims the source tag and collapses whitespace runs into a
// single underscore, keeping it slug-safe for outbound links.
func CanonicalizeSrc(src string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(src), "_")
}

func (c *configService) EnsureDefault(ctx context.Context) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.BusinessConfigRepository().Count(ctx)
	if err != nil {
		return apperrors.NewStorageUnavailable("ensure default config", err)
	}
	if count > 0 {
		return nil
	}

	cfg := entity.DefaultBusinessConfig()
	if err := uow.BusinessConfigRepository().Create(ctx, cfg); err != nil {
		return apperrors.NewStorageUnavailable("seed default config", err)
	}

	c.logger.Info("Config", "Seeded default business config", map[string]interface{}{"slug": cfg.Slug})
	return nil
}

func (c *configService) GetConfig(ctx context.Context) (*dto.ConfigResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cfg, err := uow.BusinessConfigRepository().FindFirst(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("read config", err)
	}
	if cfg == nil {
		return nil, apperrors.NewNotFound("business config", "singleton")
	}

	return c.toConfigResponse(cfg), nil
}

// mutateConfig runs the shared config-mutation sequence inside one
// transaction: read the live config, write its pre-mutation value into the
// single undo slot (unconditional overwrite), apply the change, save.
// Rolling back on any error leaves both the config and the slot untouched.
func (c *configService) mutateConfig(ctx context.Context, kind string, apply func(cfg *entity.BusinessConfig) error) (*entity.BusinessConfig, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, apperrors.NewStorageUnavailable("begin config mutation", err)
	}
	defer uow.Rollback()

	cfg, err := uow.BusinessConfigRepository().FindFirst(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("read config", err)
	}
	if cfg == nil {
		return nil, apperrors.NewNotFound("business config", "singleton")
	}

	snapshot := &entity.ConfigSnapshot{
		ConfigId: cfg.Id,
		Kind:     kind,
		TakenAt:  time.Now(),
		Config:   *cfg,
	}
	if err := uow.ConfigSnapshotRepository().Upsert(ctx, snapshot); err != nil {
		return nil, apperrors.NewStorageUnavailable("write undo slot", err)
	}

	if err := apply(cfg); err != nil {
		return nil, err
	}

	now := time.Now()
	cfg.UpdatedAt = &now
	if err := uow.BusinessConfigRepository().Save(ctx, cfg); err != nil {
		return nil, apperrors.NewStorageUnavailable("save config", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, apperrors.NewStorageUnavailable("commit config mutation", err)
	}

	c.publisherService.PublishStoreChanged(ctx, events.EntityConfig, kind, []string{cfg.Id.String()})
	return cfg, nil
}

func (c *configService) UpdateConfig(ctx context.Context, req *dto.UpdateConfigRequest) (*dto.ConfigResponse, error) {
	cfg, err := c.mutateConfig(ctx, entity.SnapshotKindUpdateConfig, func(cfg *entity.BusinessConfig) error {
		cfg.Name = strings.TrimSpace(req.Name)
		cfg.Slug = strings.TrimSpace(req.Slug)
		cfg.MinStarThreshold = req.MinStarThreshold
		cfg.GooglePlaceUrl = req.GooglePlaceUrl
		cfg.RedirectUrl = req.RedirectUrl
		cfg.Theme = entity.Theme{
			Brand: req.Theme.Brand,
			Page:  req.Theme.Page,
			Admin: req.Theme.Admin,
			Card:  req.Theme.Card,
		}
		if req.FeedbackQuestions != nil {
			questions := make([]entity.FeedbackQuestion, 0, len(req.FeedbackQuestions))
			for _, q := range req.FeedbackQuestions {
				mode := q.Mode
				if mode != entity.SelectionSingle && mode != entity.SelectionMulti {
					return apperrors.NewValidationError("feedback_questions", fmt.Sprintf("unknown selection mode '%s'", q.Mode))
				}
				id := q.Id
				if id == "" {
					id = uuid.NewString()
				}
				questions = append(questions, entity.FeedbackQuestion{
					Id:      id,
					Prompt:  q.Prompt,
					Mode:    mode,
					Options: q.Options,
				})
			}
			cfg.FeedbackQuestions = questions
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.toConfigResponse(cfg), nil
}

func (c *configService) UpsertEntryPoint(ctx context.Context, req *dto.UpsertEntryPointRequest) (*dto.ConfigResponse, error) {
	label := strings.TrimSpace(req.Label)
	src := CanonicalizeSrc(req.Src)
	if label == "" {
		return nil, apperrors.NewValidationError("label", "must not be empty")
	}
	if src == "" {
		return nil, apperrors.NewValidationError("src", "must not be empty")
	}

	cfg, err := c.mutateConfig(ctx, entity.SnapshotKindUpsertEntryPoint, func(cfg *entity.BusinessConfig) error {
		ep := entity.EntryPoint{Id: req.Id, Label: label, Src: src}
		if ep.Id == "" {
			ep.Id = uuid.NewString()
		}

		for i := range cfg.EntryPoints {
			if cfg.EntryPoints[i].Id == ep.Id {
				// Replace in place, keeping the entry's position.
				cfg.EntryPoints[i] = ep
				return nil
			}
		}

		// New entries are prepended.
		cfg.EntryPoints = append([]entity.EntryPoint{ep}, cfg.EntryPoints...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.toConfigResponse(cfg), nil
}

func (c *configService) DeleteEntryPoint(ctx context.Context, id string) (*dto.ConfigResponse, error) {
	cfg, err := c.mutateConfig(ctx, entity.SnapshotKindDeleteEntryPoint, func(cfg *entity.BusinessConfig) error {
		kept := make([]entity.EntryPoint, 0, len(cfg.EntryPoints))
		for _, ep := range cfg.EntryPoints {
			if ep.Id != id {
				kept = append(kept, ep)
			}
		}
		// Absent ids are a no-op, not an error.
		cfg.EntryPoints = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.toConfigResponse(cfg), nil
}

func (c *configService) GetUndoSnapshot(ctx context.Context) (*dto.UndoSnapshotResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cfg, err := uow.BusinessConfigRepository().FindFirst(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("read config", err)
	}
	if cfg == nil {
		return nil, nil
	}

	snap, err := uow.ConfigSnapshotRepository().FindByConfigId(ctx, cfg.Id)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("read undo slot", err)
	}
	if snap == nil {
		return nil, nil
	}

	prior := snap.Config
	return &dto.UndoSnapshotResponse{
		Kind:    snap.Kind,
		TakenAt: snap.TakenAt,
		Config:  c.toConfigResponse(&prior),
	}, nil
}

// Undo replaces the live config with the slot's prior value through the
// normal mutation path, so the slot is rewritten with the pre-undo state.
// Applying undo twice therefore restores the state two steps back, not the
// original: single-step semantics.
func (c *configService) Undo(ctx context.Context) (*dto.ConfigResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	live, err := uow.BusinessConfigRepository().FindFirst(ctx)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("read config", err)
	}
	if live == nil {
		return nil, apperrors.NewNotFound("business config", "singleton")
	}

	snap, err := uow.ConfigSnapshotRepository().FindByConfigId(ctx, live.Id)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable("read undo slot", err)
	}
	if snap == nil {
		// Nothing to undo: no-op.
		return c.toConfigResponse(live), nil
	}

	prior := snap.Config
	cfg, err := c.mutateConfig(ctx, entity.SnapshotKindUndo, func(cfg *entity.BusinessConfig) error {
		*cfg = prior
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.toConfigResponse(cfg), nil
}

func (c *configService) ClearUndoSnapshot(ctx context.Context) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	cfg, err := uow.BusinessConfigRepository().FindFirst(ctx)
	if err != nil {
		return apperrors.NewStorageUnavailable("read config", err)
	}
	if cfg == nil {
		return nil
	}

	if err := uow.ConfigSnapshotRepository().Delete(ctx, cfg.Id); err != nil {
		return apperrors.NewStorageUnavailable("clear undo slot", err)
	}
	return nil
}

func (c *configService) toConfigResponse(cfg *entity.BusinessConfig) *dto.ConfigResponse {
	entryPoints := make([]dto.EntryPointView, 0, len(cfg.EntryPoints))
	for _, ep := range cfg.EntryPoints {
		entryPoints = append(entryPoints, dto.EntryPointView{
			Id:       ep.Id,
			Label:    ep.Label,
			Src:      ep.Src,
			ShareUrl: fmt.Sprintf("%s/r/%s?src=%s", c.clientURL, cfg.Slug, ep.Src),
		})
	}

	questions := make([]dto.QuestionView, 0, len(cfg.FeedbackQuestions))
	for _, q := range cfg.FeedbackQuestions {
		questions = append(questions, dto.QuestionView{
			Id:      q.Id,
			Prompt:  q.Prompt,
			Mode:    q.Mode,
			Options: q.Options,
		})
	}

	return &dto.ConfigResponse{
		Id:               cfg.Id,
		Name:             cfg.Name,
		Slug:             cfg.Slug,
		MinStarThreshold: cfg.MinStarThreshold,
		GooglePlaceUrl:   cfg.GooglePlaceUrl,
		RedirectUrl:      cfg.RedirectUrl,
		Theme: dto.ThemeView{
			Brand: cfg.Theme.Brand,
			Page:  cfg.Theme.Page,
			Admin: cfg.Theme.Admin,
			Card:  cfg.Theme.Card,
		},
		EntryPoints:       entryPoints,
		FeedbackQuestions: questions,
		UpdatedAt:         cfg.UpdatedAt,
	}
}
