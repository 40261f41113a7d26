package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/repository/contract"
	"ratesignal-be/internal/repository/specification"
	"ratesignal-be/internal/repository/unitofwork"
)

// In-memory doubles for the repository layer. Specifications are interpreted
// by type-switching on the same structs the GORM implementations translate.

type fakeStore struct {
	mu sync.Mutex

	configs   []*entity.BusinessConfig
	snapshots map[uuid.UUID]*entity.ConfigSnapshot
	events    []*entity.RatingEvent
	feedbacks []*entity.Feedback

	// Error injection
	failConfigRead    error
	failConfigWrite   error
	failEventWrite    error
	failFeedbackRead  error
	failFeedbackWrite error
	failSnapshot      error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		snapshots: make(map[uuid.UUID]*entity.ConfigSnapshot),
	}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) BusinessConfigRepository() contract.BusinessConfigRepository {
	return &fakeBusinessConfigRepository{store: u.store}
}

func (u *fakeUnitOfWork) ConfigSnapshotRepository() contract.ConfigSnapshotRepository {
	return &fakeConfigSnapshotRepository{store: u.store}
}

func (u *fakeUnitOfWork) RatingEventRepository() contract.RatingEventRepository {
	return &fakeRatingEventRepository{store: u.store}
}

func (u *fakeUnitOfWork) FeedbackRepository() contract.FeedbackRepository {
	return &fakeFeedbackRepository{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type fakeBusinessConfigRepository struct {
	store *fakeStore
}

func (r *fakeBusinessConfigRepository) Create(ctx context.Context, cfg *entity.BusinessConfig) error {
	if r.store.failConfigWrite != nil {
		return r.store.failConfigWrite
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *cfg
	r.store.configs = append(r.store.configs, &clone)
	return nil
}

func (r *fakeBusinessConfigRepository) Save(ctx context.Context, cfg *entity.BusinessConfig) error {
	if r.store.failConfigWrite != nil {
		return r.store.failConfigWrite
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *cfg
	for i, existing := range r.store.configs {
		if existing.Id == cfg.Id {
			r.store.configs[i] = &clone
			return nil
		}
	}
	r.store.configs = append(r.store.configs, &clone)
	return nil
}

func (r *fakeBusinessConfigRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessConfig, error) {
	if r.store.failConfigRead != nil {
		return nil, r.store.failConfigRead
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, cfg := range r.store.configs {
		if matchConfig(cfg, specs) {
			clone := *cfg
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBusinessConfigRepository) FindFirst(ctx context.Context) (*entity.BusinessConfig, error) {
	if r.store.failConfigRead != nil {
		return nil, r.store.failConfigRead
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if len(r.store.configs) == 0 {
		return nil, nil
	}
	clone := *r.store.configs[0]
	return &clone, nil
}

func (r *fakeBusinessConfigRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if r.store.failConfigRead != nil {
		return 0, r.store.failConfigRead
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, cfg := range r.store.configs {
		if matchConfig(cfg, specs) {
			n++
		}
	}
	return n, nil
}

func matchConfig(cfg *entity.BusinessConfig, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySlug:
			if cfg.Slug != s.Slug {
				return false
			}
		case specification.ByID:
			if cfg.Id != s.ID {
				return false
			}
		}
	}
	return true
}

type fakeConfigSnapshotRepository struct {
	store *fakeStore
}

func (r *fakeConfigSnapshotRepository) Upsert(ctx context.Context, snap *entity.ConfigSnapshot) error {
	if r.store.failSnapshot != nil {
		return r.store.failSnapshot
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *snap
	r.store.snapshots[snap.ConfigId] = &clone
	return nil
}

func (r *fakeConfigSnapshotRepository) FindByConfigId(ctx context.Context, configId uuid.UUID) (*entity.ConfigSnapshot, error) {
	if r.store.failSnapshot != nil {
		return nil, r.store.failSnapshot
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snap, ok := r.store.snapshots[configId]
	if !ok {
		return nil, nil
	}
	clone := *snap
	return &clone, nil
}

func (r *fakeConfigSnapshotRepository) Delete(ctx context.Context, configId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.snapshots, configId)
	return nil
}

type fakeRatingEventRepository struct {
	store *fakeStore
}

func (r *fakeRatingEventRepository) Create(ctx context.Context, event *entity.RatingEvent) error {
	if r.store.failEventWrite != nil {
		return r.store.failEventWrite
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *event
	r.store.events = append(r.store.events, &clone)
	return nil
}

func (r *fakeRatingEventRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RatingEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.events {
		if matchEvent(e, specs) {
			clone := *e
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRatingEventRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RatingEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.RatingEvent
	for _, e := range r.store.events {
		if matchEvent(e, specs) {
			clone := *e
			result = append(result, &clone)
		}
	}
	if hasNewestFirst(specs) {
		sort.Slice(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result, nil
}

func (r *fakeRatingEventRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func matchEvent(e *entity.RatingEvent, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySource:
			if e.Source != s.Source {
				return false
			}
		case specification.ByRedirected:
			if e.WasRedirected != s.Redirected {
				return false
			}
		case specification.ByID:
			if e.Id != s.ID {
				return false
			}
		}
	}
	return true
}

type fakeFeedbackRepository struct {
	store *fakeStore
}

func (r *fakeFeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	if r.store.failFeedbackWrite != nil {
		return r.store.failFeedbackWrite
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	clone := *f
	r.store.feedbacks = append(r.store.feedbacks, &clone)
	return nil
}

func (r *fakeFeedbackRepository) Update(ctx context.Context, f *entity.Feedback) error {
	if r.store.failFeedbackWrite != nil {
		return r.store.failFeedbackWrite
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, existing := range r.store.feedbacks {
		if existing.Id == f.Id {
			clone := *f
			r.store.feedbacks[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeFeedbackRepository) DeleteByIds(ctx context.Context, ids []uuid.UUID) error {
	if r.store.failFeedbackWrite != nil {
		return r.store.failFeedbackWrite
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := r.store.feedbacks[:0]
	for _, f := range r.store.feedbacks {
		if !drop[f.Id] {
			kept = append(kept, f)
		}
	}
	r.store.feedbacks = kept
	return nil
}

func (r *fakeFeedbackRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	if r.store.failFeedbackRead != nil {
		return nil, r.store.failFeedbackRead
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, f := range r.store.feedbacks {
		if matchFeedback(f, specs) {
			clone := *f
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeFeedbackRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	if r.store.failFeedbackRead != nil {
		return nil, r.store.failFeedbackRead
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Feedback
	for _, f := range r.store.feedbacks {
		if matchFeedback(f, specs) {
			clone := *f
			result = append(result, &clone)
		}
	}
	if hasNewestFirst(specs) {
		sort.Slice(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result, nil
}

func (r *fakeFeedbackRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func matchFeedback(f *entity.Feedback, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if f.Id != s.ID {
				return false
			}
		case specification.ByStatus:
			if f.Status != s.Status {
				return false
			}
		case specification.ByFlagged:
			if f.Flagged != s.Flagged {
				return false
			}
		}
	}
	return true
}

func hasNewestFirst(specs []specification.Specification) bool {
	for _, spec := range specs {
		if _, ok := spec.(specification.NewestFirst); ok {
			return true
		}
	}
	return false
}

// recordingPublisher captures change notifications instead of publishing.
type recordingPublisher struct {
	mu    sync.Mutex
	calls []publishCall
}

type publishCall struct {
	Entity string
	Op     string
	Ids    []string
}

func (p *recordingPublisher) PublishStoreChanged(ctx context.Context, entityName, op string, ids []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, publishCall{Entity: entityName, Op: op, Ids: ids})
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

// fakeEmailService records outgoing reply mails.
type fakeEmailService struct {
	configured bool
	sendErr    error
	sent       []string
}

func (s *fakeEmailService) Configured() bool { return s.configured }

func (s *fakeEmailService) SendFeedbackReply(toEmail, customerName, businessName, replyBody string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, toEmail)
	return nil
}
