package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/mapper"
	"ratesignal-be/internal/model"
	"ratesignal-be/internal/repository/contract"
	"ratesignal-be/internal/repository/specification"
)

type RatingEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RatingEventMapper
}

func NewRatingEventRepository(db *gorm.DB) contract.RatingEventRepository {
	return &RatingEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewRatingEventMapper(),
	}
}

func (r *RatingEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RatingEventRepositoryImpl) Create(ctx context.Context, event *entity.RatingEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *RatingEventRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RatingEvent, error) {
	var m model.RatingEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RatingEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RatingEvent, error) {
	var models []*model.RatingEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RatingEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RatingEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
