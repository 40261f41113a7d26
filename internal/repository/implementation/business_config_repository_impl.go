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

type BusinessConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BusinessConfigMapper
}

func NewBusinessConfigRepository(db *gorm.DB) contract.BusinessConfigRepository {
	return &BusinessConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewBusinessConfigMapper(),
	}
}

func (r *BusinessConfigRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BusinessConfigRepositoryImpl) Create(ctx context.Context, config *entity.BusinessConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *BusinessConfigRepositoryImpl) Save(ctx context.Context, config *entity.BusinessConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *BusinessConfigRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessConfig, error) {
	var m model.BusinessConfig
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BusinessConfigRepositoryImpl) FindFirst(ctx context.Context) (*entity.BusinessConfig, error) {
	var m model.BusinessConfig
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BusinessConfigRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.BusinessConfig{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
