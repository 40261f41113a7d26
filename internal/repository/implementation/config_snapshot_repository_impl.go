package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/mapper"
	"ratesignal-be/internal/model"
	"ratesignal-be/internal/repository/contract"
)

type ConfigSnapshotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConfigSnapshotMapper
}

func NewConfigSnapshotRepository(db *gorm.DB) contract.ConfigSnapshotRepository {
	return &ConfigSnapshotRepositoryImpl{
		db:     db,
		mapper: mapper.NewConfigSnapshotMapper(),
	}
}

func (r *ConfigSnapshotRepositoryImpl) Upsert(ctx context.Context, snapshot *entity.ConfigSnapshot) error {
	m := r.mapper.ToModel(snapshot)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "config_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "taken_at", "config"}),
	}).Create(m).Error
}

func (r *ConfigSnapshotRepositoryImpl) FindByConfigId(ctx context.Context, configId uuid.UUID) (*entity.ConfigSnapshot, error) {
	var m model.ConfigSnapshot
	if err := r.db.WithContext(ctx).Where("config_id = ?", configId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConfigSnapshotRepositoryImpl) Delete(ctx context.Context, configId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("config_id = ?", configId).Delete(&model.ConfigSnapshot{}).Error
}
