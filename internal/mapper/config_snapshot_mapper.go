package mapper

import (
	"encoding/json"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/model"
)

type ConfigSnapshotMapper struct{}

func NewConfigSnapshotMapper() *ConfigSnapshotMapper {
	return &ConfigSnapshotMapper{}
}

func (m *ConfigSnapshotMapper) ToEntity(s *model.ConfigSnapshot) *entity.ConfigSnapshot {
	if s == nil {
		return nil
	}

	var cfg entity.BusinessConfig
	if len(s.Config) > 0 {
		_ = json.Unmarshal(s.Config, &cfg)
	}

	return &entity.ConfigSnapshot{
		ConfigId: s.ConfigId,
		Kind:     s.Kind,
		TakenAt:  s.TakenAt,
		Config:   cfg,
	}
}

func (m *ConfigSnapshotMapper) ToModel(s *entity.ConfigSnapshot) *model.ConfigSnapshot {
	if s == nil {
		return nil
	}

	raw, _ := json.Marshal(s.Config)

	return &model.ConfigSnapshot{
		ConfigId: s.ConfigId,
		Kind:     s.Kind,
		TakenAt:  s.TakenAt,
		Config:   raw,
	}
}
