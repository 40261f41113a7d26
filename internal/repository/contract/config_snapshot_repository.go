package contract

import (
	"context"

	"github.com/google/uuid"

	"ratesignal-be/internal/entity"
)

type ConfigSnapshotRepository interface {
	// Upsert overwrites the single slot for the config unconditionally.
	Upsert(ctx context.Context, snapshot *entity.ConfigSnapshot) error
	FindByConfigId(ctx context.Context, configId uuid.UUID) (*entity.ConfigSnapshot, error)
	Delete(ctx context.Context, configId uuid.UUID) error
}
