package contract

import (
	"context"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/repository/specification"
)

type BusinessConfigRepository interface {
	Create(ctx context.Context, config *entity.BusinessConfig) error
	// Save unconditionally replaces all fields of the row.
	Save(ctx context.Context, config *entity.BusinessConfig) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BusinessConfig, error)
	// FindFirst returns the singleton deployment config, nil when unseeded.
	FindFirst(ctx context.Context) (*entity.BusinessConfig, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
