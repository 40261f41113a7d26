package contract

import (
	"context"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/repository/specification"
)

type RatingEventRepository interface {
	Create(ctx context.Context, event *entity.RatingEvent) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RatingEvent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RatingEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
