package unitofwork

import (
	"context"

	"ratesignal-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BusinessConfigRepository() contract.BusinessConfigRepository
	ConfigSnapshotRepository() contract.ConfigSnapshotRepository
	RatingEventRepository() contract.RatingEventRepository
	FeedbackRepository() contract.FeedbackRepository
}
