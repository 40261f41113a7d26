package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"ratesignal-be/internal/entity"
	"ratesignal-be/internal/model"
	"ratesignal-be/internal/repository/specification"
	"ratesignal-be/internal/repository/unitofwork"
	"ratesignal-be/pkg/database"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.BusinessConfig{},
		&model.ConfigSnapshot{},
		&model.RatingEvent{},
		&model.Feedback{},
	)
	assert.NoError(t, err)

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.BusinessConfigRepository())
	assert.NotNil(t, uow.FeedbackRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Rating Event Repository", func(t *testing.T) {
		count, err := uow.RatingEventRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Rating event count: %d", count)
	})

	t.Run("Round Trip Rating Event", func(t *testing.T) {
		event := &entity.RatingEvent{
			Id:            uuid.New(),
			Stars:         2,
			Source:        "integration_test",
			WasRedirected: false,
			CreatedAt:     time.Now(),
		}
		err := uow.RatingEventRepository().Create(context.Background(), event)
		assert.NoError(t, err)

		found, err := uow.RatingEventRepository().FindOne(context.Background(), specification.ByID{ID: event.Id})
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, 2, found.Stars)
		assert.Equal(t, "integration_test", found.Source)
	})

	t.Run("Transactional Feedback Create", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		err := txUow.Begin(ctx)
		assert.NoError(t, err)
		defer txUow.Rollback()

		feedbackId := uuid.New()
		feedback := &entity.Feedback{
			Id:            feedbackId,
			RatingEventId: uuid.New(),
			Stars:         1,
			Text:          "Integration test feedback",
			Answers:       map[string][]string{"q-test": {"A"}},
			CustomerName:  "Integration Tester",
			CustomerEmail: "it@example.com",
			Status:        entity.FeedbackStatusNew,
			CreatedAt:     time.Now(),
		}

		err = txUow.FeedbackRepository().Create(ctx, feedback)
		assert.NoError(t, err)

		err = txUow.Commit()
		assert.NoError(t, err)

		found, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: feedbackId})
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, []string{"A"}, found.Answers["q-test"])

		// Cleanup
		err = uow.FeedbackRepository().DeleteByIds(ctx, []uuid.UUID{feedbackId})
		assert.NoError(t, err)

		t.Log("Successfully created Feedback in Transaction")
	})

	t.Run("Undo Slot Upsert Overwrites", func(t *testing.T) {
		ctx := context.Background()
		cfg := entity.DefaultBusinessConfig()
		cfg.Id = uuid.New()
		cfg.Slug = "integration-" + uuid.New().String()
		err := uow.BusinessConfigRepository().Create(ctx, cfg)
		assert.NoError(t, err)

		first := &entity.ConfigSnapshot{ConfigId: cfg.Id, Kind: entity.SnapshotKindUpdateConfig, TakenAt: time.Now(), Config: *cfg}
		assert.NoError(t, uow.ConfigSnapshotRepository().Upsert(ctx, first))

		second := &entity.ConfigSnapshot{ConfigId: cfg.Id, Kind: entity.SnapshotKindUpsertEntryPoint, TakenAt: time.Now(), Config: *cfg}
		assert.NoError(t, uow.ConfigSnapshotRepository().Upsert(ctx, second))

		found, err := uow.ConfigSnapshotRepository().FindByConfigId(ctx, cfg.Id)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		// Single slot: the second write replaced the first.
		assert.Equal(t, entity.SnapshotKindUpsertEntryPoint, found.Kind)

		assert.NoError(t, uow.ConfigSnapshotRepository().Delete(ctx, cfg.Id))
	})
}
