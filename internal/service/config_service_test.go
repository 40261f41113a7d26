package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ratesignal-be/internal/apperrors"
	"ratesignal-be/internal/dto"
	"ratesignal-be/internal/entity"
)

func newConfigServiceForTest(store *fakeStore) (IConfigService, *recordingPublisher) {
	publisher := &recordingPublisher{}
	svc := NewConfigService(&fakeFactory{store: store}, publisher, noopLogger{}, "http://localhost:5173")
	return svc, publisher
}

func seedConfig(store *fakeStore) *entity.BusinessConfig {
	cfg := entity.DefaultBusinessConfig()
	clone := *cfg
	store.configs = append(store.configs, &clone)
	return cfg
}

func TestCanonicalizeSrc(t *testing.T) {
	assert.Equal(t, "counter_qr", CanonicalizeSrc("  counter qr  "))
	assert.Equal(t, "front_desk_sign", CanonicalizeSrc("front  desk\tsign"))
	assert.Equal(t, "receipt", CanonicalizeSrc("receipt"))
	assert.Equal(t, "", CanonicalizeSrc("   "))
}

func TestEnsureDefaultSeedsOnlyWhenEmpty(t *testing.T) {
	store := newFakeStore()
	svc, _ := newConfigServiceForTest(store)

	err := svc.EnsureDefault(context.Background())
	assert.NoError(t, err)
	assert.Len(t, store.configs, 1)
	assert.Equal(t, "demo-coffee", store.configs[0].Slug)

	// Second call must not duplicate the seed.
	err = svc.EnsureDefault(context.Background())
	assert.NoError(t, err)
	assert.Len(t, store.configs, 1)
}

func TestUpdateConfigWritesUndoSlot(t *testing.T) {
	store := newFakeStore()
	seeded := seedConfig(store)
	svc, publisher := newConfigServiceForTest(store)

	req := &dto.UpdateConfigRequest{
		Name:             "Renamed Roasters",
		Slug:             "renamed",
		MinStarThreshold: 3,
		GooglePlaceUrl:   seeded.GooglePlaceUrl,
		RedirectUrl:      seeded.RedirectUrl,
	}
	res, err := svc.UpdateConfig(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Roasters", res.Name)
	assert.Equal(t, 3, res.MinStarThreshold)

	// The slot holds the pre-mutation value.
	snap, err := svc.GetUndoSnapshot(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Equal(t, entity.SnapshotKindUpdateConfig, snap.Kind)
	assert.Equal(t, seeded.Name, snap.Config.Name)
	assert.Equal(t, seeded.MinStarThreshold, snap.Config.MinStarThreshold)

	assert.Len(t, publisher.calls, 1)
	assert.Equal(t, "update_config", publisher.calls[0].Op)
}

func TestUpdateConfigRejectsUnknownQuestionMode(t *testing.T) {
	store := newFakeStore()
	seeded := seedConfig(store)
	svc, publisher := newConfigServiceForTest(store)

	req := &dto.UpdateConfigRequest{
		Name:             seeded.Name,
		Slug:             seeded.Slug,
		MinStarThreshold: seeded.MinStarThreshold,
		GooglePlaceUrl:   seeded.GooglePlaceUrl,
		FeedbackQuestions: []dto.QuestionView{
			{Prompt: "Pick one", Mode: "radio", Options: []string{"A", "B"}},
		},
	}
	_, err := svc.UpdateConfig(context.Background(), req)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, publisher.calls)
}

func TestUndoSingleSlot(t *testing.T) {
	store := newFakeStore()
	seeded := seedConfig(store)
	svc, _ := newConfigServiceForTest(store)

	update := func(name string) {
		_, err := svc.UpdateConfig(context.Background(), &dto.UpdateConfigRequest{
			Name:             name,
			Slug:             seeded.Slug,
			MinStarThreshold: seeded.MinStarThreshold,
			GooglePlaceUrl:   seeded.GooglePlaceUrl,
		})
		assert.NoError(t, err)
	}

	update("State B")

	// First undo restores the seeded name.
	res, err := svc.Undo(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, seeded.Name, res.Name)

	// Undo rewrote the slot with the pre-undo state, so a second undo
	// brings State B back rather than stepping further into history.
	res, err = svc.Undo(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "State B", res.Name)
}

func TestUndoWithEmptySlotIsNoop(t *testing.T) {
	store := newFakeStore()
	seeded := seedConfig(store)
	svc, publisher := newConfigServiceForTest(store)

	res, err := svc.Undo(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, seeded.Name, res.Name)
	assert.Empty(t, publisher.calls)
}

func TestClearUndoSnapshot(t *testing.T) {
	store := newFakeStore()
	seeded := seedConfig(store)
	svc, _ := newConfigServiceForTest(store)

	_, err := svc.UpdateConfig(context.Background(), &dto.UpdateConfigRequest{
		Name:             "Changed",
		Slug:             seeded.Slug,
		MinStarThreshold: seeded.MinStarThreshold,
		GooglePlaceUrl:   seeded.GooglePlaceUrl,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.ClearUndoSnapshot(context.Background()))

	snap, err := svc.GetUndoSnapshot(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestUpsertEntryPointReplacesInPlace(t *testing.T) {
	store := newFakeStore()
	seedConfig(store)
	svc, _ := newConfigServiceForTest(store)

	// Add a second entry so position is observable.
	res, err := svc.UpsertEntryPoint(context.Background(), &dto.UpsertEntryPointRequest{
		Label: "Receipt link",
		Src:   "receipt",
	})
	assert.NoError(t, err)
	assert.Len(t, res.EntryPoints, 2)
	// New entries are prepended.
	assert.Equal(t, "receipt", res.EntryPoints[0].Src)
	assert.Equal(t, "counter_qr", res.EntryPoints[1].Src)

	// Editing the seeded entry keeps it in second position.
	res, err = svc.UpsertEntryPoint(context.Background(), &dto.UpsertEntryPointRequest{
		Id:    "ep-counter",
		Label: "Till QR sticker",
		Src:   "counter qr",
	})
	assert.NoError(t, err)
	assert.Len(t, res.EntryPoints, 2)
	assert.Equal(t, "ep-counter", res.EntryPoints[1].Id)
	assert.Equal(t, "Till QR sticker", res.EntryPoints[1].Label)
	assert.Equal(t, "counter_qr", res.EntryPoints[1].Src)
}

func TestUpsertEntryPointValidation(t *testing.T) {
	store := newFakeStore()
	seedConfig(store)
	svc, _ := newConfigServiceForTest(store)

	_, err := svc.UpsertEntryPoint(context.Background(), &dto.UpsertEntryPointRequest{Label: "  ", Src: "x"})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.UpsertEntryPoint(context.Background(), &dto.UpsertEntryPointRequest{Label: "x", Src: "   "})
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteEntryPointAbsentIdIsNoop(t *testing.T) {
	store := newFakeStore()
	seedConfig(store)
	svc, _ := newConfigServiceForTest(store)

	res, err := svc.DeleteEntryPoint(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Len(t, res.EntryPoints, 1)

	res, err = svc.DeleteEntryPoint(context.Background(), "ep-counter")
	assert.NoError(t, err)
	assert.Empty(t, res.EntryPoints)
}

func TestEntryPointShareUrl(t *testing.T) {
	store := newFakeStore()
	seedConfig(store)
	svc, _ := newConfigServiceForTest(store)

	res, err := svc.GetConfig(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res.EntryPoints, 1)
	assert.Equal(t, "http://localhost:5173/r/demo-coffee?src=counter_qr", res.EntryPoints[0].ShareUrl)
}
