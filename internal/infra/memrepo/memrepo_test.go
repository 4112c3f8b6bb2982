//go:build unit

package memrepo_test

import (
	"context"
	"testing"
	"time"

	"metalease/internal/domain/lease"
	"metalease/internal/infra"
	"metalease/internal/infra/memrepo"
	"metalease/internal/pkg/clock"
	"metalease/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2026, 9, 1, hour, 0, 0, 0, time.UTC)
}

func mustWindow(t *testing.T, startHour, endHour int) lease.TimeWindow {
	t.Helper()
	w, err := lease.NewTimeWindow(at(startHour), at(endHour))
	require.NoError(t, err)
	return w
}

func TestOfferRepository(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(at(9))
	store := memrepo.NewStore(clk)
	repo := store.Offers()

	offer, err := lease.NewOffer(uuid.New(), "", uuid.New(), mustWindow(t, 10, 12), nil)
	require.NoError(t, err)

	t.Run("save stamps timestamps", func(t *testing.T) {
		saved, err := repo.Save(ctx, offer)
		require.NoError(t, err)
		assert.Equal(t, at(9), saved.CreatedAt())
		assert.Equal(t, at(9), saved.UpdatedAt())
	})

	t.Run("resave preserves created_at and bumps updated_at", func(t *testing.T) {
		clk.Advance(time.Hour)
		saved, err := repo.Save(ctx, offer)
		require.NoError(t, err)
		assert.Equal(t, at(9), saved.CreatedAt())
		assert.Equal(t, at(10), saved.UpdatedAt())
	})

	t.Run("find returns a copy", func(t *testing.T) {
		found, err := repo.Find(ctx, offer.ID())
		require.NoError(t, err)
		require.NoError(t, found.Expire())

		again, err := repo.Find(ctx, offer.ID())
		require.NoError(t, err)
		assert.Equal(t, lease.OfferAvailable, again.Status())
	})

	t.Run("find of unknown id is a not-found kind", func(t *testing.T) {
		_, err := repo.Find(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list filters by end bound", func(t *testing.T) {
		deadline := at(12)
		result, err := repo.List(ctx, commands.OfferFilter{EndNotAfter: &deadline})
		require.NoError(t, err)
		assert.Len(t, result, 1)

		deadline = at(11)
		result, err = repo.List(ctx, commands.OfferFilter{EndNotAfter: &deadline})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestContractRepositoryListForResource(t *testing.T) {
	ctx := context.Background()
	store := memrepo.NewStore(clock.NewMockClock(at(9)))

	resourceUUID := uuid.New()
	offer, err := lease.NewOffer(uuid.New(), "", resourceUUID, mustWindow(t, 10, 16), nil)
	require.NoError(t, err)
	_, err = store.Offers().Save(ctx, offer)
	require.NoError(t, err)

	otherOffer, err := lease.NewOffer(uuid.New(), "", uuid.New(), mustWindow(t, 10, 16), nil)
	require.NoError(t, err)
	_, err = store.Offers().Save(ctx, otherOffer)
	require.NoError(t, err)

	mustSave := func(offerID uuid.UUID, startHour, endHour int) *lease.Contract {
		c, err := lease.NewContract(uuid.New(), offerID, mustWindow(t, startHour, endHour), nil)
		require.NoError(t, err)
		saved, err := store.Contracts().Save(ctx, c)
		require.NoError(t, err)
		return saved
	}

	onResource := mustSave(offer.ID(), 10, 12)
	mustSave(offer.ID(), 14, 16)
	mustSave(otherOffer.ID(), 10, 12)

	t.Run("scoped to the resource across offers", func(t *testing.T) {
		result, err := store.Contracts().ListForResource(ctx, resourceUUID, nil, nil)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("overlap predicate is half-open", func(t *testing.T) {
		window := mustWindow(t, 11, 13)
		result, err := store.Contracts().ListForResource(ctx, resourceUUID, nil, &window)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, onResource.ID(), result[0].ID())

		// Touching at 12 does not overlap.
		window = mustWindow(t, 12, 14)
		result, err = store.Contracts().ListForResource(ctx, resourceUUID, nil, &window)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("status filter", func(t *testing.T) {
		found, err := store.Contracts().Find(ctx, onResource.ID())
		require.NoError(t, err)
		require.NoError(t, found.Cancel())
		_, err = store.Contracts().Save(ctx, found)
		require.NoError(t, err)

		result, err := store.Contracts().ListForResource(ctx, resourceUUID,
			[]lease.ContractStatus{lease.ContractOpen, lease.ContractActive}, nil)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
}
