//go:build unit

package commands_test

import (
	"context"
	"testing"

	"metalease/internal/domain/lease"
	"metalease/internal/pkg/errs"
	"metalease/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOffer(t *testing.T) {
	t.Run("created offer is available and published", func(t *testing.T) {
		f := newFixture(t)
		owner := uuid.New()

		rm := f.createOffer(t, owner, at(10, 0), at(12, 0), nil)

		assert.Equal(t, lease.OfferAvailable.String(), rm.Status)
		assert.Equal(t, owner, rm.ProjectID)
		assert.Equal(t, lease.DefaultResourceType, rm.ResourceType)
		assert.Equal(t, lease.OfferAvailable, f.offerStatus(t, rm.ID))

		require.Len(t, f.publisher.published, 1)
		assert.Equal(t, rm.ID, f.publisher.published[0].ID)
	})

	t.Run("inverted window is rejected before persistence", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.offerCmds.CreateOffer(context.Background(), uuid.New(), commands.CreateOfferSpec{
			ResourceUUID: uuid.New(),
			StartTime:    at(12, 0),
			EndTime:      at(10, 0),
		})
		require.True(t, errs.Is(err, errs.ErrInvalidWindow))

		offers, listErr := f.offerRepo.List(context.Background(), commands.OfferFilter{})
		require.NoError(t, listErr)
		assert.Empty(t, offers)
		assert.Empty(t, f.publisher.published)
	})

	t.Run("missing resource identity is a validation error", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.offerCmds.CreateOffer(context.Background(), uuid.New(), commands.CreateOfferSpec{
			StartTime: at(10, 0),
			EndTime:   at(12, 0),
		})
		require.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("publish failure does not undo the offer", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.err = errs.New("broker down")

		rm := f.createOffer(t, uuid.New(), at(10, 0), at(12, 0), nil)
		assert.Equal(t, lease.OfferAvailable, f.offerStatus(t, rm.ID))
	})
}

func TestCancelOffer(t *testing.T) {
	t.Run("owner cancels an idle offer", func(t *testing.T) {
		f := newFixture(t)
		owner := uuid.New()
		offer := f.createOffer(t, owner, at(10, 0), at(12, 0), nil)

		rm, err := f.offerCmds.CancelOffer(context.Background(), owner, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, lease.OfferCancelled.String(), rm.Status)
		assert.Equal(t, lease.OfferCancelled, f.offerStatus(t, offer.ID))
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		f := newFixture(t)
		offer := f.createOffer(t, uuid.New(), at(10, 0), at(12, 0), nil)

		_, err := f.offerCmds.CancelOffer(context.Background(), uuid.New(), offer.ID)
		require.True(t, errs.Is(err, errs.ErrNotOwner))
		assert.Equal(t, lease.OfferAvailable, f.offerStatus(t, offer.ID))
	})

	t.Run("live contract blocks cancellation", func(t *testing.T) {
		f := newFixture(t)
		owner := uuid.New()
		offer := f.createOffer(t, owner, at(10, 0), at(12, 0), nil)
		f.fulfill(t, uuid.New(), offer.ID, at(10, 0), at(11, 0))

		_, err := f.offerCmds.CancelOffer(context.Background(), owner, offer.ID)
		require.True(t, errs.Is(err, errs.ErrHasActiveContracts))
		assert.Equal(t, lease.OfferAvailable, f.offerStatus(t, offer.ID))
	})

	t.Run("cancellation allowed once contracts are terminal", func(t *testing.T) {
		f := newFixture(t)
		owner := uuid.New()
		holder := uuid.New()
		offer := f.createOffer(t, owner, at(10, 0), at(12, 0), nil)
		contract := f.fulfill(t, holder, offer.ID, at(10, 0), at(11, 0))

		_, err := f.contractCmds.CancelContract(context.Background(), holder, contract.ID)
		require.NoError(t, err)

		rm, err := f.offerCmds.CancelOffer(context.Background(), owner, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, lease.OfferCancelled.String(), rm.Status)
	})

	t.Run("unknown offer", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.offerCmds.CancelOffer(context.Background(), uuid.New(), uuid.New())
		require.True(t, errs.Is(err, errs.ErrOfferNotFound))
	})

	t.Run("sweep expiring the offer mid-cancel wins", func(t *testing.T) {
		f := newFixture(t)
		owner := uuid.New()
		offer := f.createOffer(t, owner, at(10, 0), at(12, 0), nil)

		// The sweep lands between the initial read and the lock; the
		// re-read under the lock must see the expired offer.
		repo := &staleOfferFinder{OfferRepository: f.offerRepo, race: func() {
			f.clk.Set(at(12, 0))
			_, err := f.sweepCmds.ExpireDue(context.Background(), f.clk.Now())
			require.NoError(t, err)
		}}
		cmds := commands.NewOfferCommands(repo, f.contractRepo, f.publisher, f.locks, f.logger)

		_, err := cmds.CancelOffer(context.Background(), owner, offer.ID)
		require.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, lease.OfferExpired, f.offerStatus(t, offer.ID))
	})
}
