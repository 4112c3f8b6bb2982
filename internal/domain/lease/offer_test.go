//go:build unit

package lease_test

import (
	"testing"

	"metalease/internal/domain/lease"
	"metalease/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, lease.OfferAvailable, actual.Status())
		assert.Equal(t, lease.DefaultResourceType, actual.ResourceType())
		assert.NotNil(t, actual.Properties())
		assert.True(t, actual.Fulfillable())
	})

	t.Run("missing project is rejected", func(t *testing.T) {
		_, err := builder.NewOfferBuilder().
			With(func(b *builder.OfferBuilder) { b.ProjectID = uuid.Nil }).
			BuildDomain()
		require.ErrorIs(t, err, lease.ErrMissingProject)
	})

	t.Run("missing resource is rejected", func(t *testing.T) {
		_, err := builder.NewOfferBuilder().
			With(func(b *builder.OfferBuilder) { b.ResourceUUID = uuid.Nil }).
			BuildDomain()
		require.ErrorIs(t, err, lease.ErrMissingResource)
	})

	t.Run("empty resource type falls back to default", func(t *testing.T) {
		actual, err := builder.NewOfferBuilder().
			With(func(b *builder.OfferBuilder) { b.ResourceType = "" }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, lease.DefaultResourceType, actual.ResourceType())
	})
}

func TestOfferTenancy(t *testing.T) {
	t.Run("defaults to shared", func(t *testing.T) {
		offer, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, lease.TenancyShared, offer.Tenancy())
	})

	t.Run("single via property", func(t *testing.T) {
		offer, err := builder.NewOfferBuilder().WithTenancy(lease.TenancySingle).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, lease.TenancySingle, offer.Tenancy())
	})

	t.Run("unknown value falls back to shared", func(t *testing.T) {
		offer, err := builder.NewOfferBuilder().
			With(func(b *builder.OfferBuilder) { b.Properties = map[string]any{"tenancy": "exclusive"} }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, lease.TenancyShared, offer.Tenancy())
	})
}

func TestOfferTransitions(t *testing.T) {
	newOffer := func(t *testing.T) *lease.Offer {
		t.Helper()
		offer, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		return offer
	}

	t.Run("fulfill from available", func(t *testing.T) {
		offer := newOffer(t)
		require.NoError(t, offer.Fulfill())
		assert.Equal(t, lease.OfferFulfilled, offer.Status())
		assert.False(t, offer.Fulfillable())
	})

	t.Run("cancel from available", func(t *testing.T) {
		offer := newOffer(t)
		require.NoError(t, offer.Cancel())
		assert.Equal(t, lease.OfferCancelled, offer.Status())
	})

	t.Run("expire from any non-terminal status", func(t *testing.T) {
		offer := newOffer(t)
		require.NoError(t, offer.Fulfill())
		require.NoError(t, offer.Expire())
		assert.Equal(t, lease.OfferExpired, offer.Status())
	})

	t.Run("fulfill after cancel is rejected", func(t *testing.T) {
		offer := newOffer(t)
		require.NoError(t, offer.Cancel())
		require.ErrorIs(t, offer.Fulfill(), lease.ErrInvalidTransition)
	})

	t.Run("cancel after expire is rejected", func(t *testing.T) {
		offer := newOffer(t)
		require.NoError(t, offer.Expire())
		require.ErrorIs(t, offer.Cancel(), lease.ErrInvalidTransition)
	})

	t.Run("expire is not repeatable", func(t *testing.T) {
		offer := newOffer(t)
		require.NoError(t, offer.Expire())
		require.ErrorIs(t, offer.Expire(), lease.ErrInvalidTransition)
	})

	t.Run("validate only applies to created", func(t *testing.T) {
		offer := newOffer(t)
		require.ErrorIs(t, offer.Validate(), lease.ErrInvalidTransition)
	})
}

func TestOfferDueForExpiry(t *testing.T) {
	offer, err := builder.NewOfferBuilder().WithWindow(at(10, 0), at(12, 0)).BuildDomain()
	require.NoError(t, err)

	assert.False(t, offer.DueForExpiry(at(11, 59)))
	assert.True(t, offer.DueForExpiry(at(12, 0)))
	assert.True(t, offer.DueForExpiry(at(13, 0)))

	require.NoError(t, offer.Expire())
	assert.False(t, offer.DueForExpiry(at(13, 0)))
}
