package commands

import (
	"context"
	"time"

	"metalease/internal/domain/lease"
	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Consumer-side repository contracts. Writes are atomic per entity; the
// engine never relies on cross-entity transactions (cross-entity
// consistency is guarded by the per-resource lock).

type OfferFilter struct {
	ProjectID    *uuid.UUID
	ResourceUUID *uuid.UUID
	Statuses     []lease.OfferStatus
	// EndNotAfter selects offers whose window end is <= the given instant
	// (the expiration sweep predicate).
	EndNotAfter *time.Time
}

type ContractFilter struct {
	ProjectID     *uuid.UUID
	OfferID       *uuid.UUID
	Statuses      []lease.ContractStatus
	StartNotAfter *time.Time
	EndNotAfter   *time.Time
}

type OfferRepository interface {
	Find(ctx context.Context, id uuid.UUID) (*lease.Offer, error)
	List(ctx context.Context, filter OfferFilter) ([]*lease.Offer, error)
	Save(ctx context.Context, offer *lease.Offer) (*lease.Offer, error)
}

type ContractRepository interface {
	Find(ctx context.Context, id uuid.UUID) (*lease.Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]*lease.Contract, error)
	// ListForResource returns contracts on the given resource in any of
	// the given statuses whose window overlaps `overlapping` (all windows
	// when nil). The conflict resolver's fetch.
	ListForResource(ctx context.Context, resourceUUID uuid.UUID, statuses []lease.ContractStatus, overlapping *lease.TimeWindow) ([]*lease.Contract, error)
	Save(ctx context.Context, contract *lease.Contract) (*lease.Contract, error)
}

// MarketplacePublisher receives the post-commit publish-intent event for
// newly created offers. Best-effort: callers log failures and move on.
type MarketplacePublisher interface {
	PublishOfferCreated(ctx context.Context, offer *readmodel.OfferRM) error
}
