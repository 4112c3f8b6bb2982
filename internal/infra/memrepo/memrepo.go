// Package memrepo is an in-memory implementation of the lease
// repositories. It backs unit tests and the "memory" DB driver; semantics
// (filters, copy-on-read, not-found kinds) mirror the Postgres
// implementation.
package memrepo

import (
	"context"
	"sync"

	"metalease/internal/domain/lease"
	"metalease/internal/infra"
	"metalease/internal/pkg/clock"
	"metalease/internal/pkg/errs"
	"metalease/internal/usecase/commands"

	"github.com/google/uuid"
)

type Store struct {
	mu        sync.RWMutex
	clock     clock.Clock
	offers    map[uuid.UUID]*lease.Offer
	contracts map[uuid.UUID]*lease.Contract
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock:     clk,
		offers:    make(map[uuid.UUID]*lease.Offer),
		contracts: make(map[uuid.UUID]*lease.Contract),
	}
}

func (s *Store) Offers() *OfferRepository {
	return &OfferRepository{store: s}
}

func (s *Store) Contracts() *ContractRepository {
	return &ContractRepository{store: s}
}

type OfferRepository struct {
	store *Store
}

func (r *OfferRepository) Find(_ context.Context, id uuid.UUID) (*lease.Offer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.offers[id]
	if !ok {
		return nil, infra.WrapRepoErr("offer not found", errs.Newf("offer %s", id), infra.KindNotFound)
	}
	return copyOffer(o), nil
}

func (r *OfferRepository) List(_ context.Context, filter commands.OfferFilter) ([]*lease.Offer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*lease.Offer
	for _, o := range r.store.offers {
		if matchOffer(o, filter) {
			result = append(result, copyOffer(o))
		}
	}
	return result, nil
}

func (r *OfferRepository) Save(_ context.Context, offer *lease.Offer) (*lease.Offer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.clock.Now()
	createdAt := offer.CreatedAt()
	if existing, ok := r.store.offers[offer.ID()]; ok {
		createdAt = existing.CreatedAt()
	} else if createdAt.IsZero() {
		createdAt = now
	}

	saved := lease.ReconstructOffer(
		offer.ID(), offer.ProjectID(), offer.ResourceType(), offer.ResourceUUID(),
		offer.Window(), offer.Status(), copyProperties(offer.Properties()),
		createdAt, now,
	)
	r.store.offers[offer.ID()] = saved
	return copyOffer(saved), nil
}

type ContractRepository struct {
	store *Store
}

func (r *ContractRepository) Find(_ context.Context, id uuid.UUID) (*lease.Contract, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.contracts[id]
	if !ok {
		return nil, infra.WrapRepoErr("contract not found", errs.Newf("contract %s", id), infra.KindNotFound)
	}
	return copyContract(c), nil
}

func (r *ContractRepository) List(_ context.Context, filter commands.ContractFilter) ([]*lease.Contract, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*lease.Contract
	for _, c := range r.store.contracts {
		if matchContract(c, filter) {
			result = append(result, copyContract(c))
		}
	}
	return result, nil
}

func (r *ContractRepository) ListForResource(_ context.Context, resourceUUID uuid.UUID, statuses []lease.ContractStatus, overlapping *lease.TimeWindow) ([]*lease.Contract, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []*lease.Contract
	for _, c := range r.store.contracts {
		offer, ok := r.store.offers[c.OfferID()]
		if !ok || offer.ResourceUUID() != resourceUUID {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, c.Status()) {
			continue
		}
		if overlapping != nil && !c.Window().Overlaps(*overlapping) {
			continue
		}
		result = append(result, copyContract(c))
	}
	return result, nil
}

func (r *ContractRepository) Save(_ context.Context, contract *lease.Contract) (*lease.Contract, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.clock.Now()
	createdAt := contract.CreatedAt()
	if existing, ok := r.store.contracts[contract.ID()]; ok {
		createdAt = existing.CreatedAt()
	} else if createdAt.IsZero() {
		createdAt = now
	}

	saved := lease.ReconstructContract(
		contract.ID(), contract.ProjectID(), contract.OfferID(),
		contract.Window(), contract.Status(), copyProperties(contract.Properties()),
		createdAt, now,
	)
	r.store.contracts[contract.ID()] = saved
	return copyContract(saved), nil
}

func matchOffer(o *lease.Offer, filter commands.OfferFilter) bool {
	if filter.ProjectID != nil && o.ProjectID() != *filter.ProjectID {
		return false
	}
	if filter.ResourceUUID != nil && o.ResourceUUID() != *filter.ResourceUUID {
		return false
	}
	if len(filter.Statuses) > 0 {
		found := false
		for _, s := range filter.Statuses {
			if o.Status() == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.EndNotAfter != nil && o.Window().End().After(*filter.EndNotAfter) {
		return false
	}
	return true
}

func matchContract(c *lease.Contract, filter commands.ContractFilter) bool {
	if filter.ProjectID != nil && c.ProjectID() != *filter.ProjectID {
		return false
	}
	if filter.OfferID != nil && c.OfferID() != *filter.OfferID {
		return false
	}
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, c.Status()) {
		return false
	}
	if filter.StartNotAfter != nil && c.Window().Start().After(*filter.StartNotAfter) {
		return false
	}
	if filter.EndNotAfter != nil && c.Window().End().After(*filter.EndNotAfter) {
		return false
	}
	return true
}

func containsStatus(statuses []lease.ContractStatus, s lease.ContractStatus) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func copyOffer(o *lease.Offer) *lease.Offer {
	return lease.ReconstructOffer(
		o.ID(), o.ProjectID(), o.ResourceType(), o.ResourceUUID(),
		o.Window(), o.Status(), copyProperties(o.Properties()),
		o.CreatedAt(), o.UpdatedAt(),
	)
}

func copyContract(c *lease.Contract) *lease.Contract {
	return lease.ReconstructContract(
		c.ID(), c.ProjectID(), c.OfferID(),
		c.Window(), c.Status(), copyProperties(c.Properties()),
		c.CreatedAt(), c.UpdatedAt(),
	)
}

func copyProperties(props map[string]any) map[string]any {
	if props == nil {
		return map[string]any{}
	}
	copied := make(map[string]any, len(props))
	for k, v := range props {
		copied[k] = v
	}
	return copied
}
