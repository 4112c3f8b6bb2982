package commands

import (
	"context"
	"log/slog"
	"time"

	"metalease/internal/domain/lease"
	"metalease/internal/pkg/errs"
	"metalease/internal/pkg/keylock"

	"github.com/google/uuid"
)

// SweepResult lists the entities changed by one expiration pass.
type SweepResult struct {
	ActivatedContracts []uuid.UUID
	FulfilledContracts []uuid.UUID
	ExpiredContracts   []uuid.UUID
	ExpiredOffers      []uuid.UUID
}

func (r *SweepResult) Empty() bool {
	return len(r.ActivatedContracts) == 0 &&
		len(r.FulfilledContracts) == 0 &&
		len(r.ExpiredContracts) == 0 &&
		len(r.ExpiredOffers) == 0
}

type SweepCommands interface {
	// ExpireDue runs one expiration pass at the given instant. Idempotent:
	// re-running with the same now is a no-op.
	ExpireDue(ctx context.Context, now time.Time) (*SweepResult, error)
}

type sweepCommandsImpl struct {
	offerRepo    OfferRepository
	contractRepo ContractRepository
	locks        *keylock.KeyLock
	logger       *slog.Logger
}

func NewSweepCommands(
	offerRepo OfferRepository,
	contractRepo ContractRepository,
	locks *keylock.KeyLock,
	logger *slog.Logger,
) SweepCommands {
	return &sweepCommandsImpl{
		offerRepo:    offerRepo,
		contractRepo: contractRepo,
		locks:        locks,
		logger:       logger,
	}
}

func (u *sweepCommandsImpl) ExpireDue(ctx context.Context, now time.Time) (*SweepResult, error) {
	result := &SweepResult{}

	if err := u.sweepContracts(ctx, now, result); err != nil {
		return result, err
	}
	if err := u.sweepOffers(ctx, now, result); err != nil {
		return result, err
	}
	return result, nil
}

// sweepContracts advances time-driven contract transitions: open contracts
// whose start has arrived become active, active contracts whose end has
// passed complete normally.
func (u *sweepCommandsImpl) sweepContracts(ctx context.Context, now time.Time, result *SweepResult) error {
	due, err := u.contractRepo.List(ctx, ContractFilter{
		Statuses:      []lease.ContractStatus{lease.ContractOpen, lease.ContractActive},
		StartNotAfter: &now,
	})
	if err != nil {
		return errs.Mark(err, errs.ErrRepositoryUnavailable)
	}

	for _, c := range due {
		if err := u.advanceContract(ctx, c, now, result); err != nil {
			return err
		}
	}
	return nil
}

// advanceContract applies one contract's due transitions inside the
// resource's exclusive section. The contract is re-read under the lock so a
// cancellation or expiry cascade that ran after the listing is respected
// rather than overwritten.
func (u *sweepCommandsImpl) advanceContract(ctx context.Context, listed *lease.Contract, now time.Time, result *SweepResult) error {
	offer, err := u.offerRepo.Find(ctx, listed.OfferID())
	if err != nil {
		return translateRepoErr(err, errs.ErrOfferNotFound)
	}

	key := offer.ResourceUUID().String()
	u.locks.Lock(key)
	defer u.locks.Unlock(key)

	c, err := u.contractRepo.Find(ctx, listed.ID())
	if err != nil {
		return translateRepoErr(err, errs.ErrContractNotFound)
	}

	changedTo := sweepContract(c, now)
	if changedTo == "" {
		return nil
	}
	if _, err := u.contractRepo.Save(ctx, c); err != nil {
		return errs.Mark(err, errs.ErrRepositoryUnavailable)
	}
	switch changedTo {
	case lease.ContractActive:
		result.ActivatedContracts = append(result.ActivatedContracts, c.ID())
	case lease.ContractFulfilled:
		result.FulfilledContracts = append(result.FulfilledContracts, c.ID())
	}
	return nil
}

// sweepContract applies due transitions in order; a contract whose whole
// window has already passed moves open -> active -> fulfilled in one pass.
func sweepContract(c *lease.Contract, now time.Time) lease.ContractStatus {
	var changedTo lease.ContractStatus
	if c.DueForActivation(now) {
		if err := c.Activate(); err == nil {
			changedTo = lease.ContractActive
		}
	}
	if c.DueForFulfillment(now) {
		if err := c.Fulfill(); err == nil {
			changedTo = lease.ContractFulfilled
		}
	}
	return changedTo
}

// sweepOffers expires offers whose end has passed, cascading forced expiry
// to every non-terminal contract of the offer regardless of the contract's
// own end time. The cascade runs inside the resource's exclusive section
// so it cannot interleave with a fulfillment check on the same resource.
func (u *sweepCommandsImpl) sweepOffers(ctx context.Context, now time.Time, result *SweepResult) error {
	due, err := u.offerRepo.List(ctx, OfferFilter{
		Statuses:    []lease.OfferStatus{lease.OfferCreated, lease.OfferAvailable, lease.OfferFulfilled},
		EndNotAfter: &now,
	})
	if err != nil {
		return errs.Mark(err, errs.ErrRepositoryUnavailable)
	}

	for _, offer := range due {
		if err := u.expireOffer(ctx, offer, now, result); err != nil {
			return err
		}
	}
	return nil
}

func (u *sweepCommandsImpl) expireOffer(ctx context.Context, offer *lease.Offer, now time.Time, result *SweepResult) error {
	key := offer.ResourceUUID().String()
	u.locks.Lock(key)
	defer u.locks.Unlock(key)

	// Re-read under the lock; a concurrent pass may have expired it.
	offer, err := u.offerRepo.Find(ctx, offer.ID())
	if err != nil {
		return translateRepoErr(err, errs.ErrOfferNotFound)
	}
	if !offer.DueForExpiry(now) {
		return nil
	}

	offerID := offer.ID()
	children, err := u.contractRepo.List(ctx, ContractFilter{
		OfferID:  &offerID,
		Statuses: []lease.ContractStatus{lease.ContractOpen, lease.ContractActive},
	})
	if err != nil {
		return errs.Mark(err, errs.ErrRepositoryUnavailable)
	}

	for _, c := range children {
		if err := c.Expire(); err != nil {
			// Already terminal: skip silently, the sweep is idempotent.
			continue
		}
		if _, err := u.contractRepo.Save(ctx, c); err != nil {
			return errs.Mark(err, errs.ErrRepositoryUnavailable)
		}
		result.ExpiredContracts = append(result.ExpiredContracts, c.ID())
	}

	if err := offer.Expire(); err != nil {
		return nil
	}
	if _, err := u.offerRepo.Save(ctx, offer); err != nil {
		return errs.Mark(err, errs.ErrRepositoryUnavailable)
	}
	result.ExpiredOffers = append(result.ExpiredOffers, offer.ID())

	u.logger.Info("offer expired",
		"offer_id", offer.ID(),
		"resource_uuid", offer.ResourceUUID(),
		"cascaded_contracts", len(children))
	return nil
}
