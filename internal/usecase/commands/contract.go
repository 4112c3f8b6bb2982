package commands

import (
	"context"
	"log/slog"
	"time"

	"metalease/internal/domain/lease"
	"metalease/internal/pkg/errs"
	"metalease/internal/pkg/keylock"
	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type FulfillOfferSpec struct {
	StartTime  time.Time
	EndTime    time.Time
	Properties map[string]any
}

type ContractCommands interface {
	FulfillOffer(ctx context.Context, actor uuid.UUID, offerID uuid.UUID, spec FulfillOfferSpec) (*readmodel.ContractRM, error)
	CancelContract(ctx context.Context, actor uuid.UUID, contractID uuid.UUID) (*readmodel.ContractRM, error)
}

type contractCommandsImpl struct {
	offerRepo    OfferRepository
	contractRepo ContractRepository
	resolver     *ConflictResolver
	locks        *keylock.KeyLock
	logger       *slog.Logger
}

func NewContractCommands(
	offerRepo OfferRepository,
	contractRepo ContractRepository,
	resolver *ConflictResolver,
	locks *keylock.KeyLock,
	logger *slog.Logger,
) ContractCommands {
	return &contractCommandsImpl{
		offerRepo:    offerRepo,
		contractRepo: contractRepo,
		resolver:     resolver,
		locks:        locks,
		logger:       logger,
	}
}

func (u *contractCommandsImpl) FulfillOffer(ctx context.Context, actor uuid.UUID, offerID uuid.UUID, spec FulfillOfferSpec) (*readmodel.ContractRM, error) {
	window, err := lease.NewTimeWindow(spec.StartTime, spec.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidWindow)
	}

	offer, err := u.offerRepo.Find(ctx, offerID)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrOfferNotFound)
	}

	// Exclusive section per resource identity: the availability check and
	// the contract write must not interleave with another fulfillment (or
	// an expiry cascade) on the same resource.
	key := offer.ResourceUUID().String()
	u.locks.Lock(key)
	defer u.locks.Unlock(key)

	// Re-read under the lock; the offer may have expired or been
	// cancelled while we waited.
	offer, err = u.offerRepo.Find(ctx, offerID)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrOfferNotFound)
	}
	if !offer.Fulfillable() {
		return nil, errs.Mark(
			errs.Newf("offer %s is %s", offerID, offer.Status()),
			errs.ErrOfferNotFulfillable,
		)
	}

	if _, err := u.resolver.CheckAvailability(ctx, offer, window, nil); err != nil {
		return nil, err
	}

	contract, err := lease.NewContract(actor, offer.ID(), window, spec.Properties)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	saved, err := u.contractRepo.Save(ctx, contract)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrContractNotFound)
	}

	u.applyFulfillmentPolicy(ctx, offer)

	return readmodel.FromContract(saved), nil
}

// applyFulfillmentPolicy moves the offer toward fulfilled after a contract
// was admitted: immediately for single-tenant offers, once contracts cover
// the full window for shared offers. The offer's status here is derived
// bookkeeping; a failed update is logged and left for the next evaluation
// rather than unwinding the committed contract.
func (u *contractCommandsImpl) applyFulfillmentPolicy(ctx context.Context, offer *lease.Offer) {
	if offer.Status() != lease.OfferAvailable {
		return
	}

	fulfilled := false
	switch offer.Tenancy() {
	case lease.TenancySingle:
		fulfilled = true
	case lease.TenancyShared:
		offerID := offer.ID()
		live, err := u.contractRepo.List(ctx, ContractFilter{
			OfferID:  &offerID,
			Statuses: []lease.ContractStatus{lease.ContractOpen, lease.ContractActive},
		})
		if err != nil {
			u.logger.Warn("fulfillment coverage check failed", "offer_id", offer.ID(), "error", err.Error())
			return
		}
		windows := make([]lease.TimeWindow, len(live))
		for i, c := range live {
			windows[i] = c.Window()
		}
		fulfilled = lease.CoversWindow(offer.Window(), windows)
	}

	if !fulfilled {
		return
	}
	if err := offer.Fulfill(); err != nil {
		return
	}
	if _, err := u.offerRepo.Save(ctx, offer); err != nil {
		u.logger.Warn("offer fulfillment update failed", "offer_id", offer.ID(), "error", err.Error())
	}
}

func (u *contractCommandsImpl) CancelContract(ctx context.Context, actor uuid.UUID, contractID uuid.UUID) (*readmodel.ContractRM, error) {
	contract, err := u.contractRepo.Find(ctx, contractID)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrContractNotFound)
	}
	offer, err := u.offerRepo.Find(ctx, contract.OfferID())
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrOfferNotFound)
	}

	// Serialize with the expiry cascade on the same resource, then re-read:
	// cancelling a stale snapshot would overwrite a terminal status.
	key := offer.ResourceUUID().String()
	u.locks.Lock(key)
	defer u.locks.Unlock(key)

	contract, err = u.contractRepo.Find(ctx, contractID)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrContractNotFound)
	}

	// The offer's owner may also revoke a lease on its resource.
	if !contract.IsHeldBy(actor) && !offer.IsOwnedBy(actor) {
		return nil, errs.ErrNotOwner
	}

	if err := contract.Cancel(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	saved, err := u.contractRepo.Save(ctx, contract)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrContractNotFound)
	}
	return readmodel.FromContract(saved), nil
}
