package commands

import (
	"context"
	"log/slog"
	"time"

	"metalease/internal/domain/lease"
	"metalease/internal/infra"
	"metalease/internal/pkg/errs"
	"metalease/internal/pkg/keylock"
	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CreateOfferSpec struct {
	ResourceType string
	ResourceUUID uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	Properties   map[string]any
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, actor uuid.UUID, spec CreateOfferSpec) (*readmodel.OfferRM, error)
	CancelOffer(ctx context.Context, actor uuid.UUID, offerID uuid.UUID) (*readmodel.OfferRM, error)
}

type offerCommandsImpl struct {
	offerRepo    OfferRepository
	contractRepo ContractRepository
	publisher    MarketplacePublisher
	locks        *keylock.KeyLock
	logger       *slog.Logger
}

func NewOfferCommands(
	offerRepo OfferRepository,
	contractRepo ContractRepository,
	publisher MarketplacePublisher,
	locks *keylock.KeyLock,
	logger *slog.Logger,
) OfferCommands {
	return &offerCommandsImpl{
		offerRepo:    offerRepo,
		contractRepo: contractRepo,
		publisher:    publisher,
		locks:        locks,
		logger:       logger,
	}
}

func (u *offerCommandsImpl) CreateOffer(ctx context.Context, actor uuid.UUID, spec CreateOfferSpec) (*readmodel.OfferRM, error) {
	window, err := lease.NewTimeWindow(spec.StartTime, spec.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidWindow)
	}

	offer, err := lease.NewOffer(actor, spec.ResourceType, spec.ResourceUUID, window, spec.Properties)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	saved, err := u.offerRepo.Save(ctx, offer)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrOfferNotFound)
	}

	rm := readmodel.FromOffer(saved)

	// Post-commit publish intent. Failure must not undo the offer; retry
	// policy belongs to the downstream publisher.
	if pubErr := u.publisher.PublishOfferCreated(ctx, rm); pubErr != nil {
		u.logger.Warn("marketplace publish failed",
			"offer_id", rm.ID, "error", pubErr.Error())
	}

	return rm, nil
}

func (u *offerCommandsImpl) CancelOffer(ctx context.Context, actor uuid.UUID, offerID uuid.UUID) (*readmodel.OfferRM, error) {
	offer, err := u.offerRepo.Find(ctx, offerID)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrOfferNotFound)
	}

	// Serialize with fulfillment on the same resource so the live-contract
	// check and the status write cannot interleave with a new contract.
	key := offer.ResourceUUID().String()
	u.locks.Lock(key)
	defer u.locks.Unlock(key)

	// Re-read under the lock; the expiration sweep may have moved the
	// offer to a terminal state while we waited.
	offer, err = u.offerRepo.Find(ctx, offerID)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrOfferNotFound)
	}
	if !offer.IsOwnedBy(actor) {
		return nil, errs.ErrNotOwner
	}

	offerID2 := offer.ID()
	live, err := u.contractRepo.List(ctx, ContractFilter{
		OfferID:  &offerID2,
		Statuses: []lease.ContractStatus{lease.ContractOpen, lease.ContractActive},
	})
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrContractNotFound)
	}
	if len(live) > 0 {
		return nil, errs.Mark(errs.Newf("offer %s has %d live contracts", offerID, len(live)), errs.ErrHasActiveContracts)
	}

	if err := offer.Cancel(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	saved, err := u.offerRepo.Save(ctx, offer)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrOfferNotFound)
	}
	return readmodel.FromOffer(saved), nil
}

// translateRepoErr maps infrastructure error kinds to the usecase
// taxonomy: missing rows become the entity's not-found sentinel,
// everything else is a retryable repository failure.
func translateRepoErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrRepositoryUnavailable)
}
