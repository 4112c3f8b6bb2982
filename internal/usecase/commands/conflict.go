package commands

import (
	"context"
	"fmt"
	"strings"

	"metalease/internal/domain/lease"
	"metalease/internal/pkg/errs"

	"github.com/google/uuid"
)

// ConflictResolver decides whether a candidate window may be reserved on a
// resource. Callers must hold the per-resource lock around the check and
// the subsequent write; the resolver itself only reads.
type ConflictResolver struct {
	contractRepo ContractRepository
}

func NewConflictResolver(contractRepo ContractRepository) *ConflictResolver {
	return &ConflictResolver{contractRepo: contractRepo}
}

// CheckAvailability verifies that window fits inside the offer's
// availability and overlaps no non-terminal contract on the offer's
// resource. excludeContract skips one contract id, used when re-validating
// an existing contract. On conflict the returned slice names the blocking
// contracts.
func (r *ConflictResolver) CheckAvailability(
	ctx context.Context,
	offer *lease.Offer,
	window lease.TimeWindow,
	excludeContract *uuid.UUID,
) ([]uuid.UUID, error) {
	if !offer.Window().Contains(window) {
		return nil, errs.Mark(
			errs.Newf("window %s outside offer window %s", window, offer.Window()),
			errs.ErrOutsideOfferWindow,
		)
	}

	overlapping, err := r.contractRepo.ListForResource(
		ctx,
		offer.ResourceUUID(),
		[]lease.ContractStatus{lease.ContractOpen, lease.ContractActive},
		&window,
	)
	if err != nil {
		return nil, translateRepoErr(err, errs.ErrContractNotFound)
	}

	var blocking []uuid.UUID
	for _, c := range overlapping {
		if excludeContract != nil && c.ID() == *excludeContract {
			continue
		}
		blocking = append(blocking, c.ID())
	}
	if len(blocking) > 0 {
		return blocking, errs.Mark(
			errs.Newf("window %s blocked by contracts %s", window, joinIDs(blocking)),
			errs.ErrWindowConflict,
		)
	}
	return nil, nil
}

func joinIDs(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
