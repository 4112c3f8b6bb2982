package queries

import (
	"context"

	"metalease/internal/domain/lease"
	"metalease/internal/infra"
	"metalease/internal/pkg/errs"
	"metalease/internal/usecase/commands"
	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OfferListFilter struct {
	ProjectID    *uuid.UUID
	ResourceUUID *uuid.UUID
	Status       *string
}

type ContractListFilter struct {
	ProjectID *uuid.UUID
	OfferID   *uuid.UUID
	Status    *string
}

type LeaseQueries interface {
	GetOffer(ctx context.Context, id uuid.UUID) (*readmodel.OfferRM, error)
	ListOffers(ctx context.Context, filter OfferListFilter) ([]*readmodel.OfferRM, error)
	GetContract(ctx context.Context, id uuid.UUID) (*readmodel.ContractRM, error)
	ListContracts(ctx context.Context, filter ContractListFilter) ([]*readmodel.ContractRM, error)
}

type leaseQueriesImpl struct {
	offerRepo    commands.OfferRepository
	contractRepo commands.ContractRepository
}

func NewLeaseQueries(offerRepo commands.OfferRepository, contractRepo commands.ContractRepository) LeaseQueries {
	return &leaseQueriesImpl{
		offerRepo:    offerRepo,
		contractRepo: contractRepo,
	}
}

func (q *leaseQueriesImpl) GetOffer(ctx context.Context, id uuid.UUID) (*readmodel.OfferRM, error) {
	offer, err := q.offerRepo.Find(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, errs.ErrOfferNotFound)
	}
	return readmodel.FromOffer(offer), nil
}

func (q *leaseQueriesImpl) ListOffers(ctx context.Context, filter OfferListFilter) ([]*readmodel.OfferRM, error) {
	repoFilter := commands.OfferFilter{
		ProjectID:    filter.ProjectID,
		ResourceUUID: filter.ResourceUUID,
	}
	if filter.Status != nil {
		status := lease.OfferStatus(*filter.Status)
		if !status.IsValid() {
			return nil, errs.Mark(errs.Newf("unknown offer status %q", *filter.Status), errs.ErrDomainValidation)
		}
		repoFilter.Statuses = []lease.OfferStatus{status}
	}

	offers, err := q.offerRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryUnavailable)
	}

	result := make([]*readmodel.OfferRM, len(offers))
	for i, o := range offers {
		result[i] = readmodel.FromOffer(o)
	}
	return result, nil
}

func (q *leaseQueriesImpl) GetContract(ctx context.Context, id uuid.UUID) (*readmodel.ContractRM, error) {
	contract, err := q.contractRepo.Find(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, errs.ErrContractNotFound)
	}
	return readmodel.FromContract(contract), nil
}

func (q *leaseQueriesImpl) ListContracts(ctx context.Context, filter ContractListFilter) ([]*readmodel.ContractRM, error) {
	repoFilter := commands.ContractFilter{
		ProjectID: filter.ProjectID,
		OfferID:   filter.OfferID,
	}
	if filter.Status != nil {
		status := lease.ContractStatus(*filter.Status)
		if !status.IsValid() {
			return nil, errs.Mark(errs.Newf("unknown contract status %q", *filter.Status), errs.ErrDomainValidation)
		}
		repoFilter.Statuses = []lease.ContractStatus{status}
	}

	contracts, err := q.contractRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrRepositoryUnavailable)
	}

	result := make([]*readmodel.ContractRM, len(contracts))
	for i, c := range contracts {
		result[i] = readmodel.FromContract(c)
	}
	return result, nil
}

func translateReadErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrRepositoryUnavailable)
}
