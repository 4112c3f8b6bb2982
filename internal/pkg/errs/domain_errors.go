package errs

import "errors"

// Sentinel errors shared by the usecase layers; handlers map these to
// HTTP statuses.
var (
	// Offer errors
	ErrOfferNotFound       = errors.New("offer not found")
	ErrOfferNotFulfillable = errors.New("offer cannot be fulfilled")
	ErrHasActiveContracts  = errors.New("offer has active contracts")

	// Contract errors
	ErrContractNotFound   = errors.New("contract not found")
	ErrWindowConflict     = errors.New("window conflicts with an existing contract")
	ErrOutsideOfferWindow = errors.New("window outside the offer's availability")

	// Window / transition errors
	ErrInvalidWindow     = errors.New("invalid time window")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDomainValidation  = errors.New("domain validation error")

	// Ownership errors
	ErrNotOwner = errors.New("actor does not own the entity")

	// Infrastructure errors
	ErrRepositoryUnavailable = errors.New("repository unavailable")
)
