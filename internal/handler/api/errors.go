package api

import (
	"net/http"

	"metalease/internal/handler/httperr"
	"metalease/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase sentinels onto HTTP statuses. Sentinels are
// attached with errs.Mark, so matching goes through errs.Is; unrecognized
// errors stay opaque to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrOfferNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
	case errs.Is(err, errs.ErrContractNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Contract not found", nil)
	case errs.Is(err, errs.ErrInvalidWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
	case errs.Is(err, errs.ErrOutsideOfferWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Window outside the offer's availability", nil)
	case errs.Is(err, errs.ErrWindowConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Window conflicts with an existing contract", err.Error())
	case errs.Is(err, errs.ErrHasActiveContracts):
		httperr.AbortWithError(c, http.StatusConflict, err, "Offer has active contracts", nil)
	case errs.Is(err, errs.ErrOfferNotFulfillable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Offer can no longer be fulfilled", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status transition", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	case errs.Is(err, errs.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not permitted for this project", nil)
	case errs.Is(err, errs.ErrRepositoryUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Storage temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
