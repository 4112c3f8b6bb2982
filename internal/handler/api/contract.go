package api

import (
	"fmt"
	"net/http"

	reqdto "metalease/internal/handler/dto/request"
	resdto "metalease/internal/handler/dto/response"
	"metalease/internal/handler/httperr"
	"metalease/internal/handler/middleware"
	"metalease/internal/usecase/commands"
	"metalease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContractHandler struct {
	contractCommands commands.ContractCommands
	leaseQueries     queries.LeaseQueries
}

func NewContractHandler(contractCommands commands.ContractCommands, leaseQueries queries.LeaseQueries) *ContractHandler {
	return &ContractHandler{
		contractCommands: contractCommands,
		leaseQueries:     leaseQueries,
	}
}

// @Summary Fulfill offer
// @Description Convert an offer into a binding contract for a sub-window
// @Tags contracts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.FulfillOfferRequest true "Contract request"
// @Success 201 {object} resdto.ContractResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id}/contracts [post]
func (h *ContractHandler) Fulfill(c *gin.Context) {
	actor, ok := middleware.GetProjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.FulfillOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	rm, err := h.contractCommands.FulfillOffer(c.Request.Context(), actor, offerID, req.ToSpec())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromContractRM(rm))
}

// @Summary Get contract
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 404 {object} map[string]string
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.leaseQueries.GetContract(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractRM(rm))
}

// @Summary List contracts
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param offer_uuid query string false "Filter by originating offer"
// @Success 200 {object} resdto.ContractListResponse
// @Router /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	filter, err := contractFilterFromQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	rms, err := h.leaseQueries.ListContracts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractRMs(rms))
}

// @Summary Cancel contract
// @Description Release a lease; permitted for the holder or the offer owner
// @Tags contracts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 200 {object} resdto.ContractResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetProjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.contractCommands.CancelContract(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContractRM(rm))
}

func contractFilterFromQuery(c *gin.Context) (queries.ContractListFilter, error) {
	var filter queries.ContractListFilter

	if raw := c.Query("status"); raw != "" {
		filter.Status = &raw
	}
	if raw := c.Query("offer_uuid"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidQueryParam("offer_uuid")
		}
		filter.OfferID = &id
	}
	return filter, nil
}

func errInvalidQueryParam(name string) error {
	return fmt.Errorf("invalid query parameter %q", name)
}
