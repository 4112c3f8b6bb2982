package api

import (
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

type OfferHandler struct {
	offerCommands commands.OfferCommands
	leaseQueries  queries.LeaseQueries
}

func NewOfferHandler(offerCommands commands.OfferCommands, leaseQueries queries.LeaseQueries) *OfferHandler {
	return &OfferHandler{
		offerCommands: offerCommands,
		leaseQueries:  leaseQueries,
	}
}

// @Summary Create offer
// @Description Publish a resource's availability window
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetProjectID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	rm, err := h.offerCommands.CreateOffer(c.Request.Context(), actor, req.ToSpec())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOfferRM(rm))
}

// @Summary Get offer
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} map[string]string
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rm, err := h.leaseQueries.GetOffer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferRM(rm))
}

// @Summary List offers
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param resource_uuid query string false "Filter by resource"
// @Param project_id query string false "Filter by owning project"
// @Success 200 {object} resdto.OfferListResponse
// @Router /offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	filter, err := offerFilterFromQuery(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	rms, err := h.leaseQueries.ListOffers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferRMs(rms))
}

// @Summary Cancel offer
// @Description Withdraw an offer; rejected while live contracts reference it
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id} [delete]
func (h *OfferHandler) Cancel(c *gin.Context) {
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

	rm, err := h.offerCommands.CancelOffer(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferRM(rm))
}

func offerFilterFromQuery(c *gin.Context) (queries.OfferListFilter, error) {
	var filter queries.OfferListFilter

	if raw := c.Query("status"); raw != "" {
		filter.Status = &raw
	}
	if raw := c.Query("resource_uuid"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidQueryParam("resource_uuid")
		}
		filter.ResourceUUID = &id
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errInvalidQueryParam("project_id")
		}
		filter.ProjectID = &id
	}
	return filter, nil
}
