package response

import (
	"time"

	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OfferResponse struct {
	ID           uuid.UUID      `json:"id"`
	ProjectID    uuid.UUID      `json:"projectId"`
	ResourceType string         `json:"resourceType"`
	ResourceUUID uuid.UUID      `json:"resourceUuid"`
	StartTime    time.Time      `json:"startTime"`
	EndTime      time.Time      `json:"endTime"`
	Status       string         `json:"status"`
	Properties   map[string]any `json:"properties"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
}

func FromOfferRM(rm *readmodel.OfferRM) OfferResponse {
	return OfferResponse{
		ID:           rm.ID,
		ProjectID:    rm.ProjectID,
		ResourceType: rm.ResourceType,
		ResourceUUID: rm.ResourceUUID,
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		Status:       rm.Status,
		Properties:   rm.Properties,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromOfferRMs(rms []*readmodel.OfferRM) OfferListResponse {
	offers := make([]OfferResponse, len(rms))
	for i, rm := range rms {
		offers[i] = FromOfferRM(rm)
	}
	return OfferListResponse{Offers: offers}
}
