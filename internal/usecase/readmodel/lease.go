package readmodel

import (
	"time"

	"metalease/internal/domain/lease"

	"github.com/google/uuid"
)

type OfferRM struct {
	ID           uuid.UUID      `json:"id"`
	ProjectID    uuid.UUID      `json:"project_id"`
	ResourceType string         `json:"resource_type"`
	ResourceUUID uuid.UUID      `json:"resource_uuid"`
	StartTime    time.Time      `json:"start_time"`
	EndTime      time.Time      `json:"end_time"`
	Status       string         `json:"status"`
	Properties   map[string]any `json:"properties"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type ContractRM struct {
	ID         uuid.UUID      `json:"id"`
	ProjectID  uuid.UUID      `json:"project_id"`
	OfferID    uuid.UUID      `json:"offer_id"`
	StartTime  time.Time      `json:"start_time"`
	EndTime    time.Time      `json:"end_time"`
	Status     string         `json:"status"`
	Properties map[string]any `json:"properties"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func FromOffer(o *lease.Offer) *OfferRM {
	return &OfferRM{
		ID:           o.ID(),
		ProjectID:    o.ProjectID(),
		ResourceType: o.ResourceType(),
		ResourceUUID: o.ResourceUUID(),
		StartTime:    o.Window().Start(),
		EndTime:      o.Window().End(),
		Status:       o.Status().String(),
		Properties:   o.Properties(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func FromContract(c *lease.Contract) *ContractRM {
	return &ContractRM{
		ID:         c.ID(),
		ProjectID:  c.ProjectID(),
		OfferID:    c.OfferID(),
		StartTime:  c.Window().Start(),
		EndTime:    c.Window().End(),
		Status:     c.Status().String(),
		Properties: c.Properties(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}
