package request

import (
	"time"

	"metalease/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	ResourceType string         `json:"resource_type"`
	ResourceUUID uuid.UUID      `json:"resource_uuid" binding:"required"`
	StartTime    time.Time      `json:"start_time" binding:"required"`
	EndTime      time.Time      `json:"end_time" binding:"required"`
	Properties   map[string]any `json:"properties,omitempty"`
}

func (r CreateOfferRequest) ToSpec() commands.CreateOfferSpec {
	return commands.CreateOfferSpec{
		ResourceType: r.ResourceType,
		ResourceUUID: r.ResourceUUID,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Properties:   r.Properties,
	}
}
