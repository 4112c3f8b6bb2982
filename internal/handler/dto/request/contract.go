package request

import (
	"time"

	"metalease/internal/usecase/commands"
)

type FulfillOfferRequest struct {
	StartTime  time.Time      `json:"start_time" binding:"required"`
	EndTime    time.Time      `json:"end_time" binding:"required"`
	Properties map[string]any `json:"properties,omitempty"`
}

func (r FulfillOfferRequest) ToSpec() commands.FulfillOfferSpec {
	return commands.FulfillOfferSpec{
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Properties: r.Properties,
	}
}
