//go:build unit || e2e

package builder

import (
	"time"

	"metalease/internal/domain/lease"
	reqdto "metalease/internal/handler/dto/request"
	"metalease/internal/usecase/commands"
	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ProjectID    uuid.UUID
	ResourceType string
	ResourceUUID uuid.UUID
	Start        time.Time
	End          time.Time
	Properties   map[string]any
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ProjectID:    uuid.New(),
		ResourceType: lease.DefaultResourceType,
		ResourceUUID: uuid.New(),
		Start:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		End:          time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Properties:   nil,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithWindow(start, end time.Time) *OfferBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *OfferBuilder) WithTenancy(t lease.Tenancy) *OfferBuilder {
	if b.Properties == nil {
		b.Properties = map[string]any{}
	}
	b.Properties["tenancy"] = string(t)
	return b
}

func (b *OfferBuilder) BuildDomain() (*lease.Offer, error) {
	window, err := lease.NewTimeWindow(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return lease.NewOffer(b.ProjectID, b.ResourceType, b.ResourceUUID, window, b.Properties)
}

func (b *OfferBuilder) BuildSpec() commands.CreateOfferSpec {
	return commands.CreateOfferSpec{
		ResourceType: b.ResourceType,
		ResourceUUID: b.ResourceUUID,
		StartTime:    b.Start,
		EndTime:      b.End,
		Properties:   b.Properties,
	}
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		ResourceType: b.ResourceType,
		ResourceUUID: b.ResourceUUID,
		StartTime:    b.Start,
		EndTime:      b.End,
		Properties:   b.Properties,
	}
}

func (b *OfferBuilder) BuildReadModel() *readmodel.OfferRM {
	return &readmodel.OfferRM{
		ID:           uuid.New(),
		ProjectID:    b.ProjectID,
		ResourceType: b.ResourceType,
		ResourceUUID: b.ResourceUUID,
		StartTime:    b.Start,
		EndTime:      b.End,
		Status:       lease.OfferAvailable.String(),
		Properties:   b.Properties,
	}
}
