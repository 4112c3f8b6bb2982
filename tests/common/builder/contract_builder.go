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

type ContractBuilder struct {
	ProjectID  uuid.UUID
	OfferID    uuid.UUID
	Start      time.Time
	End        time.Time
	Properties map[string]any
}

func NewContractBuilder() *ContractBuilder {
	return &ContractBuilder{
		ProjectID:  uuid.New(),
		OfferID:    uuid.New(),
		Start:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		End:        time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		Properties: nil,
	}
}

func (b *ContractBuilder) With(mutate func(*ContractBuilder)) *ContractBuilder {
	mutate(b)
	return b
}

func (b *ContractBuilder) WithWindow(start, end time.Time) *ContractBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ContractBuilder) BuildDomain() (*lease.Contract, error) {
	window, err := lease.NewTimeWindow(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return lease.NewContract(b.ProjectID, b.OfferID, window, b.Properties)
}

func (b *ContractBuilder) BuildSpec() commands.FulfillOfferSpec {
	return commands.FulfillOfferSpec{
		StartTime:  b.Start,
		EndTime:    b.End,
		Properties: b.Properties,
	}
}

func (b *ContractBuilder) BuildFulfillRequestDTO() reqdto.FulfillOfferRequest {
	return reqdto.FulfillOfferRequest{
		StartTime:  b.Start,
		EndTime:    b.End,
		Properties: b.Properties,
	}
}

func (b *ContractBuilder) BuildReadModel() *readmodel.ContractRM {
	return &readmodel.ContractRM{
		ID:         uuid.New(),
		ProjectID:  b.ProjectID,
		OfferID:    b.OfferID,
		StartTime:  b.Start,
		EndTime:    b.End,
		Status:     lease.ContractOpen.String(),
		Properties: b.Properties,
	}
}
