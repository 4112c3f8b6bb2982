package response

import (
	"time"

	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ContractResponse struct {
	ID         uuid.UUID      `json:"id"`
	ProjectID  uuid.UUID      `json:"projectId"`
	OfferID    uuid.UUID      `json:"offerId"`
	StartTime  time.Time      `json:"startTime"`
	EndTime    time.Time      `json:"endTime"`
	Status     string         `json:"status"`
	Properties map[string]any `json:"properties"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

func FromContractRM(rm *readmodel.ContractRM) ContractResponse {
	return ContractResponse{
		ID:         rm.ID,
		ProjectID:  rm.ProjectID,
		OfferID:    rm.OfferID,
		StartTime:  rm.StartTime,
		EndTime:    rm.EndTime,
		Status:     rm.Status,
		Properties: rm.Properties,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromContractRMs(rms []*readmodel.ContractRM) ContractListResponse {
	contracts := make([]ContractResponse, len(rms))
	for i, rm := range rms {
		contracts[i] = FromContractRM(rm)
	}
	return ContractListResponse{Contracts: contracts}
}
