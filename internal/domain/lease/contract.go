package lease

import (
	"time"

	"github.com/google/uuid"
)

// Contract is a binding lease of an offer's resource for a sub-window of
// the offer's availability.
type Contract struct {
	id         uuid.UUID
	projectID  uuid.UUID
	offerID    uuid.UUID
	window     TimeWindow
	status     ContractStatus
	properties map[string]any
	createdAt  time.Time
	updatedAt  time.Time
}

func NewContract(
	projectID, offerID uuid.UUID,
	window TimeWindow,
	properties map[string]any,
) (*Contract, error) {
	if projectID == uuid.Nil {
		return nil, ErrMissingProject
	}
	if properties == nil {
		properties = map[string]any{}
	}

	return &Contract{
		id:         uuid.New(),
		projectID:  projectID,
		offerID:    offerID,
		window:     window,
		status:     ContractOpen,
		properties: properties,
	}, nil
}

func ReconstructContract(
	id, projectID, offerID uuid.UUID,
	window TimeWindow,
	status ContractStatus,
	properties map[string]any,
	createdAt, updatedAt time.Time,
) *Contract {
	return &Contract{
		id:         id,
		projectID:  projectID,
		offerID:    offerID,
		window:     window,
		status:     status,
		properties: properties,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (c *Contract) ID() uuid.UUID              { return c.id }
func (c *Contract) ProjectID() uuid.UUID       { return c.projectID }
func (c *Contract) OfferID() uuid.UUID         { return c.offerID }
func (c *Contract) Window() TimeWindow         { return c.window }
func (c *Contract) Status() ContractStatus     { return c.status }
func (c *Contract) Properties() map[string]any { return c.properties }
func (c *Contract) CreatedAt() time.Time       { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time       { return c.updatedAt }

func (c *Contract) IsHeldBy(projectID uuid.UUID) bool {
	return c.projectID == projectID
}

// Activate marks the lease as running once its start time arrives.
func (c *Contract) Activate() error {
	if c.status != ContractOpen {
		return ErrInvalidTransition
	}
	c.status = ContractActive
	return nil
}

// Fulfill is the normal completion at the contract's own end time.
func (c *Contract) Fulfill() error {
	if c.status != ContractActive {
		return ErrInvalidTransition
	}
	c.status = ContractFulfilled
	return nil
}

func (c *Contract) Cancel() error {
	if c.status != ContractOpen && c.status != ContractActive {
		return ErrInvalidTransition
	}
	c.status = ContractCancelled
	return nil
}

// Expire forces the contract out, regardless of its own end time. Used by
// the parent offer's expiry cascade and by administrative expiration.
func (c *Contract) Expire() error {
	if c.status.IsTerminal() {
		return ErrInvalidTransition
	}
	c.status = ContractExpired
	return nil
}

// DueForActivation reports whether an open contract's start has arrived.
func (c *Contract) DueForActivation(now time.Time) bool {
	return c.status == ContractOpen && !c.window.Start().After(now)
}

// DueForFulfillment reports whether a running contract's end has passed.
func (c *Contract) DueForFulfillment(now time.Time) bool {
	return c.status == ContractActive && !c.window.End().After(now)
}
