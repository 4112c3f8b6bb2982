package lease

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingResource   = errors.New("resource identity is required")
	ErrMissingProject    = errors.New("owning project is required")
)

// Offer is a standing advertisement of a resource's availability window.
// Status is mutated only through the transition methods below.
type Offer struct {
	id           uuid.UUID
	projectID    uuid.UUID
	resourceType string
	resourceUUID uuid.UUID
	window       TimeWindow
	status       OfferStatus
	properties   map[string]any
	createdAt    time.Time
	updatedAt    time.Time
}

const DefaultResourceType = "baremetal_node"

func NewOffer(
	projectID uuid.UUID,
	resourceType string,
	resourceUUID uuid.UUID,
	window TimeWindow,
	properties map[string]any,
) (*Offer, error) {
	if projectID == uuid.Nil {
		return nil, ErrMissingProject
	}
	if resourceUUID == uuid.Nil {
		return nil, ErrMissingResource
	}
	if resourceType == "" {
		resourceType = DefaultResourceType
	}
	if properties == nil {
		properties = map[string]any{}
	}

	// Window validation is synchronous, so a new offer is admitted
	// directly to available.
	return &Offer{
		id:           uuid.New(),
		projectID:    projectID,
		resourceType: resourceType,
		resourceUUID: resourceUUID,
		window:       window,
		status:       OfferAvailable,
		properties:   properties,
	}, nil
}

func ReconstructOffer(
	id, projectID uuid.UUID,
	resourceType string,
	resourceUUID uuid.UUID,
	window TimeWindow,
	status OfferStatus,
	properties map[string]any,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:           id,
		projectID:    projectID,
		resourceType: resourceType,
		resourceUUID: resourceUUID,
		window:       window,
		status:       status,
		properties:   properties,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Offer) ID() uuid.UUID             { return o.id }
func (o *Offer) ProjectID() uuid.UUID      { return o.projectID }
func (o *Offer) ResourceType() string      { return o.resourceType }
func (o *Offer) ResourceUUID() uuid.UUID   { return o.resourceUUID }
func (o *Offer) Window() TimeWindow        { return o.window }
func (o *Offer) Status() OfferStatus       { return o.status }
func (o *Offer) Properties() map[string]any { return o.properties }
func (o *Offer) CreatedAt() time.Time      { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time      { return o.updatedAt }

func (o *Offer) IsOwnedBy(projectID uuid.UUID) bool {
	return o.projectID == projectID
}

// Tenancy reads the fulfillment policy from the property bag. Unknown or
// missing values fall back to shared.
func (o *Offer) Tenancy() Tenancy {
	v, ok := o.properties["tenancy"].(string)
	if ok && Tenancy(v) == TenancySingle {
		return TenancySingle
	}
	return TenancyShared
}

// Fulfillable reports whether the offer can still admit contracts.
func (o *Offer) Fulfillable() bool {
	return o.status == OfferCreated || o.status == OfferAvailable
}

// Validate moves a deferred-validation offer into circulation.
func (o *Offer) Validate() error {
	if o.status != OfferCreated {
		return ErrInvalidTransition
	}
	o.status = OfferAvailable
	return nil
}

func (o *Offer) Fulfill() error {
	if o.status != OfferAvailable {
		return ErrInvalidTransition
	}
	o.status = OfferFulfilled
	return nil
}

// Cancel is the explicit owner action. The caller is responsible for
// ensuring no non-terminal contract still references the offer.
func (o *Offer) Cancel() error {
	if o.status != OfferCreated && o.status != OfferAvailable {
		return ErrInvalidTransition
	}
	o.status = OfferCancelled
	return nil
}

func (o *Offer) Expire() error {
	if o.status.IsTerminal() {
		return ErrInvalidTransition
	}
	o.status = OfferExpired
	return nil
}

// DueForExpiry reports whether the offer's end has passed and it is not
// yet terminal.
func (o *Offer) DueForExpiry(now time.Time) bool {
	return !o.status.IsTerminal() && !o.window.End().After(now)
}
