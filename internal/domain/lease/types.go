package lease

type OfferStatus string

const (
	OfferCreated   OfferStatus = "created"
	OfferAvailable OfferStatus = "available"
	OfferFulfilled OfferStatus = "fulfilled"
	OfferExpired   OfferStatus = "expired"
	OfferCancelled OfferStatus = "cancelled"
)

func (s OfferStatus) String() string {
	return string(s)
}

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferCreated, OfferAvailable, OfferFulfilled, OfferExpired, OfferCancelled:
		return true
	default:
		return false
	}
}

func (s OfferStatus) IsTerminal() bool {
	return s == OfferExpired || s == OfferCancelled
}

type ContractStatus string

const (
	ContractOpen      ContractStatus = "open"
	ContractActive    ContractStatus = "active"
	ContractFulfilled ContractStatus = "fulfilled"
	ContractExpired   ContractStatus = "expired"
	ContractCancelled ContractStatus = "cancelled"
)

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractOpen, ContractActive, ContractFulfilled, ContractExpired, ContractCancelled:
		return true
	default:
		return false
	}
}

func (s ContractStatus) IsTerminal() bool {
	return s == ContractFulfilled || s == ContractExpired || s == ContractCancelled
}

// Tenancy is the offer fulfillment policy, read from the "tenancy"
// property: a single-tenant offer is fulfilled by its first contract, a
// shared offer once contracts cover its full window.
type Tenancy string

const (
	TenancySingle Tenancy = "single"
	TenancyShared Tenancy = "shared"
)
