package publisher

import (
	"context"

	"metalease/internal/usecase/readmodel"
)

// NoopPublisher stands in when no marketplace NATS URL is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishOfferCreated(_ context.Context, _ *readmodel.OfferRM) error {
	return nil
}
