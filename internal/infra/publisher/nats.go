// Package publisher emits marketplace publish-intent events for newly
// created offers. Emission is post-commit and best-effort: the engine
// never rolls back an offer because the marketplace was unreachable.
package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"metalease/internal/pkg/config"
	"metalease/internal/usecase/readmodel"

	"github.com/nats-io/nats.go"
)

// marketOffer is the offer snapshot reshaped into the marketplace's field
// names. Cost comes from the floor_price property, 0 when unset.
type marketOffer struct {
	ProviderOfferID string         `json:"provider_offer_id"`
	ProjectID       string         `json:"project_id"`
	ServerID        string         `json:"server_id"`
	StartTime       string         `json:"start_time"`
	EndTime         string         `json:"end_time"`
	Cost            float64        `json:"cost"`
	Properties      map[string]any `json:"properties"`
}

type NATSPublisher struct {
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
}

func NewNATSPublisher(cfg config.MarketConfig, logger *slog.Logger) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("metalease"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}
	nc, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, err
	}
	return &NATSPublisher{nc: nc, subject: cfg.Subject, logger: logger}, nil
}

func (p *NATSPublisher) PublishOfferCreated(_ context.Context, offer *readmodel.OfferRM) error {
	payload, err := json.Marshal(toMarketOffer(offer))
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, payload)
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

func toMarketOffer(offer *readmodel.OfferRM) marketOffer {
	cost := 0.0
	switch v := offer.Properties["floor_price"].(type) {
	case float64:
		cost = v
	case int:
		cost = float64(v)
	}

	return marketOffer{
		ProviderOfferID: offer.ID.String(),
		ProjectID:       offer.ProjectID.String(),
		ServerID:        offer.ResourceUUID.String(),
		StartTime:       offer.StartTime.Format(time.RFC3339),
		EndTime:         offer.EndTime.Format(time.RFC3339),
		Cost:            cost,
		Properties:      offer.Properties,
	}
}
