package components

import (
	"context"
	"log/slog"

	"metalease/internal/infra/db"
	"metalease/internal/infra/memrepo"
	"metalease/internal/infra/publisher"
	"metalease/internal/infra/repository"
	"metalease/internal/pkg/clock"
	"metalease/internal/pkg/config"
	"metalease/internal/pkg/errs"
	"metalease/internal/usecase/commands"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewRepositories,
		NewMarketplacePublisher,
	),
)

type Repositories struct {
	fx.Out

	Offers    commands.OfferRepository
	Contracts commands.ContractRepository
}

// NewRepositories selects the persistence backend from DB_DRIVER. The
// memory backend exists for demos and tests; postgres is the default.
func NewRepositories(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (Repositories, error) {
	switch cfg.DB.Driver {
	case "memory":
		store := memrepo.NewStore(clk)
		return Repositories{
			Offers:    store.Offers(),
			Contracts: store.Contracts(),
		}, nil
	case "postgres":
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return Repositories{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return Repositories{
			Offers:    repository.NewOfferRepository(pool),
			Contracts: repository.NewContractRepository(pool),
		}, nil
	default:
		return Repositories{}, errs.Newf("unknown DB_DRIVER %q", cfg.DB.Driver)
	}
}

// NewMarketplacePublisher connects to NATS when MARKET_NATS_URL is set,
// otherwise publish intents are dropped silently.
func NewMarketplacePublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.MarketplacePublisher, error) {
	if cfg.Market.NATSURL == "" {
		return publisher.NewNoopPublisher(), nil
	}

	pub, err := publisher.NewNATSPublisher(cfg.Market, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pub.Close()
			return nil
		},
	})
	return pub, nil
}
