package components

import (
	"metalease/internal/pkg/clock"
	"metalease/internal/pkg/keylock"
	"metalease/internal/usecase/commands"
	"metalease/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	keylock.New,
	commands.NewConflictResolver,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOfferCommands,
		commands.NewContractCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLeaseQueries,
	),
)
