package components

import (
	"context"
	"log/slog"

	"metalease/internal/pkg/clock"
	"metalease/internal/pkg/config"
	"metalease/internal/usecase/commands"
	"metalease/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(registerSweeper),
)

func NewSweeper(cfg config.Config, sweep commands.SweepCommands, clk clock.Clock, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(sweep, clk, cfg.Sweep.Interval, logger)
}

func registerSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
