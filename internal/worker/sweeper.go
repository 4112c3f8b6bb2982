// Package worker hosts the periodic expiration sweeper. The lease engine
// owns no clock loop of its own; this ticker is the external scheduler
// that drives ExpireDue.
package worker

import (
	"context"
	"log/slog"
	"time"

	"metalease/internal/pkg/clock"
	"metalease/internal/usecase/commands"
)

type Sweeper struct {
	sweep    commands.SweepCommands
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(sweep commands.SweepCommands, clk clock.Clock, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		sweep:    sweep,
		clock:    clk,
		interval: interval,
		logger:   logger,
	}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	now := s.clock.Now()
	result, err := s.sweep.ExpireDue(ctx, now)
	if err != nil {
		s.logger.Error("expiration sweep failed", "now", now, "error", err.Error())
		return
	}
	if result.Empty() {
		return
	}
	s.logger.Info("expiration sweep completed",
		"now", now,
		"activated_contracts", len(result.ActivatedContracts),
		"fulfilled_contracts", len(result.FulfilledContracts),
		"expired_contracts", len(result.ExpiredContracts),
		"expired_offers", len(result.ExpiredOffers))
}
