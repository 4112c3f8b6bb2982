//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"metalease/internal/domain/lease"
	"metalease/internal/infra/memrepo"
	"metalease/internal/pkg/clock"
	"metalease/internal/pkg/keylock"
	"metalease/internal/usecase/commands"
	"metalease/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

// capturingPublisher records publish intents and optionally fails.
type capturingPublisher struct {
	published []*readmodel.OfferRM
	err       error
}

func (p *capturingPublisher) PublishOfferCreated(_ context.Context, offer *readmodel.OfferRM) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, offer)
	return nil
}

type fixture struct {
	clk       *clock.MockClock
	store     *memrepo.Store
	publisher *capturingPublisher
	locks     *keylock.KeyLock
	logger    *slog.Logger

	offerCmds    commands.OfferCommands
	contractCmds commands.ContractCommands
	sweepCmds    commands.SweepCommands

	offerRepo    commands.OfferRepository
	contractRepo commands.ContractRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clk := clock.NewMockClock(at(9, 0))
	store := memrepo.NewStore(clk)
	pub := &capturingPublisher{}
	locks := keylock.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	offerRepo := store.Offers()
	contractRepo := store.Contracts()
	resolver := commands.NewConflictResolver(contractRepo)

	return &fixture{
		clk:          clk,
		store:        store,
		publisher:    pub,
		locks:        locks,
		logger:       logger,
		offerCmds:    commands.NewOfferCommands(offerRepo, contractRepo, pub, locks, logger),
		contractCmds: commands.NewContractCommands(offerRepo, contractRepo, resolver, locks, logger),
		sweepCmds:    commands.NewSweepCommands(offerRepo, contractRepo, locks, logger),
		offerRepo:    offerRepo,
		contractRepo: contractRepo,
	}
}

// staleOfferFinder delegates to the wrapped repository but runs race once,
// right after the first Find captured its snapshot. The caller gets the
// pre-race copy, simulating a concurrent writer between read and lock.
type staleOfferFinder struct {
	commands.OfferRepository
	once sync.Once
	race func()
}

func (r *staleOfferFinder) Find(ctx context.Context, id uuid.UUID) (*lease.Offer, error) {
	offer, err := r.OfferRepository.Find(ctx, id)
	r.once.Do(r.race)
	return offer, err
}

type staleContractFinder struct {
	commands.ContractRepository
	once sync.Once
	race func()
}

func (r *staleContractFinder) Find(ctx context.Context, id uuid.UUID) (*lease.Contract, error) {
	contract, err := r.ContractRepository.Find(ctx, id)
	r.once.Do(r.race)
	return contract, err
}

// staleContractLister runs race once after the first List, so the listing
// predates whatever race changed.
type staleContractLister struct {
	commands.ContractRepository
	once sync.Once
	race func()
}

func (r *staleContractLister) List(ctx context.Context, filter commands.ContractFilter) ([]*lease.Contract, error) {
	contracts, err := r.ContractRepository.List(ctx, filter)
	r.once.Do(r.race)
	return contracts, err
}

func (f *fixture) createOffer(t *testing.T, owner uuid.UUID, start, end time.Time, properties map[string]any) *readmodel.OfferRM {
	t.Helper()
	rm, err := f.offerCmds.CreateOffer(context.Background(), owner, commands.CreateOfferSpec{
		ResourceUUID: uuid.New(),
		StartTime:    start,
		EndTime:      end,
		Properties:   properties,
	})
	require.NoError(t, err)
	return rm
}

func (f *fixture) fulfill(t *testing.T, holder, offerID uuid.UUID, start, end time.Time) *readmodel.ContractRM {
	t.Helper()
	rm, err := f.contractCmds.FulfillOffer(context.Background(), holder, offerID, commands.FulfillOfferSpec{
		StartTime: start,
		EndTime:   end,
	})
	require.NoError(t, err)
	return rm
}

func (f *fixture) offerStatus(t *testing.T, id uuid.UUID) lease.OfferStatus {
	t.Helper()
	offer, err := f.offerRepo.Find(context.Background(), id)
	require.NoError(t, err)
	return offer.Status()
}

func (f *fixture) contractStatus(t *testing.T, id uuid.UUID) lease.ContractStatus {
	t.Helper()
	contract, err := f.contractRepo.Find(context.Background(), id)
	require.NoError(t, err)
	return contract.Status()
}

func (f *fixture) contractCount(t *testing.T) int {
	t.Helper()
	all, err := f.contractRepo.List(context.Background(), commands.ContractFilter{})
	require.NoError(t, err)
	return len(all)
}
