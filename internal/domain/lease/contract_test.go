//go:build unit

package lease_test

import (
	"testing"

	"metalease/internal/domain/lease"
	"metalease/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContract(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewContractBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, lease.ContractOpen, actual.Status())
		assert.NotNil(t, actual.Properties())
	})

	t.Run("missing project is rejected", func(t *testing.T) {
		_, err := builder.NewContractBuilder().
			With(func(b *builder.ContractBuilder) { b.ProjectID = uuid.Nil }).
			BuildDomain()
		require.ErrorIs(t, err, lease.ErrMissingProject)
	})
}

func TestContractTransitions(t *testing.T) {
	newContract := func(t *testing.T) *lease.Contract {
		t.Helper()
		contract, err := builder.NewContractBuilder().BuildDomain()
		require.NoError(t, err)
		return contract
	}

	t.Run("full lifecycle open to fulfilled", func(t *testing.T) {
		contract := newContract(t)
		require.NoError(t, contract.Activate())
		assert.Equal(t, lease.ContractActive, contract.Status())
		require.NoError(t, contract.Fulfill())
		assert.Equal(t, lease.ContractFulfilled, contract.Status())
	})

	t.Run("fulfill requires active", func(t *testing.T) {
		contract := newContract(t)
		require.ErrorIs(t, contract.Fulfill(), lease.ErrInvalidTransition)
	})

	t.Run("cancel from open", func(t *testing.T) {
		contract := newContract(t)
		require.NoError(t, contract.Cancel())
		assert.Equal(t, lease.ContractCancelled, contract.Status())
	})

	t.Run("cancel from active", func(t *testing.T) {
		contract := newContract(t)
		require.NoError(t, contract.Activate())
		require.NoError(t, contract.Cancel())
		assert.Equal(t, lease.ContractCancelled, contract.Status())
	})

	t.Run("cancel after fulfillment is rejected", func(t *testing.T) {
		contract := newContract(t)
		require.NoError(t, contract.Activate())
		require.NoError(t, contract.Fulfill())
		require.ErrorIs(t, contract.Cancel(), lease.ErrInvalidTransition)
	})

	t.Run("expire forces out open and active", func(t *testing.T) {
		open := newContract(t)
		require.NoError(t, open.Expire())
		assert.Equal(t, lease.ContractExpired, open.Status())

		active := newContract(t)
		require.NoError(t, active.Activate())
		require.NoError(t, active.Expire())
		assert.Equal(t, lease.ContractExpired, active.Status())
	})

	t.Run("expire of a terminal contract is rejected", func(t *testing.T) {
		contract := newContract(t)
		require.NoError(t, contract.Cancel())
		require.ErrorIs(t, contract.Expire(), lease.ErrInvalidTransition)
	})
}

func TestContractDueHelpers(t *testing.T) {
	contract, err := builder.NewContractBuilder().WithWindow(at(10, 0), at(11, 0)).BuildDomain()
	require.NoError(t, err)

	assert.False(t, contract.DueForActivation(at(9, 59)))
	assert.True(t, contract.DueForActivation(at(10, 0)))
	assert.False(t, contract.DueForFulfillment(at(11, 0)))

	require.NoError(t, contract.Activate())
	assert.False(t, contract.DueForActivation(at(10, 0)))
	assert.False(t, contract.DueForFulfillment(at(10, 59)))
	assert.True(t, contract.DueForFulfillment(at(11, 0)))
}
