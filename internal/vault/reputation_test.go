package vault_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublime247/Lumenpulse/internal/vault"
)

func TestRegisterContributor(t *testing.T) {
	f := newFixture(t).initialized(t)

	require.NoError(t, f.vault.RegisterContributor(user))

	rep, err := f.vault.GetReputation(user)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rep.Int64())
}

func TestRegisterContributorTwiceFails(t *testing.T) {
	f := newFixture(t).initialized(t)

	require.NoError(t, f.vault.RegisterContributor(user))
	assert.ErrorIs(t, f.vault.RegisterContributor(user), vault.ErrAlreadyRegistered)
}

func TestReputationAccumulatesSignedDeltas(t *testing.T) {
	f := newFixture(t).initialized(t)
	require.NoError(t, f.vault.RegisterContributor(user))

	require.NoError(t, f.vault.UpdateReputation(admin, user, big.NewInt(100)))
	require.NoError(t, f.vault.UpdateReputation(admin, user, big.NewInt(-50)))

	rep, err := f.vault.GetReputation(user)
	require.NoError(t, err)
	assert.Equal(t, int64(50), rep.Int64())

	// No floor: reputation may go negative.
	require.NoError(t, f.vault.UpdateReputation(admin, user, big.NewInt(-80)))
	rep, _ = f.vault.GetReputation(user)
	assert.Equal(t, int64(-30), rep.Int64())
}

func TestReputationUnregisteredContributor(t *testing.T) {
	f := newFixture(t).initialized(t)

	_, err := f.vault.GetReputation(user)
	assert.ErrorIs(t, err, vault.ErrContributorNotFound)

	err = f.vault.UpdateReputation(admin, user, big.NewInt(10))
	assert.ErrorIs(t, err, vault.ErrContributorNotFound)
}
