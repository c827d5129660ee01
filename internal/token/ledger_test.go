package token

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublime247/Lumenpulse/internal/auth"
	"github.com/sublime247/Lumenpulse/internal/store"
)

var (
	asset   = common.HexToAddress("0xA0")
	tokAdm  = common.HexToAddress("0x01")
	alice   = common.HexToAddress("0x02")
	bob     = common.HexToAddress("0x03")
	spender = common.HexToAddress("0x04")
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger(store.NewMemoryStore(), auth.AllowAll{})
	require.NoError(t, l.Initialize(asset, tokAdm, 7, "Lumen", "LMN"))
	return l
}

func TestInitializeAndMetadata(t *testing.T) {
	l := newTestLedger(t)

	meta, err := l.AssetMetadata(asset)
	require.NoError(t, err)
	assert.Equal(t, tokAdm, meta.Admin)
	assert.Equal(t, uint32(7), meta.Decimals)
	assert.Equal(t, "Lumen", meta.Name)
	assert.Equal(t, "LMN", meta.Symbol)

	assert.ErrorIs(t, l.Initialize(asset, tokAdm, 7, "Lumen", "LMN"), ErrAlreadyInitialized)
}

func TestUnknownAssetFails(t *testing.T) {
	l := NewLedger(store.NewMemoryStore(), auth.AllowAll{})

	_, err := l.Balance(asset, alice)
	assert.ErrorIs(t, err, ErrTokenNotFound)
	assert.ErrorIs(t, l.Mint(asset, alice, big.NewInt(1)), ErrTokenNotFound)
}

func TestMintAndTransfer(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(1000)))

	require.NoError(t, l.Transfer(asset, alice, bob, big.NewInt(400)))

	aliceBal, err := l.Balance(asset, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(600), aliceBal.Int64())

	bobBal, err := l.Balance(asset, bob)
	require.NoError(t, err)
	assert.Equal(t, int64(400), bobBal.Int64())
}

func TestTransferTxStagesWithoutCommitting(t *testing.T) {
	kv := store.NewMemoryStore()
	l := NewLedger(kv, auth.AllowAll{})
	require.NoError(t, l.Initialize(asset, tokAdm, 7, "Lumen", "LMN"))
	require.NoError(t, l.Mint(asset, alice, big.NewInt(100)))

	tx := store.NewTx(kv)
	require.NoError(t, l.TransferTx(tx, asset, alice, bob, big.NewInt(40)))

	// Nothing moves until the caller commits the transaction.
	balance, _ := l.Balance(asset, bob)
	assert.Equal(t, int64(0), balance.Int64())

	require.NoError(t, tx.Commit())
	balance, _ = l.Balance(asset, bob)
	assert.Equal(t, int64(40), balance.Int64())
	balance, _ = l.Balance(asset, alice)
	assert.Equal(t, int64(60), balance.Int64())
}

func TestTransferInsufficientBalance(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(100)))

	err := l.Transfer(asset, alice, bob, big.NewInt(101))
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	// Failed transfer must leave both balances untouched.
	aliceBal, _ := l.Balance(asset, alice)
	bobBal, _ := l.Balance(asset, bob)
	assert.Equal(t, int64(100), aliceBal.Int64())
	assert.Equal(t, int64(0), bobBal.Int64())
}

func TestInvalidAmounts(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(100)))

	assert.ErrorIs(t, l.Transfer(asset, alice, bob, big.NewInt(0)), ErrInvalidAmount)
	assert.ErrorIs(t, l.Transfer(asset, alice, bob, big.NewInt(-5)), ErrInvalidAmount)
	assert.ErrorIs(t, l.Mint(asset, alice, big.NewInt(-1)), ErrInvalidAmount)
	assert.ErrorIs(t, l.Burn(asset, alice, big.NewInt(0)), ErrInvalidAmount)
}

func TestAmountsBeyondSigned128BitRangeRejected(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(100)))

	huge := new(big.Int).Lsh(big.NewInt(1), 130)
	assert.ErrorIs(t, l.Mint(asset, alice, huge), ErrInvalidAmount)
	assert.ErrorIs(t, l.Transfer(asset, alice, bob, huge), ErrInvalidAmount)
	assert.ErrorIs(t, l.Approve(asset, alice, spender, huge, time.Now().Add(time.Hour).Unix()), ErrInvalidAmount)
	assert.ErrorIs(t, l.Burn(asset, alice, huge), ErrInvalidAmount)

	balance, _ := l.Balance(asset, alice)
	assert.Equal(t, int64(100), balance.Int64())
}

func TestFreezeBlocksSpendAndReceive(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(100)))
	require.NoError(t, l.Mint(asset, bob, big.NewInt(100)))

	require.NoError(t, l.Freeze(asset, alice))

	assert.ErrorIs(t, l.Transfer(asset, alice, bob, big.NewInt(10)), ErrAccountFrozen)
	assert.ErrorIs(t, l.Transfer(asset, bob, alice, big.NewInt(10)), ErrAccountFrozen)

	frozen, err := l.IsFrozen(asset, alice)
	require.NoError(t, err)
	assert.True(t, frozen)

	require.NoError(t, l.Unfreeze(asset, alice))
	assert.NoError(t, l.Transfer(asset, alice, bob, big.NewInt(10)))
}

func TestAllowanceFlow(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(500)))

	expiry := time.Now().Add(time.Hour).Unix()
	require.NoError(t, l.Approve(asset, alice, spender, big.NewInt(300), expiry))

	allowance, err := l.Allowance(asset, alice, spender)
	require.NoError(t, err)
	assert.Equal(t, int64(300), allowance.Int64())

	require.NoError(t, l.TransferFrom(asset, spender, alice, bob, big.NewInt(200)))

	allowance, _ = l.Allowance(asset, alice, spender)
	assert.Equal(t, int64(100), allowance.Int64())

	err = l.TransferFrom(asset, spender, alice, bob, big.NewInt(200))
	assert.ErrorIs(t, err, ErrInsufficientAllowance)
}

func TestExpiredAllowance(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(500)))

	expired := time.Now().Add(-time.Hour).Unix()
	require.NoError(t, l.Approve(asset, alice, spender, big.NewInt(300), expired))

	err := l.TransferFrom(asset, spender, alice, bob, big.NewInt(100))
	assert.ErrorIs(t, err, ErrAllowanceExpired)
}

func TestBurnFrom(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(asset, alice, big.NewInt(500)))

	expiry := time.Now().Add(time.Hour).Unix()
	require.NoError(t, l.Approve(asset, alice, spender, big.NewInt(100), expiry))
	require.NoError(t, l.BurnFrom(asset, spender, alice, big.NewInt(100)))

	balance, _ := l.Balance(asset, alice)
	assert.Equal(t, int64(400), balance.Int64())
}

func TestConsentRequired(t *testing.T) {
	consent := auth.NewConsentSet(tokAdm, alice)
	l := NewLedger(store.NewMemoryStore(), consent)
	require.NoError(t, l.Initialize(asset, tokAdm, 7, "Lumen", "LMN"))
	require.NoError(t, l.Mint(asset, bob, big.NewInt(100)))

	// bob never consented, so he cannot spend.
	assert.ErrorIs(t, l.Transfer(asset, bob, alice, big.NewInt(10)), ErrUnauthorized)

	consent.Grant(bob)
	assert.NoError(t, l.Transfer(asset, bob, alice, big.NewInt(10)))
}

func TestSetAdmin(t *testing.T) {
	consent := auth.NewConsentSet(tokAdm)
	l := NewLedger(store.NewMemoryStore(), consent)
	require.NoError(t, l.Initialize(asset, tokAdm, 7, "Lumen", "LMN"))

	require.NoError(t, l.SetAdmin(asset, alice))

	// Old admin can no longer mint once consent moves to the new admin.
	consent.Revoke(tokAdm)
	consent.Grant(alice)
	assert.NoError(t, l.Mint(asset, bob, big.NewInt(1)))
}
