// Package token implements the fungible-asset ledger the vault draws on
// for custody: per-address balances, admin-minted supply, transfers,
// expiring allowances, and an admin freeze switch. One Ledger serves any
// number of assets, each with its own admin and metadata.
package token

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/auth"
	"github.com/sublime247/Lumenpulse/internal/store"
)

// Metadata describes one asset on the ledger.
type Metadata struct {
	Admin    common.Address `json:"admin"`
	Decimals uint32         `json:"decimals"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
}

type allowanceValue struct {
	Amount    string `json:"amount"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds; spends past this fail
}

// Ledger is the asset ledger. All mutating calls are serialized by one
// mutex and commit their writes atomically, mirroring the vault's
// single-call-at-a-time model.
type Ledger struct {
	mu    sync.Mutex
	store store.Store
	auth  auth.Authorizer
	now   func() time.Time
}

// NewLedger creates a ledger over the given store and consent collaborator.
func NewLedger(s store.Store, a auth.Authorizer) *Ledger {
	return &Ledger{store: s, auth: a, now: time.Now}
}

// Initialize registers an asset with its admin and metadata.
func (l *Ledger) Initialize(asset, admin common.Address, decimals uint32, name, symbol string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if tx.Has(store.Persistent, metadataKey(asset)) {
		return ErrAlreadyInitialized
	}
	if !l.auth.Authorized(admin) {
		return ErrUnauthorized
	}

	setJSON(tx, metadataKey(asset), Metadata{Admin: admin, Decimals: decimals, Name: name, Symbol: symbol})
	return tx.Commit()
}

// Mint credits newly issued units to an account. Admin only.
func (l *Ledger) Mint(asset, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	meta, err := l.metadata(tx, asset)
	if err != nil {
		return err
	}
	if err := l.requireAdmin(meta); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 || !inRange(amount) {
		return ErrInvalidAmount
	}
	if err := receiveBalance(tx, asset, to, amount); err != nil {
		return err
	}
	return tx.Commit()
}

// SetAdmin hands the asset's admin role to newAdmin.
func (l *Ledger) SetAdmin(asset, newAdmin common.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	meta, err := l.metadata(tx, asset)
	if err != nil {
		return err
	}
	if err := l.requireAdmin(meta); err != nil {
		return err
	}
	meta.Admin = newAdmin
	setJSON(tx, metadataKey(asset), meta)
	return tx.Commit()
}

// Freeze blocks an account from sending and receiving. Admin only.
func (l *Ledger) Freeze(asset, id common.Address) error {
	return l.setFrozen(asset, id, true)
}

// Unfreeze lifts a freeze. Admin only.
func (l *Ledger) Unfreeze(asset, id common.Address) error {
	return l.setFrozen(asset, id, false)
}

func (l *Ledger) setFrozen(asset, id common.Address, frozen bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	meta, err := l.metadata(tx, asset)
	if err != nil {
		return err
	}
	if err := l.requireAdmin(meta); err != nil {
		return err
	}
	setBool(tx, frozenKey(asset, id), frozen)
	return tx.Commit()
}

// Approve lets spender draw up to amount from from's balance until the
// expiry passes.
func (l *Ledger) Approve(asset, from, spender common.Address, amount *big.Int, expiresAt int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if _, err := l.metadata(tx, asset); err != nil {
		return err
	}
	if !l.auth.Authorized(from) {
		return ErrUnauthorized
	}
	if amount == nil || amount.Sign() < 0 || !inRange(amount) {
		return ErrInvalidAmount
	}
	if isFrozen(tx, asset, from) {
		return ErrAccountFrozen
	}
	setJSON(tx, allowanceKey(asset, from, spender), allowanceValue{Amount: amount.String(), ExpiresAt: expiresAt})
	return tx.Commit()
}

// Transfer moves amount from from to to with from's consent.
func (l *Ledger) Transfer(asset, from, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if err := l.transfer(tx, asset, from, to, amount); err != nil {
		return err
	}
	return tx.Commit()
}

// TransferTx stages the transfer's writes on the caller's transaction
// instead of committing them, so a sibling ledger over the same store
// can fold the transfer into its own atomic batch. The transaction's
// base must be this ledger's store.
func (l *Ledger) TransferTx(tx *store.Tx, asset, from, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transfer(tx, asset, from, to, amount)
}

func (l *Ledger) transfer(tx *store.Tx, asset, from, to common.Address, amount *big.Int) error {
	if _, err := l.metadata(tx, asset); err != nil {
		return err
	}
	if !l.auth.Authorized(from) {
		return ErrUnauthorized
	}
	if amount == nil || amount.Sign() <= 0 || !inRange(amount) {
		return ErrInvalidAmount
	}
	if err := spendBalance(tx, asset, from, amount); err != nil {
		return err
	}
	return receiveBalance(tx, asset, to, amount)
}

// TransferFrom moves amount from from to to, drawing on spender's allowance.
func (l *Ledger) TransferFrom(asset, spender, from, to common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if _, err := l.metadata(tx, asset); err != nil {
		return err
	}
	if !l.auth.Authorized(spender) {
		return ErrUnauthorized
	}
	if amount == nil || amount.Sign() <= 0 || !inRange(amount) {
		return ErrInvalidAmount
	}
	if isFrozen(tx, asset, spender) {
		return ErrAccountFrozen
	}
	if err := l.spendAllowance(tx, asset, from, spender, amount); err != nil {
		return err
	}
	if err := spendBalance(tx, asset, from, amount); err != nil {
		return err
	}
	if err := receiveBalance(tx, asset, to, amount); err != nil {
		return err
	}
	return tx.Commit()
}

// Burn destroys amount of from's balance with from's consent.
func (l *Ledger) Burn(asset, from common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if _, err := l.metadata(tx, asset); err != nil {
		return err
	}
	if !l.auth.Authorized(from) {
		return ErrUnauthorized
	}
	if amount == nil || amount.Sign() <= 0 || !inRange(amount) {
		return ErrInvalidAmount
	}
	if err := spendBalance(tx, asset, from, amount); err != nil {
		return err
	}
	return tx.Commit()
}

// BurnFrom destroys amount of from's balance, drawing on spender's allowance.
func (l *Ledger) BurnFrom(asset, spender, from common.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if _, err := l.metadata(tx, asset); err != nil {
		return err
	}
	if !l.auth.Authorized(spender) {
		return ErrUnauthorized
	}
	if amount == nil || amount.Sign() <= 0 || !inRange(amount) {
		return ErrInvalidAmount
	}
	if isFrozen(tx, asset, spender) {
		return ErrAccountFrozen
	}
	if err := l.spendAllowance(tx, asset, from, spender, amount); err != nil {
		return err
	}
	if err := spendBalance(tx, asset, from, amount); err != nil {
		return err
	}
	return tx.Commit()
}

// Balance returns the current balance; zero for unknown accounts.
func (l *Ledger) Balance(asset, id common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if _, err := l.metadata(tx, asset); err != nil {
		return nil, err
	}
	return getAmount(tx, balanceKey(asset, id)), nil
}

// Allowance returns the remaining allowance from from to spender.
func (l *Ledger) Allowance(asset, from, spender common.Address) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if _, err := l.metadata(tx, asset); err != nil {
		return nil, err
	}
	value, ok := getAllowance(tx, asset, from, spender)
	if !ok {
		return big.NewInt(0), nil
	}
	amount, _ := new(big.Int).SetString(value.Amount, 10)
	if amount == nil {
		amount = big.NewInt(0)
	}
	return amount, nil
}

// IsFrozen reports whether the account is frozen for the asset.
func (l *Ledger) IsFrozen(asset, id common.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	if _, err := l.metadata(tx, asset); err != nil {
		return false, err
	}
	return isFrozen(tx, asset, id), nil
}

// AssetMetadata returns the asset's metadata.
func (l *Ledger) AssetMetadata(asset common.Address) (Metadata, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := store.NewTx(l.store)
	return l.metadata(tx, asset)
}

func (l *Ledger) metadata(tx *store.Tx, asset common.Address) (Metadata, error) {
	raw, ok := tx.Get(store.Persistent, metadataKey(asset))
	if !ok {
		return Metadata{}, ErrTokenNotFound
	}
	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("corrupt token metadata for %s: %w", asset.Hex(), err)
	}
	return meta, nil
}

func (l *Ledger) requireAdmin(meta Metadata) error {
	if !l.auth.Authorized(meta.Admin) {
		return ErrUnauthorized
	}
	return nil
}

func (l *Ledger) spendAllowance(tx *store.Tx, asset, from, spender common.Address, amount *big.Int) error {
	value, ok := getAllowance(tx, asset, from, spender)
	if !ok {
		return ErrInsufficientAllowance
	}
	remaining, _ := new(big.Int).SetString(value.Amount, 10)
	if remaining == nil || remaining.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}
	if value.ExpiresAt < l.now().Unix() {
		return ErrAllowanceExpired
	}
	value.Amount = new(big.Int).Sub(remaining, amount).String()
	setJSON(tx, allowanceKey(asset, from, spender), value)
	return nil
}
