// Package vault is the quadratic-funding crowdfunding ledger: projects,
// per-contributor deposits, a shared matching pool, milestone-gated
// withdrawals, and contributor reputation, all over an injected
// key-value store.
//
// Every public operation is one logical call: it runs under the ledger
// mutex against a copy-on-write store transaction and either commits all
// of its writes or none. Mutating operations consult the admin registry
// (initialization and pause state) and the consent collaborator before
// touching any state.
package vault

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/auth"
	"github.com/sublime247/Lumenpulse/internal/event"
	"github.com/sublime247/Lumenpulse/internal/store"
)

// AssetLedger is the value-transfer collaborator. The vault never
// manages token supply itself. TransferTx stages the transfer's writes
// on the vault's own transaction, so both ledgers' state moves in one
// commit; the asset ledger must run over the same store as the vault.
type AssetLedger interface {
	Balance(asset, id common.Address) (*big.Int, error)
	TransferTx(tx *store.Tx, asset, from, to common.Address, amount *big.Int) error
}

// Vault is the ledger context. All state access goes through the
// injected store; there is no package-level state.
type Vault struct {
	mu      sync.Mutex
	store   store.Store
	assets  AssetLedger
	auth    auth.Authorizer
	bus     *event.Bus
	custody common.Address
	now     func() time.Time
}

// New creates a vault holding deposits under the custody identity.
// bus may be nil; events are then dropped.
func New(s store.Store, assets AssetLedger, a auth.Authorizer, bus *event.Bus, custody common.Address) *Vault {
	return &Vault{
		store:   s,
		assets:  assets,
		auth:    a,
		bus:     bus,
		custody: custody,
		now:     time.Now,
	}
}

// Custody returns the identity the vault holds deposited assets under.
func (v *Vault) Custody() common.Address {
	return v.custody
}

// Initialize stores the admin identity and zeroes the project counter.
func (v *Vault) Initialize(admin common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if tx.Has(store.Instance, keyAdmin) {
		return ErrAlreadyInitialized
	}
	if !v.auth.Authorized(admin) {
		return ErrUnauthorized
	}

	setAddress(tx, store.Instance, keyAdmin, admin)
	setBool(tx, store.Instance, keyPaused, false)
	setU64(tx, store.Instance, keyNextProjectID, 0)

	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.Initialized{Admin: admin})
	return nil
}

// Admin returns the current admin identity.
func (v *Vault) Admin() (common.Address, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	admin, ok := getAddress(tx, store.Instance, keyAdmin)
	if !ok {
		return common.Address{}, ErrNotInitialized
	}
	return admin, nil
}

// IsPaused reports the pause flag.
func (v *Vault) IsPaused() (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if !tx.Has(store.Instance, keyAdmin) {
		return false, ErrNotInitialized
	}
	return getBool(tx, store.Instance, keyPaused), nil
}

// Pause halts all mutating funding operations.
func (v *Vault) Pause(admin common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.verifyAdmin(tx, admin); err != nil {
		return err
	}
	if getBool(tx, store.Instance, keyPaused) {
		return ErrContractPaused
	}

	setBool(tx, store.Instance, keyPaused, true)
	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.Paused{Admin: admin, Timestamp: v.now().Unix()})
	return nil
}

// Unpause lifts a pause.
func (v *Vault) Unpause(admin common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.verifyAdmin(tx, admin); err != nil {
		return err
	}
	if !getBool(tx, store.Instance, keyPaused) {
		return ErrContractNotPaused
	}

	setBool(tx, store.Instance, keyPaused, false)
	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.Unpaused{Admin: admin, Timestamp: v.now().Unix()})
	return nil
}

// SetAdmin hands the admin role to newAdmin, effective immediately for
// the next call.
func (v *Vault) SetAdmin(currentAdmin, newAdmin common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.verifyAdmin(tx, currentAdmin); err != nil {
		return err
	}

	setAddress(tx, store.Instance, keyAdmin, newAdmin)
	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.AdminChanged{OldAdmin: currentAdmin, NewAdmin: newAdmin})
	return nil
}

// verifyAdmin checks initialization, that caller is the stored admin,
// and that the admin consents to the call.
func (v *Vault) verifyAdmin(tx *store.Tx, caller common.Address) error {
	admin, ok := getAddress(tx, store.Instance, keyAdmin)
	if !ok {
		return ErrNotInitialized
	}
	if caller != admin {
		return ErrUnauthorized
	}
	if !v.auth.Authorized(caller) {
		return ErrUnauthorized
	}
	return nil
}

// requireInitialized fails unless Initialize has run.
func (v *Vault) requireInitialized(tx *store.Tx) error {
	if !tx.Has(store.Instance, keyAdmin) {
		return ErrNotInitialized
	}
	return nil
}

// requireNotPaused reads the pause flag once per call, before any other
// side effect.
func (v *Vault) requireNotPaused(tx *store.Tx) error {
	if getBool(tx, store.Instance, keyPaused) {
		return ErrContractPaused
	}
	return nil
}
