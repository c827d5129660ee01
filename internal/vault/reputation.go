package vault

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/event"
	"github.com/sublime247/Lumenpulse/internal/store"
)

// RegisterContributor records a contributor with zero reputation.
// Self-service: it needs the contributor's own consent, nothing else.
func (v *Vault) RegisterContributor(contributor common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if !v.auth.Authorized(contributor) {
		return ErrUnauthorized
	}
	if tx.Has(store.Persistent, registeredKey(contributor)) {
		return ErrAlreadyRegistered
	}

	setBool(tx, store.Persistent, registeredKey(contributor), true)
	setAmount(tx, store.Persistent, reputationKey(contributor), big.NewInt(0))

	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.ContributorRegistered{Contributor: contributor})
	return nil
}

// UpdateReputation applies a signed delta to a registered contributor's
// reputation. Admin only; no floor or ceiling inside the signed 128-bit
// range, and a delta that would leave it is rejected whole.
func (v *Vault) UpdateReputation(admin, contributor common.Address, delta *big.Int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.verifyAdmin(tx, admin); err != nil {
		return err
	}
	if delta == nil || !inI128(delta) {
		return ErrInvalidAmount
	}
	if !tx.Has(store.Persistent, registeredKey(contributor)) {
		return ErrContributorNotFound
	}

	old := getAmount(tx, store.Persistent, reputationKey(contributor))
	updated := new(big.Int).Add(old, delta)
	if !inI128(updated) {
		return ErrInvalidAmount
	}
	setAmount(tx, store.Persistent, reputationKey(contributor), updated)

	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.ReputationUpdated{Contributor: contributor, OldReputation: old, NewReputation: updated})
	return nil
}

// GetReputation returns the contributor's current reputation.
func (v *Vault) GetReputation(contributor common.Address) (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if !tx.Has(store.Persistent, registeredKey(contributor)) {
		return nil, ErrContributorNotFound
	}
	return getAmount(tx, store.Persistent, reputationKey(contributor)), nil
}
