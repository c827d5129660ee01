package vault

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/event"
	"github.com/sublime247/Lumenpulse/internal/store"
)

// Deposit records a contribution of amount to a project. If the user's
// external balance covers the amount, the asset is pulled into vault
// custody; otherwise the deposit is recorded as an accounting entry with
// no asset movement, so the recorded project balance can exceed custody.
//
// The first deposit that takes a contributor's cumulative contribution
// from zero to nonzero appends them to the project's contributor index;
// repeated deposits never create duplicate index entries.
func (v *Vault) Deposit(user common.Address, projectID uint64, amount *big.Int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return err
	}
	if !v.auth.Authorized(user) {
		return ErrUnauthorized
	}
	if err := v.requireNotPaused(tx); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 || !inI128(amount) {
		return ErrInvalidAmount
	}

	project, ok, err := getProject(tx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	if !project.IsActive {
		return ErrProjectNotActive
	}

	userBalance, err := v.assets.Balance(project.Asset, user)
	if err != nil {
		return fmt.Errorf("asset balance lookup: %w", err)
	}
	if userBalance.Cmp(amount) >= 0 {
		// Staged on the same transaction: the token movement and the
		// contribution bookkeeping commit together or not at all.
		if err := v.assets.TransferTx(tx, project.Asset, user, v.custody, amount); err != nil {
			return fmt.Errorf("asset transfer: %w", err)
		}
	}

	balanceKey := projectBalanceKey(projectID, project.Asset)
	balance := getAmount(tx, store.Persistent, balanceKey)
	setAmount(tx, store.Persistent, balanceKey, new(big.Int).Add(balance, amount))

	contribution := getAmount(tx, store.Persistent, contributionKey(projectID, user))
	if contribution.Sign() == 0 && !tx.Has(store.Persistent, contributorOrdinalKey(projectID, user)) {
		count := getU32(tx, store.Persistent, contributorCountKey(projectID))
		setAddress(tx, store.Persistent, contributorKey(projectID, count), user)
		setU32(tx, store.Persistent, contributorOrdinalKey(projectID, user), count)
		setU32(tx, store.Persistent, contributorCountKey(projectID), count+1)
	}
	setAmount(tx, store.Persistent, contributionKey(projectID, user), new(big.Int).Add(contribution, amount))

	project.TotalDeposited = new(big.Int).Add(project.TotalDeposited, amount)
	setProject(tx, project)

	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.Deposit{User: user, ProjectID: projectID, Amount: new(big.Int).Set(amount)})
	return nil
}

// GetContribution returns the contributor's cumulative contribution to
// the project; zero if they never contributed.
func (v *Vault) GetContribution(projectID uint64, contributor common.Address) (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return nil, err
	}
	if !tx.Has(store.Persistent, projectKey(projectID)) {
		return nil, ErrProjectNotFound
	}
	return getAmount(tx, store.Persistent, contributionKey(projectID, contributor)), nil
}

// ContributorCount returns the number of distinct contributors recorded
// for the project.
func (v *Vault) ContributorCount(projectID uint64) (uint32, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return 0, err
	}
	if !tx.Has(store.Persistent, projectKey(projectID)) {
		return 0, ErrProjectNotFound
	}
	return getU32(tx, store.Persistent, contributorCountKey(projectID)), nil
}
