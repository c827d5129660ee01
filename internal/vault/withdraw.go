package vault

import (
	"fmt"
	"math/big"

	"github.com/sublime247/Lumenpulse/internal/event"
	"github.com/sublime247/Lumenpulse/internal/store"
)

// Withdraw moves amount from vault custody to the project owner. It
// requires the owner's consent, an approved milestone, and a sufficient
// project balance. There is no cap tying total withdrawals to the
// project's target amount.
func (v *Vault) Withdraw(projectID uint64, amount *big.Int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return err
	}
	if err := v.requireNotPaused(tx); err != nil {
		return err
	}

	project, ok, err := getProject(tx, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	if !v.auth.Authorized(project.Owner) {
		return ErrUnauthorized
	}
	if !project.IsActive {
		return ErrProjectNotActive
	}
	if amount == nil || amount.Sign() <= 0 || !inI128(amount) {
		return ErrInvalidAmount
	}
	if !getBool(tx, store.Persistent, milestoneKey(projectID)) {
		return ErrMilestoneNotApproved
	}

	balanceKey := projectBalanceKey(projectID, project.Asset)
	balance := getAmount(tx, store.Persistent, balanceKey)
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}

	if err := v.assets.TransferTx(tx, project.Asset, v.custody, project.Owner, amount); err != nil {
		return fmt.Errorf("asset transfer: %w", err)
	}

	setAmount(tx, store.Persistent, balanceKey, new(big.Int).Sub(balance, amount))
	project.TotalWithdrawn = new(big.Int).Add(project.TotalWithdrawn, amount)
	setProject(tx, project)

	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.Withdraw{Owner: project.Owner, ProjectID: projectID, Amount: new(big.Int).Set(amount)})
	return nil
}
