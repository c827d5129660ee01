package vault

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/store"
)

// FundMatchingPool credits the per-asset matching pool. Admin only.
// Accounting-only: no external asset transfer accompanies the credit,
// mirroring the deposit fallback policy.
func (v *Vault) FundMatchingPool(admin, asset common.Address, amount *big.Int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.verifyAdmin(tx, admin); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 || !inI128(amount) {
		return ErrInvalidAmount
	}

	pool := getAmount(tx, store.Persistent, matchingPoolKey(asset))
	setAmount(tx, store.Persistent, matchingPoolKey(asset), new(big.Int).Add(pool, amount))
	return tx.Commit()
}

// MatchingPoolBalance returns the pool balance for an asset.
func (v *Vault) MatchingPoolBalance(asset common.Address) (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return nil, err
	}
	return getAmount(tx, store.Persistent, matchingPoolKey(asset)), nil
}

// CalculateMatch computes the quadratic-funding match for a project:
// (sum of sqrt(contribution_i))^2, in scaled integer arithmetic. Zero
// contributors yield exactly zero.
func (v *Vault) CalculateMatch(projectID uint64) (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return nil, err
	}
	return v.calculateMatch(tx, projectID)
}

func (v *Vault) calculateMatch(tx *store.Tx, projectID uint64) (*big.Int, error) {
	count := getU32(tx, store.Persistent, contributorCountKey(projectID))
	if count == 0 {
		return big.NewInt(0), nil
	}

	sumSqrtScaled := big.NewInt(0)
	for i := uint32(0); i < count; i++ {
		contributor, ok := getAddress(tx, store.Persistent, contributorKey(projectID, i))
		if !ok {
			// Index inconsistent with the count; cannot occur under
			// correct bookkeeping.
			return nil, ErrProjectNotFound
		}
		contribution := getAmount(tx, store.Persistent, contributionKey(projectID, contributor))
		if contribution.Sign() > 0 {
			sumSqrtScaled.Add(sumSqrtScaled, SqrtScaled(contribution))
		}
	}

	// Square the sum and unscale twice, once for each factor's scale.
	return Unscale(Unscale(satMul(sumSqrtScaled, sumSqrtScaled))), nil
}

// DistributeMatch moves min(pool, match) from the matching pool into the
// project's balance and counts it as a deposit. It recomputes from
// current state on every call: nothing marks a project as already
// matched, so a repeat call with no new contributions drains the pool
// again.
func (v *Vault) DistributeMatch(projectID uint64) (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return nil, err
	}

	project, ok, err := getProject(tx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProjectNotFound
	}

	matchAmount, err := v.calculateMatch(tx, projectID)
	if err != nil {
		return nil, err
	}
	if matchAmount.Sign() <= 0 {
		return big.NewInt(0), nil
	}

	poolKey := matchingPoolKey(project.Asset)
	poolBalance := getAmount(tx, store.Persistent, poolKey)

	actual := matchAmount
	if poolBalance.Cmp(matchAmount) < 0 {
		actual = poolBalance
	}
	if actual.Sign() <= 0 {
		return big.NewInt(0), nil
	}

	setAmount(tx, store.Persistent, poolKey, new(big.Int).Sub(poolBalance, actual))

	balanceKey := projectBalanceKey(projectID, project.Asset)
	balance := getAmount(tx, store.Persistent, balanceKey)
	setAmount(tx, store.Persistent, balanceKey, new(big.Int).Add(balance, actual))

	project.TotalDeposited = new(big.Int).Add(project.TotalDeposited, actual)
	setProject(tx, project)

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return new(big.Int).Set(actual), nil
}
