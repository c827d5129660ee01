package vault

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/event"
	"github.com/sublime247/Lumenpulse/internal/store"
)

// CreateProject registers a new project with the next sequential id and
// zeroed totals, and returns the id. Ids are monotonic from 0.
func (v *Vault) CreateProject(owner common.Address, name string, targetAmount *big.Int, asset common.Address) (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return 0, err
	}
	if !v.auth.Authorized(owner) {
		return 0, ErrUnauthorized
	}
	if err := v.requireNotPaused(tx); err != nil {
		return 0, err
	}
	if targetAmount == nil || targetAmount.Sign() <= 0 || !inI128(targetAmount) {
		return 0, ErrInvalidAmount
	}

	projectID := getU64(tx, store.Instance, keyNextProjectID)

	setProject(tx, Project{
		ID:             projectID,
		Owner:          owner,
		Name:           name,
		TargetAmount:   new(big.Int).Set(targetAmount),
		Asset:          asset,
		TotalDeposited: big.NewInt(0),
		TotalWithdrawn: big.NewInt(0),
		IsActive:       true,
	})
	setAmount(tx, store.Persistent, projectBalanceKey(projectID, asset), big.NewInt(0))
	setBool(tx, store.Persistent, milestoneKey(projectID), false)
	setU64(tx, store.Instance, keyNextProjectID, projectID+1)

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	v.bus.Publish(event.ProjectCreated{Owner: owner, Asset: asset, ProjectID: projectID})
	return projectID, nil
}

// ProjectCount returns the number of projects ever created. Project ids
// run from 0 to ProjectCount()-1.
func (v *Vault) ProjectCount() (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.requireInitialized(tx); err != nil {
		return 0, err
	}
	return getU64(tx, store.Instance, keyNextProjectID), nil
}

// GetProject returns the project record.
func (v *Vault) GetProject(projectID uint64) (Project, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	project, ok, err := getProject(tx, projectID)
	if err != nil {
		return Project{}, err
	}
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return project, nil
}

// GetBalance returns the project's spendable balance in its asset.
func (v *Vault) GetBalance(projectID uint64) (*big.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	project, ok, err := getProject(tx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProjectNotFound
	}
	return getAmount(tx, store.Persistent, projectBalanceKey(projectID, project.Asset)), nil
}

// IsMilestoneApproved reports the project's milestone gate.
func (v *Vault) IsMilestoneApproved(projectID uint64) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if !tx.Has(store.Persistent, projectKey(projectID)) {
		return false, ErrProjectNotFound
	}
	return getBool(tx, store.Persistent, milestoneKey(projectID)), nil
}

// ApproveMilestone opens the withdrawal gate for a project. Admin only;
// the gate never reverts to unapproved.
func (v *Vault) ApproveMilestone(admin common.Address, projectID uint64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	tx := store.NewTx(v.store)
	if err := v.verifyAdmin(tx, admin); err != nil {
		return err
	}
	if err := v.requireNotPaused(tx); err != nil {
		return err
	}
	if !tx.Has(store.Persistent, projectKey(projectID)) {
		return ErrProjectNotFound
	}

	setBool(tx, store.Persistent, milestoneKey(projectID), true)
	if err := tx.Commit(); err != nil {
		return err
	}
	v.bus.Publish(event.MilestoneApproved{Admin: admin, ProjectID: projectID})
	return nil
}
