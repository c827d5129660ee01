// Package event carries the typed notifications emitted by the ledgers.
// Emission is one-way and fire-and-forget: the ledgers never read events
// back, external indexers consume them.
package event

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Event is implemented by every notification type.
type Event interface {
	Name() string
}

type Initialized struct {
	Admin common.Address `json:"admin"`
}

func (Initialized) Name() string { return "vault.initialized" }

type ProjectCreated struct {
	Owner     common.Address `json:"owner"`
	Asset     common.Address `json:"asset"`
	ProjectID uint64         `json:"project_id"`
}

func (ProjectCreated) Name() string { return "vault.project_created" }

type Deposit struct {
	User      common.Address `json:"user"`
	ProjectID uint64         `json:"project_id"`
	Amount    *big.Int       `json:"amount"`
}

func (Deposit) Name() string { return "vault.deposit" }

type MilestoneApproved struct {
	Admin     common.Address `json:"admin"`
	ProjectID uint64         `json:"project_id"`
}

func (MilestoneApproved) Name() string { return "vault.milestone_approved" }

type Withdraw struct {
	Owner     common.Address `json:"owner"`
	ProjectID uint64         `json:"project_id"`
	Amount    *big.Int       `json:"amount"`
}

func (Withdraw) Name() string { return "vault.withdraw" }

type ContributorRegistered struct {
	Contributor common.Address `json:"contributor"`
}

func (ContributorRegistered) Name() string { return "vault.contributor_registered" }

type ReputationUpdated struct {
	Contributor   common.Address `json:"contributor"`
	OldReputation *big.Int       `json:"old_reputation"`
	NewReputation *big.Int       `json:"new_reputation"`
}

func (ReputationUpdated) Name() string { return "vault.reputation_updated" }

type Paused struct {
	Admin     common.Address `json:"admin"`
	Timestamp int64          `json:"timestamp"`
}

func (Paused) Name() string { return "vault.paused" }

type Unpaused struct {
	Admin     common.Address `json:"admin"`
	Timestamp int64          `json:"timestamp"`
}

func (Unpaused) Name() string { return "vault.unpaused" }

type AdminChanged struct {
	OldAdmin common.Address `json:"old_admin"`
	NewAdmin common.Address `json:"new_admin"`
}

func (AdminChanged) Name() string { return "vault.admin_changed" }
