package vault

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Project is one crowdfunded project tracked by the vault. ID, Owner,
// Asset, and TargetAmount are immutable after creation; the totals and
// IsActive flag are bookkeeping. TotalWithdrawn is informational; the
// per-project balance, not the totals, gates withdrawal.
type Project struct {
	ID             uint64         `json:"id"`
	Owner          common.Address `json:"owner"`
	Name           string         `json:"name"`
	TargetAmount   *big.Int       `json:"target_amount"`
	Asset          common.Address `json:"asset"`
	TotalDeposited *big.Int       `json:"total_deposited"`
	TotalWithdrawn *big.Int       `json:"total_withdrawn"`
	IsActive       bool           `json:"is_active"`
}
