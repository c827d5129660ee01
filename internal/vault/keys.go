package vault

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// Storage key layout. The admin identity, pause flag, and project id
// counter live in the instance-scoped class; everything per-project and
// per-contributor is persistent.
const (
	keyAdmin         = "vault:admin"
	keyPaused        = "vault:paused"
	keyNextProjectID = "vault:next_project_id"
)

func projectKey(id uint64) string {
	return "vault:project:" + strconv.FormatUint(id, 10)
}

func projectBalanceKey(id uint64, asset common.Address) string {
	return "vault:balance:" + strconv.FormatUint(id, 10) + ":" + asset.Hex()
}

func milestoneKey(id uint64) string {
	return "vault:milestone:" + strconv.FormatUint(id, 10)
}

func contributionKey(id uint64, contributor common.Address) string {
	return "vault:contribution:" + strconv.FormatUint(id, 10) + ":" + contributor.Hex()
}

func contributorCountKey(id uint64) string {
	return "vault:contributor_count:" + strconv.FormatUint(id, 10)
}

// contributorKey is the ordered, append-only index that lets the
// matching engine enumerate contributors without a key scan.
func contributorKey(id uint64, ordinal uint32) string {
	return "vault:contributor:" + strconv.FormatUint(id, 10) + ":" + strconv.FormatUint(uint64(ordinal), 10)
}

// contributorOrdinalKey is the reverse lookup of contributorKey; its
// presence is the duplicate guard for the index.
func contributorOrdinalKey(id uint64, contributor common.Address) string {
	return "vault:contributor_ordinal:" + strconv.FormatUint(id, 10) + ":" + contributor.Hex()
}

func matchingPoolKey(asset common.Address) string {
	return "vault:matching_pool:" + asset.Hex()
}

func registeredKey(contributor common.Address) string {
	return "vault:registered:" + contributor.Hex()
}

func reputationKey(contributor common.Address) string {
	return "vault:reputation:" + contributor.Hex()
}
