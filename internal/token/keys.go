package token

import "github.com/ethereum/go-ethereum/common"

// Storage key layout for the asset ledger. Every key embeds the asset
// address so one ledger serves any number of assets.
func metadataKey(asset common.Address) string {
	return "token:meta:" + asset.Hex()
}

func balanceKey(asset, id common.Address) string {
	return "token:balance:" + asset.Hex() + ":" + id.Hex()
}

func frozenKey(asset, id common.Address) string {
	return "token:frozen:" + asset.Hex() + ":" + id.Hex()
}

func allowanceKey(asset, from, spender common.Address) string {
	return "token:allowance:" + asset.Hex() + ":" + from.Hex() + ":" + spender.Hex()
}
