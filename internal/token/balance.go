package token

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/store"
)

// Balance and freeze bookkeeping on a store transaction. Frozen accounts
// can neither spend nor receive.

// Amounts are confined to the signed 128-bit range.
var (
	maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minAmount = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

func inRange(v *big.Int) bool {
	return v.Cmp(minAmount) >= 0 && v.Cmp(maxAmount) <= 0
}

func getAmount(tx *store.Tx, key string) *big.Int {
	raw, ok := tx.Get(store.Persistent, key)
	if !ok {
		return big.NewInt(0)
	}
	n, ok := new(big.Int).SetString(string(raw), 10)
	if !ok {
		return big.NewInt(0)
	}
	return n
}

func setAmount(tx *store.Tx, key string, amount *big.Int) {
	tx.Set(store.Persistent, key, []byte(amount.String()))
}

func setBool(tx *store.Tx, key string, v bool) {
	b := []byte("0")
	if v {
		b = []byte("1")
	}
	tx.Set(store.Persistent, key, b)
}

func isFrozen(tx *store.Tx, asset, id common.Address) bool {
	raw, ok := tx.Get(store.Persistent, frozenKey(asset, id))
	return ok && string(raw) == "1"
}

func receiveBalance(tx *store.Tx, asset, id common.Address, amount *big.Int) error {
	if isFrozen(tx, asset, id) {
		return ErrAccountFrozen
	}
	balance := getAmount(tx, balanceKey(asset, id))
	setAmount(tx, balanceKey(asset, id), new(big.Int).Add(balance, amount))
	return nil
}

func spendBalance(tx *store.Tx, asset, id common.Address, amount *big.Int) error {
	if isFrozen(tx, asset, id) {
		return ErrAccountFrozen
	}
	balance := getAmount(tx, balanceKey(asset, id))
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	setAmount(tx, balanceKey(asset, id), new(big.Int).Sub(balance, amount))
	return nil
}

func setJSON(tx *store.Tx, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		// Only reachable with an unmarshalable type, which would be a
		// programming error in this package.
		panic(err)
	}
	tx.Set(store.Persistent, key, raw)
}

func getAllowance(tx *store.Tx, asset, from, spender common.Address) (allowanceValue, bool) {
	raw, ok := tx.Get(store.Persistent, allowanceKey(asset, from, spender))
	if !ok {
		return allowanceValue{}, false
	}
	var value allowanceValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return allowanceValue{}, false
	}
	return value, true
}
