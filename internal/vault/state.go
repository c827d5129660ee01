package vault

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/sublime247/Lumenpulse/internal/store"
)

// Typed accessors over a store transaction. Amounts and counters are
// stored as decimal strings, booleans as "0"/"1", addresses as hex,
// projects as JSON.

func getAmount(tx *store.Tx, c store.Class, key string) *big.Int {
	raw, ok := tx.Get(c, key)
	if !ok {
		return big.NewInt(0)
	}
	n, ok := new(big.Int).SetString(string(raw), 10)
	if !ok {
		return big.NewInt(0)
	}
	return n
}

func setAmount(tx *store.Tx, c store.Class, key string, v *big.Int) {
	tx.Set(c, key, []byte(v.String()))
}

func getU64(tx *store.Tx, c store.Class, key string) uint64 {
	raw, ok := tx.Get(c, key)
	if !ok {
		return 0
	}
	n := new(big.Int)
	if _, ok := n.SetString(string(raw), 10); !ok {
		return 0
	}
	return n.Uint64()
}

func setU64(tx *store.Tx, c store.Class, key string, v uint64) {
	tx.Set(c, key, []byte(new(big.Int).SetUint64(v).String()))
}

func getU32(tx *store.Tx, c store.Class, key string) uint32 {
	return uint32(getU64(tx, c, key))
}

func setU32(tx *store.Tx, c store.Class, key string, v uint32) {
	setU64(tx, c, key, uint64(v))
}

func getBool(tx *store.Tx, c store.Class, key string) bool {
	raw, ok := tx.Get(c, key)
	return ok && string(raw) == "1"
}

func setBool(tx *store.Tx, c store.Class, key string, v bool) {
	b := []byte("0")
	if v {
		b = []byte("1")
	}
	tx.Set(c, key, b)
}

func getAddress(tx *store.Tx, c store.Class, key string) (common.Address, bool) {
	raw, ok := tx.Get(c, key)
	if !ok {
		return common.Address{}, false
	}
	return common.HexToAddress(string(raw)), true
}

func setAddress(tx *store.Tx, c store.Class, key string, addr common.Address) {
	tx.Set(c, key, []byte(addr.Hex()))
}

func getProject(tx *store.Tx, id uint64) (Project, bool, error) {
	raw, ok := tx.Get(store.Persistent, projectKey(id))
	if !ok {
		return Project{}, false, nil
	}
	var p Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return Project{}, false, fmt.Errorf("corrupt project record %d: %w", id, err)
	}
	return p, true, nil
}

func setProject(tx *store.Tx, p Project) {
	raw, err := json.Marshal(p)
	if err != nil {
		// A Project always marshals; anything else is a programming error.
		panic(err)
	}
	tx.Set(store.Persistent, projectKey(p.ID), raw)
}
