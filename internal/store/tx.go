package store

// Tx is a copy-on-write overlay on a Store. Reads see pending writes
// first, then fall through to the base. Nothing reaches the base until
// Commit, which gives each ledger call its all-or-nothing guarantee.
type Tx struct {
	base    Store
	writes  []Write
	pending [2]map[string]int // key -> index into writes, per class
}

// NewTx starts a transaction over base.
func NewTx(base Store) *Tx {
	return &Tx{
		base: base,
		pending: [2]map[string]int{
			Instance:   make(map[string]int),
			Persistent: make(map[string]int),
		},
	}
}

func (tx *Tx) Get(c Class, key string) ([]byte, bool) {
	if i, ok := tx.pending[c][key]; ok {
		return tx.writes[i].Value, true
	}
	return tx.base.Get(c, key)
}

func (tx *Tx) Has(c Class, key string) bool {
	if _, ok := tx.pending[c][key]; ok {
		return true
	}
	return tx.base.Has(c, key)
}

// Set stages a write. A second Set to the same key replaces the first,
// keeping the batch one write per key.
func (tx *Tx) Set(c Class, key string, value []byte) {
	if i, ok := tx.pending[c][key]; ok {
		tx.writes[i].Value = value
		return
	}
	tx.pending[c][key] = len(tx.writes)
	tx.writes = append(tx.writes, Write{Class: c, Key: key, Value: value})
}

// Commit applies the staged writes to the base store in one batch.
func (tx *Tx) Commit() error {
	if len(tx.writes) == 0 {
		return nil
	}
	return tx.base.Apply(tx.writes)
}
