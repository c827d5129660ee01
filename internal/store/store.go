// Package store provides the key-value state backends for the ledgers.
//
// State lives in two durability classes: Instance for process-lifetime
// bookkeeping (admin identity, pause flag, id counters) and Persistent
// for everything per-project and per-contributor. Mutating ledger calls
// run against a Tx overlay and apply all of their writes in one batch,
// so a failed call leaves no partial state behind.
package store

// Class selects one of the two durability classes.
type Class uint8

const (
	Instance Class = iota
	Persistent
)

// Write is a single pending key-value update.
type Write struct {
	Class Class
	Key   string
	Value []byte
}

// Store is the key-value collaborator shared by the ledgers. Reads always
// observe the latest applied write.
type Store interface {
	Get(c Class, key string) ([]byte, bool)
	Has(c Class, key string) bool
	// Apply commits a batch of writes atomically.
	Apply(writes []Write) error
}
