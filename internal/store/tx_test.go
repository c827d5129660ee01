package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxReadsThroughToBase(t *testing.T) {
	base := NewMemoryStore()
	require.NoError(t, base.Apply([]Write{{Class: Persistent, Key: "k", Value: []byte("v")}}))

	tx := NewTx(base)
	v, ok := tx.Get(Persistent, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)
	assert.True(t, tx.Has(Persistent, "k"))
}

func TestTxOverlayShadowsBase(t *testing.T) {
	base := NewMemoryStore()
	require.NoError(t, base.Apply([]Write{{Class: Instance, Key: "k", Value: []byte("old")}}))

	tx := NewTx(base)
	tx.Set(Instance, "k", []byte("new"))

	v, _ := tx.Get(Instance, "k")
	assert.Equal(t, []byte("new"), v)

	// Base unchanged until commit.
	v, _ = base.Get(Instance, "k")
	assert.Equal(t, []byte("old"), v)

	require.NoError(t, tx.Commit())
	v, _ = base.Get(Instance, "k")
	assert.Equal(t, []byte("new"), v)
}

func TestTxUncommittedWritesAreDropped(t *testing.T) {
	base := NewMemoryStore()

	tx := NewTx(base)
	tx.Set(Persistent, "a", []byte("1"))
	tx.Set(Persistent, "b", []byte("2"))

	// Abandon the tx: the base must not observe anything.
	assert.False(t, base.Has(Persistent, "a"))
	assert.False(t, base.Has(Persistent, "b"))
}

func TestTxLastWritePerKeyWins(t *testing.T) {
	base := NewMemoryStore()

	tx := NewTx(base)
	tx.Set(Persistent, "k", []byte("1"))
	tx.Set(Persistent, "k", []byte("2"))
	require.NoError(t, tx.Commit())

	v, _ := base.Get(Persistent, "k")
	assert.Equal(t, []byte("2"), v)
}

func TestClassesAreIsolated(t *testing.T) {
	base := NewMemoryStore()
	require.NoError(t, base.Apply([]Write{{Class: Instance, Key: "k", Value: []byte("i")}}))

	assert.False(t, base.Has(Persistent, "k"))
	v, ok := base.Get(Instance, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("i"), v)
}
